package vector

import (
	"fmt"
	"strings"
)

// maxFormatted caps the number of elements String prints.
const maxFormatted = 100

// Desc returns a one-line summary of size and capacity.
func (v *Vector[T]) Desc() string {
	return fmt.Sprintf("Vector:Size=%d;Cap=%d", v.size, v.storage.Capacity())
}

// String returns Desc followed by up to the first 100 elements.
func (v *Vector[T]) String() string {
	s := v.Slice()
	if len(s) == 0 {
		return v.Desc()
	}
	var b strings.Builder
	b.WriteString(v.Desc())
	b.WriteString(" [")
	for i, x := range s[:min(len(s), maxFormatted)] {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", x)
	}
	if len(s) > maxFormatted {
		b.WriteString(" ...")
	}
	b.WriteByte(']')
	return b.String()
}
