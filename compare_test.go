package vector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Vector[int]
		want bool
	}{
		{"both empty", New[int](), Reserved[int](4), true},
		{"same elements", Of(1, 2, 3), Of(1, 2, 3), true},
		{"non-empty against reserved empty", Of(1, 2), NewFromReserve[int](Reserve(9)), false},
		{"different sizes", Of(1, 2), Of(1, 2, 3), false},
		{"different elements", Of(1, 2, 3), Of(1, 2, 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}

	v := Of(1)
	assert.True(t, Equal(v, v))

	w := Reserved[int](9)
	w.PushBack(1)
	w.PushBack(2)
	assert.True(t, Equal(Of(1, 2), w))
}

func TestEqualFunc(t *testing.T) {
	a := Of("A", "b")
	b := Of("a", "B")
	assert.True(t, EqualFunc(a, b, strings.EqualFold))
	assert.False(t, EqualFunc(a, Of("a"), strings.EqualFold))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Vector[int]
		want int
	}{
		{"equal", Of(1, 2), Of(1, 2), 0},
		{"both empty", New[int](), New[int](), 0},
		{"empty before non-empty", New[int](), Of(0), -1},
		{"prefix is less", Of(1, 2), Of(1, 2, 0), -1},
		{"first difference decides", Of(1, 3), Of(2, 0, 0), -1},
		{"greater", Of(5), Of(4, 9), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, Compare(tt.b, tt.a))
			assert.Equal(t, tt.want < 0, Less(tt.a, tt.b))
		})
	}
}

func TestCompareFunc(t *testing.T) {
	a := Of("apple", "b")
	b := Of("APPLE", "c")
	byFold := func(x, y string) int {
		return strings.Compare(strings.ToLower(x), strings.ToLower(y))
	}
	assert.Equal(t, -1, CompareFunc(a, b, byFold))
	assert.Equal(t, 0, CompareFunc(a, a.Clone(), byFold))
}
