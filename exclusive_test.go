package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExclusiveArray(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected int
	}{
		{"zero count", 0, 0},
		{"negative count", -1, 0},
		{"single slot", 1, 1},
		{"many slots", 64, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewExclusiveArray[int](tt.count)
			assert.Equal(t, tt.expected, a.Capacity())
			assert.Equal(t, tt.expected == 0, a.IsEmpty())
			for i := 0; i < a.Capacity(); i++ {
				assert.Zero(t, a.Get(i), "slot %d", i)
			}
		})
	}
}

func TestExclusiveArrayRefAndGet(t *testing.T) {
	a := NewExclusiveArray[string](3)
	*a.Ref(0) = "a"
	*a.Ref(2) = "c"

	assert.Equal(t, "a", a.Get(0))
	assert.Equal(t, "", a.Get(1))
	assert.Equal(t, "c", a.Get(2))
	assert.Equal(t, []string{"a", "", "c"}, a.Slots())

	// Past capacity is caught by the runtime bounds check.
	assert.Panics(t, func() { a.Get(3) })
}

func TestAdoptExclusiveArray(t *testing.T) {
	buf := make([]int, 4, 16)
	buf[1] = 7

	a := AdoptExclusiveArray(buf)
	assert.Equal(t, 4, a.Capacity())
	assert.Equal(t, 7, a.Get(1))
	assert.Equal(t, 4, cap(a.Slots()), "slots beyond len must not be owned")

	empty := AdoptExclusiveArray[int](nil)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Capacity())

	zeroLen := AdoptExclusiveArray(make([]int, 0, 8))
	assert.True(t, zeroLen.IsEmpty())
}

func TestExclusiveArrayRelease(t *testing.T) {
	a := NewExclusiveArray[int](5)
	*a.Ref(4) = 42

	buf := a.Release()
	require.Len(t, buf, 5)
	assert.Equal(t, 42, buf[4])
	assert.True(t, a.IsEmpty())
	assert.Equal(t, 0, a.Capacity())

	// Releasing an empty array yields nil.
	assert.Nil(t, a.Release())
}

func TestExclusiveArrayExchange(t *testing.T) {
	a := NewExclusiveArray[int](2)
	b := NewExclusiveArray[int](5)
	*a.Ref(0) = 1
	*b.Ref(0) = 2

	a.Exchange(&b)
	assert.Equal(t, 5, a.Capacity())
	assert.Equal(t, 2, b.Capacity())
	assert.Equal(t, 2, a.Get(0))
	assert.Equal(t, 1, b.Get(0))

	var empty ExclusiveArray[int]
	a.Exchange(&empty)
	assert.True(t, a.IsEmpty())
	assert.Equal(t, 5, empty.Capacity())
}

func TestExclusiveArrayMove(t *testing.T) {
	a := NewExclusiveArray[int](3)
	*a.Ref(1) = 9
	before := &a.Slots()[0]

	b := a.Move()
	assert.True(t, a.IsEmpty())
	assert.Equal(t, 3, b.Capacity())
	assert.Equal(t, 9, b.Get(1))
	assert.Same(t, before, &b.Slots()[0], "move must not reallocate")
}

func TestExclusiveArrayFree(t *testing.T) {
	a := NewExclusiveArray[int](3)
	a.Free()
	assert.True(t, a.IsEmpty())
	assert.Equal(t, 0, a.Capacity())

	// Multiple frees should be safe
	a.Free()
	a.Free()
}

func BenchmarkExclusiveArrayExchange(b *testing.B) {
	x := NewExclusiveArray[int](1024)
	y := NewExclusiveArray[int](2048)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Exchange(&y)
	}
}
