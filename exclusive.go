package vector

// noCopy may be embedded into structs which must not be copied after first
// use. go vet's copylocks check reports copies of values that contain it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ExclusiveArray is the sole owner of a fixed-size slot buffer.
// It never resizes. Ownership leaves it only through Move, Exchange or
// Release; it must not be copied.
type ExclusiveArray[T any] struct {
	_   noCopy
	buf []T // nil iff capacity is zero
}

// NewExclusiveArray allocates count zero-valued slots.
// Returns the empty array if count <= 0.
func NewExclusiveArray[T any](count int) ExclusiveArray[T] {
	return ExclusiveArray[T]{buf: allocSlots[T](count)}
}

// AdoptExclusiveArray takes ownership of buf. The caller must not touch buf
// afterwards except through the returned array.
func AdoptExclusiveArray[T any](buf []T) ExclusiveArray[T] {
	if len(buf) == 0 {
		return ExclusiveArray[T]{}
	}
	// Slots past len are not owned.
	return ExclusiveArray[T]{buf: buf[:len(buf):len(buf)]}
}

// Capacity returns the number of allocated slots.
func (a *ExclusiveArray[T]) Capacity() int {
	return len(a.buf)
}

// IsEmpty reports whether the array owns no buffer.
func (a *ExclusiveArray[T]) IsEmpty() bool {
	return a.buf == nil
}

// Ref returns a pointer to slot i. i must be below Capacity.
func (a *ExclusiveArray[T]) Ref(i int) *T {
	return &a.buf[i]
}

// Get returns the value in slot i. i must be below Capacity.
func (a *ExclusiveArray[T]) Get(i int) T {
	return a.buf[i]
}

// Slots returns the owned buffer without giving up ownership.
// The returned slice is only valid until the next Release, Exchange,
// Move or Free.
func (a *ExclusiveArray[T]) Slots() []T {
	return a.buf
}

// Release gives up ownership and returns the buffer.
// The array is empty afterwards.
func (a *ExclusiveArray[T]) Release() []T {
	buf := a.buf
	a.buf = nil
	return buf
}

// Exchange swaps the owned buffers of a and other. It never allocates.
func (a *ExclusiveArray[T]) Exchange(other *ExclusiveArray[T]) {
	a.buf, other.buf = other.buf, a.buf
}

// Move transfers ownership to the returned array and leaves a empty.
func (a *ExclusiveArray[T]) Move() ExclusiveArray[T] {
	return ExclusiveArray[T]{buf: a.Release()}
}

// Free drops the owned buffer. Calling Free on an empty array is a no-op.
func (a *ExclusiveArray[T]) Free() {
	a.buf = nil
}
