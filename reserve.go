package vector

// ReserveProxy is a request to construct a vector with reserved capacity.
type ReserveProxy struct {
	capacity int
}

// Reserve returns a request for n slots, for use with NewFromReserve.
func Reserve(n int) ReserveProxy {
	return ReserveProxy{capacity: max(n, 0)}
}

// Capacity returns the number of slots requested.
func (r ReserveProxy) Capacity() int {
	return r.capacity
}

// NewFromReserve creates an empty vector with r.Capacity() slots.
// A larger WithCapacity option wins.
func NewFromReserve[T any](r ReserveProxy, opts ...Option) *Vector[T] {
	o := buildOptions(opts)
	o.capacity = max(o.capacity, r.capacity)
	return newVector[T](o, 0)
}

// Reserved is shorthand for NewFromReserve[T](Reserve(n), opts...).
func Reserved[T any](n int, opts ...Option) *Vector[T] {
	return NewFromReserve[T](Reserve(n), opts...)
}
