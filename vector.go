package vector

import "go.uber.org/zap"

var nopLogger = zap.NewNop()

// Vector is a growable contiguous sequence of T.
// The zero value is an empty vector ready to use.
// Not goroutine-safe. Use Clone to duplicate a Vector; copying the struct
// would alias the owned buffer.
type Vector[T any] struct {
	storage  ExclusiveArray[T]
	size     int
	log      *zap.Logger
	reallocs int
}

// New creates an empty vector.
func New[T any](opts ...Option) *Vector[T] {
	return newVector[T](buildOptions(opts), 0)
}

// NewWithSize creates a vector of n zero-valued elements.
// If n <= 0 the vector is empty.
func NewWithSize[T any](n int, opts ...Option) *Vector[T] {
	return newVector[T](buildOptions(opts), n)
}

// NewFilled creates a vector of n copies of value.
func NewFilled[T any](n int, value T, opts ...Option) *Vector[T] {
	v := newVector[T](buildOptions(opts), n)
	s := v.Slice()
	for i := range s {
		s[i] = value
	}
	return v
}

// Of creates a vector holding items, with capacity len(items).
func Of[T any](items ...T) *Vector[T] {
	v := newVector[T](buildOptions(nil), len(items))
	copy(v.Slice(), items)
	return v
}

func newVector[T any](o options, size int) *Vector[T] {
	size = max(size, 0)
	v := &Vector[T]{size: size, log: o.logger}
	v.storage = NewExclusiveArray[T](max(size, o.capacity))
	return v
}

func (v *Vector[T]) logger() *zap.Logger {
	if v.log == nil {
		return nopLogger
	}
	return v.log
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	return v.storage.Capacity()
}

// IsEmpty reports whether Size is zero.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Index returns element i without a range check against Size.
// i must be in [0, Size).
func (v *Vector[T]) Index(i int) T {
	assertf(i >= 0 && i < v.size, "index %d out of range [0, %d)", i, v.size)
	return v.storage.Get(i)
}

// Ref returns a pointer to element i without a range check against Size.
// The pointer is invalidated by the next reallocation.
func (v *Vector[T]) Ref(i int) *T {
	assertf(i >= 0 && i < v.size, "index %d out of range [0, %d)", i, v.size)
	return v.storage.Ref(i)
}

// Set stores x at index i without a range check against Size.
func (v *Vector[T]) Set(i int, x T) {
	*v.Ref(i) = x
}

// At returns element i, or an ErrOutOfRange error if i is not in [0, Size).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, indexOutOfRange("at", i, v.size)
	}
	return v.storage.Get(i), nil
}

// AtRef is the pointer form of At.
func (v *Vector[T]) AtRef(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, indexOutOfRange("at", i, v.size)
	}
	return v.storage.Ref(i), nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, indexOutOfRange("front", 0, 0)
	}
	return v.storage.Get(0), nil
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, indexOutOfRange("back", 0, 0)
	}
	return v.storage.Get(v.size - 1), nil
}

// PushBack appends x. A full vector doubles its capacity first (0 grows to 1).
func (v *Vector[T]) PushBack(x T) {
	if v.size == v.storage.Capacity() {
		v.reallocate("push_back", nextCapacity(v.storage.Capacity()))
	}
	*v.storage.Ref(v.size) = x
	v.size++
}

// Insert places x at pos, shifting elements at and after pos one slot
// towards the end. pos == Size appends. It returns the position of the
// inserted element, or an ErrOutOfRange error if pos is not in [0, Size].
func (v *Vector[T]) Insert(pos int, x T) (int, error) {
	if pos < 0 || pos > v.size {
		return v.size, positionOutOfRange("insert", pos, v.size)
	}
	if v.size == v.storage.Capacity() {
		v.reallocate("insert", nextCapacity(v.storage.Capacity()))
	}
	s := v.storage.Slots()
	copy(s[pos+1:v.size+1], s[pos:v.size])
	s[pos] = x
	v.size++
	return pos, nil
}

// PopBack drops the last element. It does nothing on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	var zero T
	*v.storage.Ref(v.size) = zero
}

// Erase removes the element at pos, shifting the following elements one slot
// towards the front. It returns pos, which now holds the element that
// followed the erased one (or equals Size if the last element was erased).
// pos must be in [0, Size), otherwise an ErrOutOfRange error is returned.
func (v *Vector[T]) Erase(pos int) (int, error) {
	if pos < 0 || pos >= v.size {
		return v.size, indexOutOfRange("erase", pos, v.size)
	}
	s := v.storage.Slots()
	copy(s[pos:v.size-1], s[pos+1:v.size])
	v.size--
	var zero T
	s[v.size] = zero
	return pos, nil
}

// Clear drops all elements. Capacity is kept.
func (v *Vector[T]) Clear() {
	clear(v.Slice())
	v.size = 0
}

// Resize sets Size to n. Shrinking keeps the buffer. Growing within capacity
// exposes zero-valued slots. Growing past capacity reallocates to 2*n slots.
// Resize panics if n is negative.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic("vector: negative size in Resize")
	}
	s := v.storage.Slots()
	switch {
	case n <= v.size:
		clear(s[n:v.size])
	case n <= len(s):
		clear(s[v.size:n])
	default:
		v.reallocate("resize", resizeCapacity(n))
	}
	v.size = n
}

// Reserve grows capacity to exactly n slots if it is currently smaller.
// Size and the live elements are unchanged.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.storage.Capacity() {
		return
	}
	v.reallocate("reserve", n)
}

// Exchange swaps the contents of v and other in constant time.
func (v *Vector[T]) Exchange(other *Vector[T]) {
	v.storage.Exchange(&other.storage)
	v.size, other.size = other.size, v.size
}

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *Vector[T]) {
	a.Exchange(b)
}

// Clone returns a deep copy of v with the same size and capacity.
// The two vectors never share a buffer.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{size: v.size, log: v.log}
	c.storage = NewExclusiveArray[T](v.storage.Capacity())
	copy(c.storage.Slots(), v.Slice())
	return c
}

// Move transfers v's buffer to a new vector and leaves v empty with zero
// capacity.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{size: v.size, log: v.log}
	m.storage = v.storage.Move()
	v.size = 0
	return m
}

// Assign replaces the contents of v with a deep copy of other.
func (v *Vector[T]) Assign(other *Vector[T]) {
	if v == other {
		return
	}
	tmp := other.Clone()
	v.Exchange(tmp)
}

// MoveFrom takes other's buffer and leaves other empty. v's previous buffer
// is dropped.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	tmp := other.Move()
	v.Exchange(tmp)
	tmp.storage.Free()
}

// Slice returns the live elements [0, Size) as a slice sharing v's buffer.
// Its capacity is clipped to Size, so appending to it never writes into v.
// The view is invalidated by the next reallocation.
func (v *Vector[T]) Slice() []T {
	s := v.storage.Slots()
	return s[:v.size:v.size]
}

// Begin returns the position of the first element. It is always 0.
func (v *Vector[T]) Begin() int {
	return 0
}

// End returns the position one past the last element.
// Begin() == End() iff the vector is empty.
func (v *Vector[T]) End() int {
	return v.size
}
