package vector

// SlotSize returns the size in bytes of one slot.
func (v *Vector[T]) SlotSize() int {
	return slotSize[T]()
}

// AllocatedBytes returns the bytes held by the slot buffer.
// Memory referenced by the elements themselves is not counted.
func (v *Vector[T]) AllocatedBytes() int {
	return v.storage.Capacity() * slotSize[T]()
}

// Utilization returns the ratio of size to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.storage.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Reallocations returns how many times v has replaced its buffer to grow.
func (v *Vector[T]) Reallocations() int {
	return v.reallocs
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	return Metrics{
		Size:           v.size,
		Capacity:       v.storage.Capacity(),
		SlotSize:       v.SlotSize(),
		AllocatedBytes: v.AllocatedBytes(),
		Utilization:    v.Utilization(),
		Reallocations:  v.reallocs,
	}
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Size           int     // Live elements
	Capacity       int     // Allocated slots
	SlotSize       int     // Bytes per slot
	AllocatedBytes int     // Capacity * SlotSize
	Utilization    float64 // Ratio of size to capacity (0.0-1.0)
	Reallocations  int     // Buffer replacements caused by growth
}
