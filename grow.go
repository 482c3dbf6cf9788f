package vector

import "go.uber.org/zap"

// nextCapacity is the growth rule for PushBack and Insert: double, starting at 1.
func nextCapacity(old int) int {
	return max(1, 2*old)
}

// resizeCapacity is the growth rule for Resize: twice the requested size,
// regardless of the old capacity.
func resizeCapacity(newSize int) int {
	return 2 * newSize
}

// reallocate moves the live elements into a fresh buffer of exactly capacity
// slots and adopts it. The fresh buffer is fully populated before it is
// swapped in, so v is untouched if populating it panics.
func (v *Vector[T]) reallocate(op string, capacity int) {
	old := v.storage.Capacity()

	fresh := NewExclusiveArray[T](capacity)
	copy(fresh.Slots(), v.storage.Slots()[:v.size])
	v.storage.Exchange(&fresh)
	fresh.Free()

	v.reallocs++
	v.logger().Debug("vector: reallocate",
		zap.String("op", op),
		zap.Int("from", old),
		zap.Int("to", capacity),
		zap.Int("size", v.size),
	)
}
