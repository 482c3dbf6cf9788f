// Package vector implements a growable contiguous sequence with explicit
// capacity control, built on a single-owner slot buffer.
//
// # Overview
//
// Two types cooperate:
//
//   - ExclusiveArray is the sole owner of a fixed-size buffer. It can be
//     created, adopted, released, exchanged and moved, but never copied
//     or resized.
//   - Vector owns exactly one ExclusiveArray plus a size. It decides when
//     to grow and keeps elements in order across inserts and erases.
//
// # Basic Usage
//
//	v := vector.Of(1, 2, 3) // size 3, capacity 3
//	v.PushBack(4)           // capacity doubles to 6
//	v.Insert(1, 9)          // [1 9 2 3 4]
//	v.Erase(0)              // [9 2 3 4]
//
//	x, err := v.At(10) // errors.Is(err, vector.ErrOutOfRange)
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Growth
//
// Every growth allocates a new buffer, copies the live elements into it and
// then swaps it in. The target capacity depends on the operation:
//
//   - PushBack and Insert on a full vector: max(1, 2*Capacity())
//   - Resize(n) past capacity: 2*n
//   - Reserve(n): exactly n
//
// Capacity never shrinks on its own. PopBack, Erase, Clear and shrinking
// Resize only change the size and zero the vacated slots.
//
// # Copying
//
// A Vector must not be copied by value; the copy would alias the buffer.
// Use Clone for a deep copy, Move to transfer ownership, and Assign or
// MoveFrom to replace the contents of an existing vector.
//
// # Errors and Preconditions
//
// At, AtRef, Front, Back, Insert and Erase check their position and return
// an error wrapping ErrOutOfRange. Index, Ref and Set do not; passing an
// index outside [0, Size()) is a caller bug. Building with
// -tags vectordebug turns those calls into assertions.
//
// PopBack on an empty vector is a no-op.
//
// # Thread Safety
//
// Vector and ExclusiveArray are not safe for concurrent use.
//
// # Logging and Metrics
//
// Pass WithLogger to get a Debug entry for every reallocation. Metrics
// returns size, capacity, bytes held and the reallocation count.
package vector
