// Package ring
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity circular buffer over a single contiguous slice.
//
// Buffer exposes element access by logical offset and a block interface for
// zero-copy scatter/gather I/O:
//   - FreeBlocks / Produce for producers writing in place at the tail
//   - UsedBlocks / Consume for consumers reading in place from the head
//
// Either region is described as at most two spans because it may straddle the
// physical end of storage. Spans alias the storage and are valid until the
// next mutating call.
//
// Buffer is not safe for concurrent use. Locked wraps it behind a mutex, and
// Stream adapts a byte buffer to the io interfaces.
//
// Building with the ringdebug tag turns unchecked contract violations
// (Index, Front, Back, Produce, Consume) into panics.
package ring
