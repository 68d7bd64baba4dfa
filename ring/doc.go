// File: ring/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Byte-addressed SPSC ring buffer over a virtual-mirror region.
// One producer writes at the head, one consumer reads at the tail;
// monotonic atomic counters order publication without locks. Every
// transfer is a single contiguous copy because the backing region
// aliases its second half onto its first.
//
// Overflow and underflow do not truncate: either condition clears the
// buffer whole before proceeding. The design trades lossless delivery
// for data freshness and callers must size requests accordingly.
package ring
