// File: buffer/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Generic element-typed layer over the byte ring. Ring[T] turns
// element counts into byte spans and byte views back into typed
// slices. The element type must have a fixed in-memory size and must
// not contain pointers: the mapped region is invisible to the garbage
// collector, so a pointer buffered there keeps nothing alive. The byte
// capacity is kept an exact multiple of the element size so every
// element offset stays element-aligned across the mirror seam.
package buffer
