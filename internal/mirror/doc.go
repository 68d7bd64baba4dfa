// File: internal/mirror/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Virtual-mirror memory regions for wrap-free ring buffering.
// A Region maps the same physical pages twice, back to back, so any
// span of up to Size bytes starting anywhere in the first half is
// contiguous in virtual memory. Platform backends: memfd + MAP_FIXED
// double mapping on Linux, file-mapping views on Windows, and a
// software-replicated fallback elsewhere.
package mirror
