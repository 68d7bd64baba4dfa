//go:build !linux && !windows
// +build !linux,!windows

// File: internal/mirror/mirror_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Software fallback for platforms without fixed-address remapping.
// The second half is an ordinary heap allocation kept coherent by
// Region.Sync after every write.

package mirror

func mapRegion(size int) (*Region, error) {
	return &Region{
		data: make([]byte, 2*size),
		size: size,
	}, nil
}
