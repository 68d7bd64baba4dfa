//go:build linux
// +build linux

// File: internal/mirror/mirror_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux double mapping: an anonymous memfd holds the physical pages,
// a PROT_NONE reservation pins 2*size of address space, then both
// halves are remapped MAP_FIXED|MAP_SHARED onto the same memfd offset.

package mirror

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

func mapRegion(size int) (*Region, error) {
	fd, err := unix.MemfdCreate("mirrorbuf", unix.MFD_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("memfd_create: %w", err)
	}
	// The fd only anchors the pages during mapping; both views keep
	// them alive afterwards.
	defer unix.Close(fd)

	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		return nil, fmt.Errorf("ftruncate: %w", err)
	}

	base, err := unix.Mmap(-1, 0, 2*size, unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("reserve: %w", err)
	}
	addr := unsafe.Pointer(&base[0])

	if _, err := unix.MmapPtr(fd, 0, addr, uintptr(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_FIXED); err != nil {
		unix.Munmap(base)
		return nil, fmt.Errorf("map low half: %w", err)
	}
	if _, err := unix.MmapPtr(fd, 0, unsafe.Add(addr, size), uintptr(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_FIXED); err != nil {
		unix.Munmap(base)
		return nil, fmt.Errorf("map high half: %w", err)
	}

	return &Region{
		data:     base,
		size:     size,
		mirrored: true,
		closeFn: func() error {
			return unix.Munmap(base)
		},
	}, nil
}
