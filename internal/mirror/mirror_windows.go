//go:build windows
// +build windows

// File: internal/mirror/mirror_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows double mapping: a pagefile-backed file mapping provides the
// physical pages; a VirtualAlloc reservation fixes the target address,
// is released, and two MapViewOfFileEx views are placed back to back
// at that address. Another thread can grab the address between the
// release and the view placement, which is why Map retries.

package mirror

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kern32              = windows.NewLazySystemDLL("kernel32.dll")
	procMapViewOfFileEx = kern32.NewProc("MapViewOfFileEx")
)

func mapViewAt(h windows.Handle, size int, addr uintptr) (uintptr, error) {
	view, _, err := procMapViewOfFileEx.Call(
		uintptr(h),
		uintptr(windows.FILE_MAP_READ|windows.FILE_MAP_WRITE),
		0, 0,
		uintptr(size),
		addr,
	)
	if view == 0 {
		return 0, err
	}
	return view, nil
}

func mapRegion(size int) (*Region, error) {
	h, err := windows.CreateFileMapping(windows.InvalidHandle, nil,
		windows.PAGE_READWRITE, uint32(uint64(size)>>32), uint32(size), nil)
	if err != nil {
		return nil, fmt.Errorf("CreateFileMapping: %w", err)
	}

	base, err := windows.VirtualAlloc(0, uintptr(2*size), windows.MEM_RESERVE, windows.PAGE_NOACCESS)
	if err != nil {
		windows.CloseHandle(h)
		return nil, fmt.Errorf("reserve: %w", err)
	}
	if err := windows.VirtualFree(base, 0, windows.MEM_RELEASE); err != nil {
		windows.CloseHandle(h)
		return nil, fmt.Errorf("release reservation: %w", err)
	}

	lo, err := mapViewAt(h, size, base)
	if err != nil {
		windows.CloseHandle(h)
		return nil, fmt.Errorf("map low half: %w", err)
	}
	hi, err := mapViewAt(h, size, base+uintptr(size))
	if err != nil {
		windows.UnmapViewOfFile(lo)
		windows.CloseHandle(h)
		return nil, fmt.Errorf("map high half: %w", err)
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(base)), 2*size)
	return &Region{
		data:     data,
		size:     size,
		mirrored: true,
		closeFn: func() error {
			err1 := windows.UnmapViewOfFile(lo)
			err2 := windows.UnmapViewOfFile(hi)
			err3 := windows.CloseHandle(h)
			if err1 != nil {
				return err1
			}
			if err2 != nil {
				return err2
			}
			return err3
		},
	}, nil
}
