// SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package winapi

import (
	"syscall"
	"unsafe"
)

// FreeConsole detaches the calling process from its console.
//
// Ref: https://learn.microsoft.com/en-us/windows/console/freeconsole
func FreeConsole() error {
	if ret, _, lastErr := freeConsole.Call(); ret == 0 {
		return lastErr
	}

	return nil
}

// AttachConsole attaches the calling process to the console of the specified process.
//
// ^uintptr(0) can be used to attach to the parent process.
// Ref: https://learn.microsoft.com/en-us/windows/console/attachconsole
func AttachConsole(pid uintptr) error {
	if ret, _, lastErr := attachConsole.Call(pid); ret == 0 {
		return lastErr
	}

	return nil
}

// Code pages and conversion flags
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/intl/code-page-identifiers
const (
	CP_ACP               = 0
	CP_UTF8              = 65001
	MB_ERR_INVALID_CHARS = 0x00000008
	WC_ERR_INVALID_CHARS = 0x00000080
)

// MultiByteToWideChar maps a character string to a UTF-16 string.
//
// Passing a nil dst returns the required size in UTF-16 code units.
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/stringapiset/nf-stringapiset-multibytetowidechar
func MultiByteToWideChar(codePage, flags uint32, src []byte, dst []uint16) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	var pDst uintptr
	if len(dst) > 0 {
		pDst = uintptr(unsafe.Pointer(&dst[0]))
	}

	ret, _, lastErr := multiByteToWideChar.Call(
		uintptr(codePage),
		uintptr(flags),
		uintptr(unsafe.Pointer(&src[0])),
		uintptr(int32(len(src))),
		pDst,
		uintptr(int32(len(dst))),
	)
	if int32(ret) == 0 {
		return 0, lastErr
	}

	return int(int32(ret)), nil
}

// WideCharToMultiByte maps a UTF-16 string to a new character string.
//
// Passing a nil dst returns the required size in bytes.
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/stringapiset/nf-stringapiset-widechartomultibyte
func WideCharToMultiByte(codePage, flags uint32, src []uint16, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	var pDst uintptr
	if len(dst) > 0 {
		pDst = uintptr(unsafe.Pointer(&dst[0]))
	}

	ret, _, lastErr := wideCharToMultiByte.Call(
		uintptr(codePage),
		uintptr(flags),
		uintptr(unsafe.Pointer(&src[0])),
		uintptr(int32(len(src))),
		pDst,
		uintptr(int32(len(dst))),
		0,
		0,
	)
	if int32(ret) == 0 {
		return 0, lastErr
	}

	return int(int32(ret)), nil
}

// MOVEFILE flags
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/winbase/nf-winbase-movefileexw#parameters
const (
	MOVEFILE_REPLACE_EXISTING   = 0x00000001
	MOVEFILE_DELAY_UNTIL_REBOOT = 0x00000004
)

// MoveFileEx moves a file or directory, a nil newPath with [MOVEFILE_DELAY_UNTIL_REBOOT]
// registers existing for deletion at the next system startup.
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/winbase/nf-winbase-movefileexw
func MoveFileEx(existing, newPath *uint16, flags uint32) error {
	ret, _, lastErr := moveFileEx.Call(
		uintptr(unsafe.Pointer(existing)),
		uintptr(unsafe.Pointer(newPath)),
		uintptr(flags),
	)
	if ret == 0 {
		return lastErr
	}

	return nil
}

// Errno extracts the Win32 error code from err, 0 when it is not a [syscall.Errno].
func Errno(err error) uint32 {
	if e, ok := err.(syscall.Errno); ok {
		return uint32(e)
	}
	return 0
}
