// SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package winapi

import (
	"errors"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// UNIVERSAL_NAME_INFO_LEVEL
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/winnetwk/nf-winnetwk-wnetgetuniversalnamea#parameters
const UNIVERSAL_NAME_INFO_LEVEL = 1

type universalNameInfo struct {
	lpUniversalName *uint16
}

// WNetGetUniversalName retrieves the Universal Naming Convention (UNC) path for a mapped drive.
//
// The returned structure is followed by the string it points at, so the buffer grows until it fits.
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/winnetwk/nf-winnetwk-wnetgetuniversalnamew
func WNetGetUniversalName(lpLocalPath string) (string, error) {
	local, err := windows.UTF16PtrFromString(lpLocalPath)
	if err != nil {
		return "", err
	}

	size := uint32(1024)
	for {
		buf := make([]byte, size)
		r1, _, _ := wNetGetUniversalName.Call(
			uintptr(unsafe.Pointer(local)),
			uintptr(UNIVERSAL_NAME_INFO_LEVEL),
			uintptr(unsafe.Pointer(&buf[0])),
			uintptr(unsafe.Pointer(&size)),
		)
		if r1 == 0 {
			info := (*universalNameInfo)(unsafe.Pointer(&buf[0]))
			return windows.UTF16PtrToString(info.lpUniversalName), nil
		}

		if err := syscall.Errno(r1); !errors.Is(err, windows.ERROR_MORE_DATA) {
			return "", err
		}
	}
}
