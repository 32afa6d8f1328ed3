// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package sys

import (
	"strings"

	"github.com/oomol-lab/win-interface/pkg/status"
	"github.com/oomol-lab/win-interface/pkg/winapi"
	"golang.org/x/sys/windows"
)

// UTF8ToUTF16 converts s to UTF-16 code units, without a trailing NUL.
//
// Malformed UTF-8 is an error of kind [status.InvalidEncoding], it is never replaced with U+FFFD.
func UTF8ToUTF16(s string) ([]uint16, error) {
	if s == "" {
		return []uint16{}, nil
	}

	src := []byte(s)

	n, err := winapi.MultiByteToWideChar(winapi.CP_UTF8, winapi.MB_ERR_INVALID_CHARS, src, nil)
	if err != nil {
		return nil, status.New(status.InvalidEncoding, "MultiByteToWideChar", winapi.Errno(err), err)
	}

	buf := make([]uint16, n)
	n, err = winapi.MultiByteToWideChar(winapi.CP_UTF8, winapi.MB_ERR_INVALID_CHARS, src, buf)
	if err != nil {
		return nil, status.New(status.InvalidEncoding, "MultiByteToWideChar", winapi.Errno(err), err)
	}

	return buf[:n], nil
}

// UTF16ToUTF8 converts UTF-16 code units to a UTF-8 string. Unpaired surrogates are an error.
func UTF16ToUTF8(u []uint16) (string, error) {
	if len(u) == 0 {
		return "", nil
	}

	n, err := winapi.WideCharToMultiByte(winapi.CP_UTF8, winapi.WC_ERR_INVALID_CHARS, u, nil)
	if err != nil {
		return "", status.New(status.InvalidEncoding, "WideCharToMultiByte", winapi.Errno(err), err)
	}

	buf := make([]byte, n)
	n, err = winapi.WideCharToMultiByte(winapi.CP_UTF8, winapi.WC_ERR_INVALID_CHARS, u, buf)
	if err != nil {
		return "", status.New(status.InvalidEncoding, "WideCharToMultiByte", winapi.Errno(err), err)
	}

	return string(buf[:n]), nil
}

// UTF16PtrFromUTF8 returns a NUL-terminated UTF-16 copy of s suitable for Win32 calls.
func UTF16PtrFromUTF8(s string) (*uint16, error) {
	if strings.IndexByte(s, 0) != -1 {
		return nil, status.New(status.InvalidEncoding, "UTF16PtrFromUTF8", uint32(windows.ERROR_INVALID_PARAMETER), windows.ERROR_INVALID_PARAMETER)
	}

	u, err := UTF8ToUTF16(s)
	if err != nil {
		return nil, err
	}

	u = append(u, 0)
	return &u[0], nil
}
