// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package status

// Ref: https://learn.microsoft.com/en-us/windows/win32/debug/system-error-codes
const (
	errorGenFailure = 31

	facilityWin32 = 7

	// EFail is the generic failing HRESULT E_FAIL.
	EFail = 0x80004005
)

// Result codes of FocusPID at the C boundary.
const (
	FocusOK       = 0
	FocusNotFound = 1
	FocusError    = 2
)

// HResultFromWin32 mirrors the HRESULT_FROM_WIN32 macro.
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/winerror/nf-winerror-hresult_from_win32
func HResultFromWin32(code uint32) uint32 {
	if int32(code) <= 0 {
		return code
	}

	return (code & 0x0000FFFF) | (facilityWin32 << 16) | 0x80000000
}

// HResult returns the HRESULT for err: the raw value for COMFailure,
// HRESULT_FROM_WIN32 of the Win32 code for every other kind. A failure without
// a code is [EFail], never S_OK.
func HResult(err error) uint32 {
	if err == nil {
		return 0
	}

	hr := HResultFromWin32(CodeOf(err))
	if KindOf(err) == COMFailure {
		hr = CodeOf(err)
	}

	if hr == 0 {
		return EFail
	}
	return hr
}

// FocusCode collapses err into the 0 / 1 / 2 contract of FocusPID.
func FocusCode(err error) int {
	switch KindOf(err) {
	case OK:
		return FocusOK
	case NotFound:
		return FocusNotFound
	default:
		return FocusError
	}
}
