// SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package winapi

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// SEE_MASK Define [FMask] member for [SHELLEXECUTEINFO]
//
// [FMask]: https://learn.microsoft.com/en-us/windows/win32/api/shellapi/ns-shellapi-shellexecuteinfow#members
type SEE_MASK uint32

const (
	SEE_MASK_DEFAULT        SEE_MASK = 0x00000000
	SEE_MASK_NOCLOSEPROCESS SEE_MASK = 0x00000040
	SEE_MASK_NOASYNC        SEE_MASK = 0x00000100
	SEE_MASK_FLAG_NO_UI     SEE_MASK = 0x00000400
	SEE_MASK_UNICODE        SEE_MASK = 0x00004000
	SEE_MASK_NO_CONSOLE     SEE_MASK = 0x00008000
)

// SE_ERR Define [Error Code] for [SHELLEXECUTEINFO] HInstApp member
//
// [Error Code]: https://learn.microsoft.com/en-us/windows/win32/api/shellapi/ns-shellapi-shellexecuteinfow#members
type SE_ERR uint32

const (
	SE_ERR_FNF             SE_ERR = 2  // File not found
	SE_ERR_PNF             SE_ERR = 3  // Path not found
	SE_ERR_ACCESSDENIED    SE_ERR = 5  // Access denied
	SE_ERR_OOM             SE_ERR = 8  // Out of memory
	SE_ERR_SHARE           SE_ERR = 26 // Cannot share an open file
	SE_ERR_ASSOCINCOMPLETE SE_ERR = 27 // File association information not complete
	SE_ERR_DLLNOTFOUND     SE_ERR = 32 // Dynamic-link library not found.
	SE_ERR_NOASSOC         SE_ERR = 31 // File association not available
)

var seErrMsg = map[SE_ERR]string{
	SE_ERR_FNF:             "File not found",
	SE_ERR_PNF:             "Path not found",
	SE_ERR_ACCESSDENIED:    "Access denied",
	SE_ERR_OOM:             "Out of memory",
	SE_ERR_SHARE:           "Cannot share an open file",
	SE_ERR_ASSOCINCOMPLETE: "File association information not complete",
	SE_ERR_DLLNOTFOUND:     "Dynamic-link library not found.",
	SE_ERR_NOASSOC:         "File association not available",
}

func (e SE_ERR) String() string {
	if msg, ok := seErrMsg[e]; ok {
		return msg
	}
	return fmt.Sprintf("SE_ERR(%d)", uint32(e))
}

// SHELLEXECUTEINFO Define Window [SHELLEXECUTEINFOW Structure]
//
// [SHELLEXECUTEINFOW Structure]: https://learn.microsoft.com/en-us/windows/win32/api/shellapi/ns-shellapi-shellexecuteinfow
type SHELLEXECUTEINFO struct {
	CbSize         uint32
	FMask          SEE_MASK
	Hwnd           windows.Handle
	LpVerb         uintptr
	LpFile         uintptr
	LpParams       uintptr
	LpDirectory    uintptr
	NShow          int32
	HInstApp       windows.Handle
	LpIDList       unsafe.Pointer
	LpClass        uintptr
	HKeyClass      windows.Handle
	DwHotKey       uint32
	HIconOrMonitor windows.Handle
	HProcess       windows.Handle
}

// ShellExecuteEx Encapsulation of the Windows [ShellExecuteExW] function
//
// On failure the returned error includes the SE_ERR code the shell stored in HInstApp.
//
// [ShellExecuteExW]: https://learn.microsoft.com/en-us/windows/win32/api/shellapi/nf-shellapi-shellexecuteexw
func ShellExecuteEx(info *SHELLEXECUTEINFO) error {
	info.CbSize = uint32(unsafe.Sizeof(*info))

	if ret, _, lastErr := shellExecuteEx.Call(uintptr(unsafe.Pointer(info))); ret == 0 {
		if info.HInstApp != 0 && info.HInstApp <= 32 {
			return fmt.Errorf("%s: %w", SE_ERR(info.HInstApp), lastErr)
		}
		return lastErr
	}

	return nil
}
