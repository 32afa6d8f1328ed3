// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package winapi

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// EnumWindows enumerates all top-level windows by passing each handle to callback.
//
// callback must come from [windows.NewCallback], param is handed to it as lParam. ok is false
// when the callback stopped the enumeration or the enumeration failed, lastErr tells those two apart.
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-enumwindows
func EnumWindows(callback uintptr, param uintptr) (ok bool, lastErr syscall.Errno) {
	ret, _, err := enumWindows.Call(callback, param)
	if errno, isErrno := err.(syscall.Errno); isErrno {
		lastErr = errno
	}

	return ret != 0, lastErr
}

// GetWindowThreadProcessId returns the identifier of the process that created the window.
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-getwindowthreadprocessid
func GetWindowThreadProcessId(hwnd windows.HWND) (pid uint32) {
	_, _, _ = getWindowThreadProcessId.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&pid)))
	return pid
}

// SetForegroundWindow brings the thread that created hwnd into the foreground and activates the window.
//
// The system restricts which processes can set the foreground window, so false is an expected result.
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-setforegroundwindow
func SetForegroundWindow(hwnd windows.HWND) bool {
	ret, _, _ := setForegroundWindow.Call(uintptr(hwnd))
	return ret != 0
}
