// SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package winapi

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	shell32  *windows.LazyDLL
	kernel32 *windows.LazyDLL
	user32   *windows.LazyDLL
	mpr      *windows.LazyDLL

	shellExecuteEx           *windows.LazyProc
	freeConsole              *windows.LazyProc
	attachConsole            *windows.LazyProc
	multiByteToWideChar      *windows.LazyProc
	wideCharToMultiByte      *windows.LazyProc
	moveFileEx               *windows.LazyProc
	enumWindows              *windows.LazyProc
	getWindowThreadProcessId *windows.LazyProc
	setForegroundWindow      *windows.LazyProc
	wNetGetUniversalName     *windows.LazyProc
)

func init() {
	// lib
	shell32 = windows.NewLazySystemDLL("shell32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	user32 = windows.NewLazySystemDLL("user32.dll")
	mpr = windows.NewLazySystemDLL("mpr.dll")

	// function
	shellExecuteEx = shell32.NewProc("ShellExecuteExW")
	freeConsole = kernel32.NewProc("FreeConsole")
	attachConsole = kernel32.NewProc("AttachConsole")
	multiByteToWideChar = kernel32.NewProc("MultiByteToWideChar")
	wideCharToMultiByte = kernel32.NewProc("WideCharToMultiByte")
	moveFileEx = kernel32.NewProc("MoveFileExW")
	enumWindows = user32.NewProc("EnumWindows")
	getWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	setForegroundWindow = user32.NewProc("SetForegroundWindow")
	wNetGetUniversalName = mpr.NewProc("WNetGetUniversalNameW")
}

// CStr converts str to a NUL-terminated UTF-16 pointer, 0 when str contains NUL.
func CStr(str string) uintptr {
	s, err := syscall.UTF16PtrFromString(str)
	if err != nil {
		return 0
	}
	return uintptr(unsafe.Pointer(s))
}
