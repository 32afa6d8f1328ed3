// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package sys

import (
	"sync"
	"sync/atomic"

	"github.com/oomol-lab/win-interface/pkg/logger"
	"github.com/oomol-lab/win-interface/pkg/status"
	"github.com/oomol-lab/win-interface/pkg/winapi"
	"golang.org/x/sys/windows"
)

type windowSearch struct {
	pid  uint32
	hwnd windows.HWND
}

var (
	// running searches by the id passed as lParam
	searches  sync.Map
	searchSeq atomic.Uintptr
)

// The number of callbacks a process can create is limited, so a single stateless one is shared
// by every search.
var enumWindowsProc = windows.NewCallback(func(hwnd windows.HWND, lParam uintptr) uintptr {
	v, ok := searches.Load(lParam)
	if !ok {
		return 0
	}

	s := v.(*windowSearch)
	if winapi.GetWindowThreadProcessId(hwnd) != s.pid {
		return 1
	}

	s.hwnd = hwnd
	return 0
})

// WindowFromPID returns one top-level window owned by pid.
//
// Enumeration order is decided by the OS, when a process owns several windows any of them may
// be returned. Errors are of kind [status.NotFound] or [status.EnumFailed].
func WindowFromPID(pid uint32) (windows.HWND, error) {
	s := &windowSearch{pid: pid}
	id := searchSeq.Add(1)
	searches.Store(id, s)
	defer searches.Delete(id)

	completed, lastErr := winapi.EnumWindows(enumWindowsProc, id)
	if s.hwnd != 0 {
		return s.hwnd, nil
	}

	// EnumWindows also returns FALSE when a callback stops it, so a failure only counts when
	// the error state is not ERROR_SUCCESS.
	if completed || lastErr == windows.ERROR_SUCCESS {
		return 0, status.New(status.NotFound, "EnumWindows", 0, nil)
	}

	return 0, status.New(status.EnumFailed, "EnumWindows", uint32(lastErr), lastErr)
}

// FocusPID brings a top-level window owned by pid to the foreground.
//
// Errors are of kind [status.NotFound], [status.EnumFailed] or [status.FocusRefused]; the OS
// refuses focus changes from processes that are not allowed to steal the foreground.
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-setforegroundwindow#remarks
func FocusPID(log *logger.Context, pid uint32) error {
	hwnd, err := WindowFromPID(pid)
	if err != nil {
		log.Warnf("Cannot find window of pid %d: %v", pid, err)
		return err
	}

	if !winapi.SetForegroundWindow(hwnd) {
		log.Warnf("SetForegroundWindow refused for pid %d, hwnd 0x%X", pid, uintptr(hwnd))
		return status.New(status.FocusRefused, "SetForegroundWindow", 0, nil)
	}

	log.Infof("Focused window 0x%X of pid %d", uintptr(hwnd), pid)
	return nil
}
