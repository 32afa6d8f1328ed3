// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"sync/atomic"

	"github.com/oomol-lab/win-interface/pkg/logger"
	"github.com/oomol-lab/win-interface/pkg/status"
	"github.com/oomol-lab/win-interface/pkg/types"
	"github.com/oomol-lab/win-interface/pkg/winapi/sys"
)

var log atomic.Pointer[logger.Context]

func init() {
	log.Store(logger.Discard())
}

func enableLog(dir, name string) int32 {
	l, err := logger.New(dir, name)
	if err != nil {
		return 1
	}

	if old := log.Swap(l); old != nil {
		old.Close()
	}

	return 0
}

// createLink returns the HRESULT of the failing step, 0 on success.
func createLink(opt *types.LinkOpt) int32 {
	return int32(status.HResult(sys.CreateLink(log.Load(), opt)))
}

// scheduleFileDelete returns the Win32 error code, 0 on success.
func scheduleFileDelete(target string) int32 {
	return int32(status.CodeOf(sys.ScheduleFileDelete(log.Load(), target)))
}

// focusPID returns 0 when focused, 1 when pid has no window, 2 on any other failure.
func focusPID(pid uint32) int32 {
	return int32(status.FocusCode(sys.FocusPID(log.Load(), pid)))
}
