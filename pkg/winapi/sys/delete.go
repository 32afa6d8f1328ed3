// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package sys

import (
	"os"

	"github.com/oomol-lab/win-interface/pkg/logger"
	"github.com/oomol-lab/win-interface/pkg/status"
	"github.com/oomol-lab/win-interface/pkg/winapi"
)

// ScheduleFileDelete asks the OS to delete path at the next system startup.
//
// The file is not touched now and does not need to exist. Registering needs write access to
// HKLM, so non-elevated callers get ERROR_ACCESS_DENIED. Errors are of kind [status.OSFailure]
// carrying GetLastError, or [status.InvalidEncoding].
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/winbase/nf-winbase-movefileexw
func ScheduleFileDelete(log *logger.Context, path string) error {
	p, err := UTF16PtrFromUTF8(path)
	if err != nil {
		return err
	}

	if err := winapi.MoveFileEx(p, nil, winapi.MOVEFILE_DELAY_UNTIL_REBOOT); err != nil {
		log.Warnf("Schedule delete %s failed: %v", path, err)
		return status.New(status.OSFailure, "MoveFileExW", winapi.Errno(err), err)
	}

	log.Infof("Scheduled %s for deletion after reboot", path)
	return nil
}

// RemoveOrSchedule removes path now, falling back to [ScheduleFileDelete] when that fails
// (typically because the file is in use). Directories are only removed when empty.
func RemoveOrSchedule(log *logger.Context, path string) (scheduled bool, err error) {
	removeErr := os.Remove(path)
	if removeErr == nil || os.IsNotExist(removeErr) {
		return false, nil
	}

	log.Warnf("Cannot remove %s now, schedule it: %v", path, removeErr)

	if err := ScheduleFileDelete(log, path); err != nil {
		return false, err
	}

	return true, nil
}
