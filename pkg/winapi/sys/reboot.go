// SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package sys

import (
	"fmt"

	"github.com/Microsoft/go-winio"
	"github.com/oomol-lab/win-interface/pkg/logger"
	"golang.org/x/sys/windows"
)

// ref: https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-exitwindowsex#parameters
const rebootFlags = windows.EWX_REBOOT | windows.EWX_RESTARTAPPS | windows.EWX_FORCEIFHUNG

// "Application: Maintenance (Planned)", pending deletions are applied during the restart.
// ref: https://learn.microsoft.com/en-us/windows/win32/shutdown/system-shutdown-reason-codes
const rebootReason = windows.SHTDN_REASON_MAJOR_APPLICATION | windows.SHTDN_REASON_MINOR_MAINTENANCE | windows.SHTDN_REASON_FLAG_PLANNED

// ref: https://learn.microsoft.com/en-us/windows/win32/secauthz/privilege-constants#constants
const shutdownPrivilege = "SeShutdownPrivilege"

// Reboot restarts the system so that deletions registered by [ScheduleFileDelete] run.
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-exitwindowsex
func Reboot(log *logger.Context) error {
	log.Info("Reboot the system to apply pending deletions")

	err := winio.RunWithPrivilege(shutdownPrivilege, func() error {
		if err := windows.ExitWindowsEx(rebootFlags, rebootReason); err != nil {
			return fmt.Errorf("execute ExitWindowsEx to reboot system failed: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("cannot reboot system: %w", err)
	}

	return nil
}
