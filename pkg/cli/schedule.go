// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/oomol-lab/win-interface/pkg/ipc/event"
	"github.com/oomol-lab/win-interface/pkg/types"
	"github.com/oomol-lab/win-interface/pkg/winapi/sys"
)

type ScheduleDeleteContext struct {
	types.ScheduleDeleteOpt
}

func ScheduleDeleteCmd(p *types.ScheduleDeleteOpt) *ScheduleDeleteContext {
	return &ScheduleDeleteContext{
		*p,
	}
}

func (c *ScheduleDeleteContext) Setup() error {
	if len(c.Paths) == 0 {
		return fmt.Errorf("no path to schedule")
	}

	for i, p := range c.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to get absolute path from %s: %w", p, err)
		}
		c.Paths[i] = abs
	}

	return setupBasic(&c.BasicOpt, "schedule-delete")
}

func (c *ScheduleDeleteContext) Start() error {
	// MoveFileExW with MOVEFILE_DELAY_UNTIL_REBOOT writes to HKLM
	if !c.IsAdmin {
		return elevate(&c.BasicOpt)
	}

	event.NotifyDelete(event.Scheduling)

	var errs []error
	for _, p := range c.Paths {
		if err := sys.ScheduleFileDelete(c.Logger, p); err != nil {
			errs = append(errs, fmt.Errorf("schedule %s: %w", p, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		event.NotifyDelete(event.ScheduleFailed)
		return err
	}

	event.NotifyDelete(event.ScheduleSuccess)
	return nil
}
