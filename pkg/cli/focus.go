// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"github.com/oomol-lab/win-interface/pkg/ipc/event"
	"github.com/oomol-lab/win-interface/pkg/status"
	"github.com/oomol-lab/win-interface/pkg/types"
	"github.com/oomol-lab/win-interface/pkg/winapi/sys"
)

type FocusContext struct {
	types.FocusOpt
}

func FocusCmd(p *types.FocusOpt) *FocusContext {
	return &FocusContext{
		*p,
	}
}

func (c *FocusContext) Setup() error {
	if c.PID == 0 {
		return fmt.Errorf("pid is required")
	}

	return setupBasic(&c.BasicOpt, "focus")
}

func (c *FocusContext) Start() error {
	err := sys.FocusPID(c.Logger, c.PID)

	switch status.KindOf(err) {
	case status.OK:
		event.NotifyFocus(event.Focused)
	case status.NotFound:
		event.NotifyFocus(event.WindowNotFound)
	default:
		event.NotifyFocus(event.FocusFailed)
	}

	return err
}
