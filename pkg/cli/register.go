// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"github.com/oomol-lab/win-interface/pkg/types"
	"github.com/oomol-lab/win-interface/pkg/winapi/sys"
)

type RegisterContext struct {
	types.RegisterOpt
}

func RegisterCmd(p *types.RegisterOpt) *RegisterContext {
	return &RegisterContext{
		*p,
	}
}

func (c *RegisterContext) Setup() error {
	if c.ID == "" {
		return fmt.Errorf("id is required")
	}

	return setupBasic(&c.BasicOpt, "register")
}

func (c *RegisterContext) Start() error {
	if err := sys.RegisterUninstall(c.Logger, &c.UninstallEntry); err != nil {
		return fmt.Errorf("failed to register uninstall entry: %w", err)
	}
	return nil
}
