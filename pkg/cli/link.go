// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/oomol-lab/win-interface/pkg/ipc/event"
	"github.com/oomol-lab/win-interface/pkg/types"
	"github.com/oomol-lab/win-interface/pkg/winapi/sys"
)

type LinkLocation int

const (
	LinkAt LinkLocation = iota
	LinkOnDesktop
	LinkInStartMenu
)

type LinkContext struct {
	types.LinkCmdOpt
	location LinkLocation
}

// LinkCmd creates a shortcut. For LinkOnDesktop and LinkInStartMenu, LinkPath holds the shortcut
// name and is resolved during Setup.
func LinkCmd(p *types.LinkCmdOpt, location LinkLocation) *LinkContext {
	return &LinkContext{
		LinkCmdOpt: *p,
		location:   location,
	}
}

func (c *LinkContext) Setup() error {
	if err := setupBasic(&c.BasicOpt, "link"); err != nil {
		return err
	}

	var err error
	switch c.location {
	case LinkOnDesktop:
		c.LinkPath, err = sys.DesktopLinkPath(c.LinkPath)
	case LinkInStartMenu:
		c.LinkPath, err = sys.StartMenuLinkPath(c.LinkPath)
	default:
		c.LinkPath, err = filepath.Abs(c.LinkPath)
	}
	if err != nil {
		return fmt.Errorf("failed to resolve shortcut path: %w", err)
	}

	return nil
}

func (c *LinkContext) Start() error {
	log := c.Logger
	event.NotifyLink(event.Linking)

	if c.Admin && !sys.SupportRunAsShortcut(log) {
		log.Warn("Run as administrator shortcuts are not supported on this system, create a normal one")
		c.Admin = false
	}

	if err := sys.CreateLink(log, &c.LinkOpt); err != nil {
		event.NotifyLink(event.LinkFailed)
		return fmt.Errorf("failed to create shortcut %s: %w", c.LinkPath, err)
	}

	event.NotifyLink(event.LinkSuccess)
	return nil
}
