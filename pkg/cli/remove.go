// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"fmt"

	"github.com/oomol-lab/win-interface/pkg/cleanup"
	"github.com/oomol-lab/win-interface/pkg/instance"
	"github.com/oomol-lab/win-interface/pkg/ipc/event"
	"github.com/oomol-lab/win-interface/pkg/types"
	"github.com/oomol-lab/win-interface/pkg/winapi/sys"
)

type RemoveContext struct {
	types.RemoveOpt
	manifest *cleanup.Manifest
}

func RemoveCmd(p *types.RemoveOpt) *RemoveContext {
	return &RemoveContext{
		RemoveOpt: *p,
	}
}

func (c *RemoveContext) Setup() error {
	if err := setupBasic(&c.BasicOpt, "remove"); err != nil {
		return err
	}

	m, err := cleanup.LoadManifest(c.ManifestPath)
	if err != nil {
		return err
	}
	c.manifest = m

	return nil
}

// Start removes everything in the manifest. A non-admin run removes what it can, and when some
// entries are left it reruns elevated, so that they can be scheduled for deletion.
func (c *RemoveContext) Start(ctx context.Context) error {
	log := c.Logger
	m := c.manifest

	event.NotifyRemove(event.Removing)

	if m.IPCDir != "" && !c.IsElevatedProcess {
		if err := instance.EraseAll(m.IPCDir); err != nil {
			log.Warnf("Erasing dangling IPC items failed: %v", err)
		}
	}

	r, err := cleanup.Remove(ctx, log, m.Entries, &cleanup.Options{
		NoSchedule:  c.NoSchedule || !c.IsAdmin,
		TrustedDirs: m.TrustedDirs,
	})
	if err != nil {
		event.NotifyRemove(event.RemoveFailed)
		return fmt.Errorf("failed to remove entries: %w", err)
	}

	log.Infof("Removed %d, scheduled %d, skipped %d, failed %d", len(r.Removed), len(r.Scheduled), len(r.Skipped), len(r.Failed))

	if !c.IsElevatedProcess {
		if err := sys.UnregisterUninstall(log, m.UninstallID); err != nil {
			log.Warnf("Removing uninstall entry failed: %v", err)
		}
	}

	// the elevated child reports the final outcome itself
	if len(r.Failed) > 0 && !c.IsAdmin && !c.NoSchedule {
		if err := elevate(&c.BasicOpt); err != nil {
			event.NotifyRemove(event.RemoveFailed)
			return err
		}
		return nil
	}

	if !r.NeedReboot() {
		event.NotifyRemove(event.RemoveSuccess)
		return nil
	}

	event.NotifyRemove(event.NeedReboot)

	if c.Reboot {
		return sys.Reboot(log)
	}

	return nil
}
