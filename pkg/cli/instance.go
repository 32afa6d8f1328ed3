// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oomol-lab/win-interface/pkg/instance"
	"github.com/oomol-lab/win-interface/pkg/ipc/event"
	"github.com/oomol-lab/win-interface/pkg/types"
	"github.com/oomol-lab/win-interface/pkg/util"
)

type InstanceContext struct {
	types.InstanceOpt
}

func InstanceCmd(p *types.InstanceOpt) *InstanceContext {
	return &InstanceContext{
		*p,
	}
}

func (c *InstanceContext) Setup() error {
	if c.IPCDir == "" {
		p, ok := util.IPCPath(c.Name)
		if !ok {
			return fmt.Errorf("ipc-dir is required, cannot find LocalAppData")
		}
		c.IPCDir = p
	}

	p, err := filepath.Abs(c.IPCDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path from %s: %w", c.IPCDir, err)
	}
	c.IPCDir = p

	return setupBasic(&c.BasicOpt, "instance")
}

// Start registers the bind pid (or this process). When another instance is already running it is
// brought to the foreground instead and Start returns right away.
func (c *InstanceContext) Start(ctx context.Context) error {
	log := c.Logger

	self := uint32(os.Getpid())
	if c.BindPID != 0 {
		self = uint32(c.BindPID)
	}

	found, err := instance.FocusOther(ctx, log, c.IPCDir, self)
	if err != nil {
		log.Warnf("Focus other instance failed: %v", err)
	}
	if found {
		event.NotifyInstance(event.AlreadyRunning)
		return nil
	}

	reg, err := instance.New(c.IPCDir, self)
	if err != nil {
		return fmt.Errorf("failed to register instance: %w", err)
	}
	defer func() {
		if err := reg.Close(); err != nil {
			log.Warnf("Unregister instance failed: %v", err)
		}
	}()

	log.Infof("Instance %d registered in %s", self, c.IPCDir)
	event.NotifyInstance(event.Registered)

	if err := util.WaitBindPID(ctx, log, c.BindPID); err != nil {
		log.Infof("Instance %d done: %v", self, err)
	}

	return nil
}
