// SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oomol-lab/win-interface/pkg/ipc/event"
	"github.com/oomol-lab/win-interface/pkg/logger"
	"github.com/oomol-lab/win-interface/pkg/types"
	"github.com/oomol-lab/win-interface/pkg/winapi/sys"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/windows"
)

func setupLogPath(c *types.BasicOpt) error {
	p, err := filepath.Abs(c.LogPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path from %s: %v", c.LogPath, err)
	}

	if err := os.MkdirAll(p, 0755); err != nil {
		return fmt.Errorf("failed to create log folder %s: %v", p, err)
	}

	c.LogPath = p

	return nil
}

func setupProcess(c *types.BasicOpt) error {
	c.IsAdmin = sys.IsAdmin()

	isElevated, err := sys.IsElevatedProcess()
	if err != nil {
		return fmt.Errorf("failed to check if the current process is an elevated child process: %w", err)
	}
	c.IsElevatedProcess = isElevated

	return nil
}

// setupBasic prepares what every command needs: process state, the logger named <prefix>-<name>
// and the event pipe.
func setupBasic(c *types.BasicOpt, prefix string) error {
	g := errgroup.Group{}
	g.Go(func() error {
		return setupLogPath(c)
	})
	g.Go(func() error {
		return setupProcess(c)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if log, err := loggerInstance(c, prefix); err != nil {
		return fmt.Errorf("failed to setup log: %w", err)
	} else {
		c.Logger = log
	}

	moveConsoleToParent(c)

	event.Setup(c.Logger, c.EventNpipeName)

	return nil
}

func loggerInstance(c *types.BasicOpt, prefix string) (*logger.Context, error) {
	name := prefix
	if c.Name != "" {
		name += "-" + c.Name
	}

	if c.IsElevatedProcess {
		return logger.NewWithChildProcess(c.LogPath, name)
	}
	return logger.New(c.LogPath, name)
}

func moveConsoleToParent(c *types.BasicOpt) {
	// For debugging purposes, we need to redirect the console of the current process to the parent process
	if !c.IsElevatedProcess {
		return
	}

	if err := sys.MoveConsoleToParent(); err != nil {
		if errors.Is(err, windows.ERROR_INVALID_HANDLE) {
			c.Logger.Info("Cannot move console to parent process, because the parent process not have a console")
		} else {
			c.Logger.Warnf("Failed to move console to parent process: %v", err)
		}
	}
}

// elevate reruns the current command as administrator and waits for it.
func elevate(c *types.BasicOpt) error {
	c.Logger.Info("Running as non-admin, restart as admin")
	if err := sys.RunAsAdminWait(); err != nil {
		return fmt.Errorf("failed to run as admin: %w", err)
	}
	c.Logger.Info("admin child process exited successfully")
	return nil
}
