// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

// Package instance keeps a registry of running instances: one <pid>.json file per
// process in a shared directory.
package instance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/oomol-lab/win-interface/pkg/logger"
	"github.com/oomol-lab/win-interface/pkg/status"
	"github.com/oomol-lab/win-interface/pkg/winapi/sys"
	"github.com/shirou/gopsutil/v4/process"
)

type info struct {
	PID string `json:"pid"`
}

type Registration struct {
	dir string
	pid uint32
}

func pidFile(dir string, pid uint32) string {
	return filepath.Join(dir, strconv.FormatUint(uint64(pid), 10)+".json")
}

func prepareDir(dir string) error {
	if fi, err := os.Stat(dir); err == nil && !fi.IsDir() {
		if err := os.Remove(dir); err != nil {
			return fmt.Errorf("failed to remove file %s in place of ipc dir: %w", dir, err)
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create ipc dir %s: %w", dir, err)
	}

	return nil
}

// New registers pid in dir.
func New(dir string, pid uint32) (*Registration, error) {
	if err := prepareDir(dir); err != nil {
		return nil, err
	}

	data, err := json.Marshal(&info{PID: strconv.FormatUint(uint64(pid), 10)})
	if err != nil {
		return nil, fmt.Errorf("failed to encode pid file: %w", err)
	}

	if err := os.WriteFile(pidFile(dir, pid), data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write pid file: %w", err)
	}

	return &Registration{dir: dir, pid: pid}, nil
}

func (r *Registration) PID() uint32 {
	return r.pid
}

// Close removes the registration.
func (r *Registration) Close() error {
	if err := os.Remove(pidFile(r.dir, r.pid)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove pid file: %w", err)
	}
	return nil
}

func registered(dir string) ([]uint32, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read ipc dir: %w", err)
	}

	pids := make([]uint32, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read pid file %s: %w", entry.Name(), err)
		}

		var i info
		if err := json.Unmarshal(data, &i); err != nil {
			return nil, fmt.Errorf("failed to decode pid file %s: %w", entry.Name(), err)
		}

		pid, err := strconv.ParseUint(i.PID, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid pid in %s: %w", entry.Name(), err)
		}

		pids = append(pids, uint32(pid))
	}

	return pids, nil
}

// Others returns the registered pids other than self that are still running.
func Others(ctx context.Context, dir string, self uint32) ([]uint32, error) {
	pids, err := registered(dir)
	if err != nil {
		return nil, err
	}

	pids = slices.DeleteFunc(pids, func(pid uint32) bool {
		return pid == self
	})
	if len(pids) == 0 {
		return nil, nil
	}

	running, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	return slices.DeleteFunc(pids, func(pid uint32) bool {
		return !slices.Contains(running, int32(pid))
	}), nil
}

// FocusOther brings the window of another running instance to the foreground.
//
// found is false when no other instance is running. An instance without a window still counts as found.
func FocusOther(ctx context.Context, log *logger.Context, dir string, self uint32) (found bool, err error) {
	others, err := Others(ctx, dir, self)
	if err != nil {
		return false, err
	}

	if len(others) == 0 {
		log.Info("No other running instance")
		return false, nil
	}

	log.Infof("Other running instances: %v", others)

	err = sys.FocusPID(log, others[0])
	if status.KindOf(err) == status.NotFound {
		log.Warnf("Instance %d has no top-level window", others[0])
		return true, nil
	}

	return true, err
}

// EraseAll removes dir together with every registration in it.
func EraseAll(dir string) error {
	if err := os.RemoveAll(dir); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove ipc dir: %w", err)
	}
	return nil
}
