// SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package util

import (
	"context"
	"fmt"
	"time"

	"github.com/oomol-lab/win-interface/pkg/logger"
	"github.com/shirou/gopsutil/v4/process"
)

// PidExists reports whether a process with pid is running. Errors are treated as not running.
func PidExists(ctx context.Context, pid uint32) bool {
	if pid == 0 {
		return false
	}

	exists, err := process.PidExistsWithContext(ctx, int32(pid))
	return err == nil && exists
}

func WaitBindPID(ctx context.Context, log *logger.Context, pid int) error {
	if pid == 0 {
		log.Info("pid is 0, no need to wait")
		<-ctx.Done()
		return nil
	}

	log.Infof("wait bind pid: %d exit", pid)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		exists, err := process.PidExistsWithContext(ctx, int32(pid))
		if err != nil {
			if ctx.Err() != nil {
				log.Info("cancel wait bind pid, because context done")
				return nil
			}
			return fmt.Errorf("check bind pid %d error: %w", pid, err)
		}

		if !exists {
			return fmt.Errorf("bind pid %d exited", pid)
		}

		select {
		case <-ctx.Done():
			log.Info("cancel wait bind pid, because context done")
			return nil
		case <-ticker.C:
		}
	}
}
