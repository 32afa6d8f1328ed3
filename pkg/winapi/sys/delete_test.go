// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package sys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oomol-lab/win-interface/pkg/logger"
	"github.com/oomol-lab/win-interface/pkg/status"
	"golang.org/x/sys/windows"
)

func TestScheduleFileDelete(t *testing.T) {
	p := filepath.Join(t.TempDir(), "pending.txt")
	if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	err := ScheduleFileDelete(logger.Discard(), p)

	if !IsAdmin() {
		if status.KindOf(err) != status.OSFailure || status.CodeOf(err) != uint32(windows.ERROR_ACCESS_DENIED) {
			t.Errorf("ScheduleFileDelete() as non-admin = %v, want access denied", err)
		}
		return
	}

	if err != nil {
		t.Fatalf("ScheduleFileDelete() error: %v", err)
	}

	// nothing happens before the reboot
	if _, err := os.Stat(p); err != nil {
		t.Errorf("file should still exist: %v", err)
	}
}

func TestScheduleFileDeleteInvalidEncoding(t *testing.T) {
	err := ScheduleFileDelete(logger.Discard(), "C:\\bad\xfe")
	if status.KindOf(err) != status.InvalidEncoding {
		t.Fatalf("ScheduleFileDelete() = %v, want invalid encoding", err)
	}
	if status.CodeOf(err) != uint32(windows.ERROR_NO_UNICODE_TRANSLATION) {
		t.Errorf("code = %d, want %d", status.CodeOf(err), windows.ERROR_NO_UNICODE_TRANSLATION)
	}
}

func TestRemoveOrSchedule(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "free.txt")
	if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	scheduled, err := RemoveOrSchedule(logger.Discard(), p)
	if err != nil || scheduled {
		t.Fatalf("RemoveOrSchedule() = %t, %v, want removed", scheduled, err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Errorf("file should be removed, stat err: %v", err)
	}

	// missing is as good as removed
	scheduled, err = RemoveOrSchedule(logger.Discard(), p)
	if err != nil || scheduled {
		t.Errorf("RemoveOrSchedule(missing) = %t, %v", scheduled, err)
	}
}

func TestRemoveOrScheduleNonEmptyDir(t *testing.T) {
	if !IsAdmin() {
		t.Skip("scheduling needs administrator privileges")
	}

	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(filepath.Join(sub, "child"), 0755); err != nil {
		t.Fatal(err)
	}

	scheduled, err := RemoveOrSchedule(logger.Discard(), sub)
	if err != nil || !scheduled {
		t.Fatalf("RemoveOrSchedule() = %t, %v, want scheduled", scheduled, err)
	}
}

func TestScheduleFileDeleteMissing(t *testing.T) {
	if !IsAdmin() {
		t.Skip("scheduling needs administrator privileges")
	}

	p := filepath.Join(t.TempDir(), "never-created.txt")
	if err := ScheduleFileDelete(logger.Discard(), p); err != nil {
		t.Errorf("ScheduleFileDelete(missing) error: %v", err)
	}
}
