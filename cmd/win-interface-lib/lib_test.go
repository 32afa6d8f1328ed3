// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/oomol-lab/win-interface/pkg/logger"
	"github.com/oomol-lab/win-interface/pkg/types"
)

const invalidUTF8 = "C:\\bad\xff.txt"

func TestCreateLinkInvalidEncoding(t *testing.T) {
	got := uint32(createLink(&types.LinkOpt{
		Target:   `C:\Windows\notepad.exe`,
		LinkPath: filepath.Join(t.TempDir(), invalidUTF8),
	}))

	// HRESULT_FROM_WIN32(ERROR_NO_UNICODE_TRANSLATION)
	if got != 0x80070459 {
		t.Errorf("createLink() = 0x%08X, want 0x80070459", got)
	}
}

func TestCreateLink(t *testing.T) {
	link := filepath.Join(t.TempDir(), "notepad.lnk")

	if got := createLink(&types.LinkOpt{Target: `C:\Windows\notepad.exe`, LinkPath: link}); got != 0 {
		t.Fatalf("createLink() = 0x%08X", uint32(got))
	}

	if _, err := os.Stat(link); err != nil {
		t.Errorf("shortcut not written: %v", err)
	}
}

func TestScheduleFileDeleteInvalidEncoding(t *testing.T) {
	if got := scheduleFileDelete(invalidUTF8); got != 1113 {
		t.Errorf("scheduleFileDelete() = %d, want 1113", got)
	}
}

func TestFocusPIDNotFound(t *testing.T) {
	cmd := exec.Command("cmd.exe", "/c", "exit", "0")
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}

	if got := focusPID(uint32(cmd.ProcessState.Pid())); got != 1 {
		t.Errorf("focusPID() = %d, want 1", got)
	}
}

func TestEnableLog(t *testing.T) {
	dir := t.TempDir()

	if got := enableLog(dir, "lib"); got != 0 {
		t.Fatalf("enableLog() = %d", got)
	}
	t.Cleanup(func() {
		log.Swap(logger.Discard()).Close()
	})

	_ = scheduleFileDelete(invalidUTF8)

	if _, err := os.Stat(filepath.Join(dir, "lib.log")); err != nil {
		t.Errorf("log file not created: %v", err)
	}

	if got := enableLog(filepath.Join(dir, "missing", "dir"), "lib"); got != 1 {
		t.Errorf("enableLog() on a missing dir = %d, want 1", got)
	}
}
