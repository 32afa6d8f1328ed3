// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRotate(t *testing.T) {
	dir := t.TempDir()

	for i := 0; i < logCount+2; i++ {
		log, err := New(dir, "link")
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		log.Infof("generation %d", i)
		log.Close()
	}

	latest, err := os.ReadFile(filepath.Join(dir, "link.log"))
	if err != nil {
		t.Fatalf("read latest log: %v", err)
	}
	if !strings.Contains(string(latest), "[INFO]: generation 6") {
		t.Errorf("latest log = %q, want generation 6", latest)
	}

	previous, err := os.ReadFile(filepath.Join(dir, "link.2.log"))
	if err != nil {
		t.Fatalf("read previous log: %v", err)
	}
	if !strings.Contains(string(previous), "generation 5") {
		t.Errorf("previous log = %q, want generation 5", previous)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != logCount {
		t.Errorf("got %d log files, want %d", len(entries), logCount)
	}
}

func TestChildProcessAppends(t *testing.T) {
	dir := t.TempDir()

	parent, err := New(dir, "remove")
	if err != nil {
		t.Fatal(err)
	}
	parent.Info("parent")

	child, err := NewWithChildProcess(dir, "remove")
	if err != nil {
		t.Fatal(err)
	}
	child.Warn("child")
	child.Close()
	parent.Close()

	data, err := os.ReadFile(filepath.Join(dir, "remove.log"))
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), data)
	}
	if !strings.HasSuffix(lines[0], "[INFO]: parent") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "[CHILD] [WARN]: child") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestChildProcessWithoutLog(t *testing.T) {
	if _, err := NewWithChildProcess(t.TempDir(), "missing"); err == nil {
		t.Error("NewWithChildProcess() should fail when no log file exists")
	}
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Infof("dropped %d", 1)
	log.Warn("dropped")

	if err := log.Errorf("failed: %s", "x"); err == nil || err.Error() != "failed: x" {
		t.Errorf("Errorf() = %v, want failed: x", err)
	}

	if log.Path() != "" {
		t.Errorf("Path() = %q, want empty", log.Path())
	}

	log.Close()
}
