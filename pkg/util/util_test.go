// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package util

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oomol-lab/win-interface/pkg/logger"
)

func TestEscapeArg(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, ""},
		{[]string{"remove", "--manifest", `C:\a b\m.json`}, `remove --manifest "C:\a b\m.json"`},
		{[]string{`say "hi"`}, `"say \"hi\""`},
		{[]string{""}, `""`},
	}

	for _, tt := range tests {
		if got := EscapeArg(tt.args); got != tt.want {
			t.Errorf("EscapeArg(%q) = %s, want %s", tt.args, got, tt.want)
		}
	}
}

func TestSha256File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(p, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Sha256File(p)
	if err != nil {
		t.Fatalf("Sha256File() error: %v", err)
	}

	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("Sha256File() = %s, want %s", got, want)
	}

	if _, err := Sha256File(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Sha256File() should fail for a missing file")
	}
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if !IsDir(dir) {
		t.Errorf("IsDir(%s) = false", dir)
	}
	if IsDir(file) {
		t.Errorf("IsDir(%s) = true", file)
	}
	if IsDir(filepath.Join(dir, "missing")) {
		t.Error("IsDir(missing) = true")
	}
}

func TestPidExists(t *testing.T) {
	ctx := context.Background()

	if !PidExists(ctx, uint32(os.Getpid())) {
		t.Error("current process should exist")
	}
	if PidExists(ctx, 0) {
		t.Error("pid 0 should not be reported as running")
	}
}

func TestWaitBindPIDCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := WaitBindPID(ctx, logger.Discard(), os.Getpid()); err != nil {
		t.Errorf("WaitBindPID() = %v, want nil after cancel", err)
	}
}
