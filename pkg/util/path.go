// SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package util

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

func LocalAppData() (string, bool) {
	if p := os.Getenv("LOCALAPPDATA"); p != "" {
		return p, true
	}

	if p, err := windows.KnownFolderPath(windows.FOLDERID_LocalAppData, windows.KF_FLAG_DEFAULT); err == nil {
		return p, true
	}

	if user := os.Getenv("USERPROFILE"); user != "" {
		return filepath.Join(user, "AppData", "Local"), true
	}

	return "", false
}

// IPCPath returns the default directory where running instances of name register themselves.
func IPCPath(name string) (string, bool) {
	p, ok := LocalAppData()
	if !ok {
		return "", false
	}

	return filepath.Join(p, name, "ipc"), true
}
