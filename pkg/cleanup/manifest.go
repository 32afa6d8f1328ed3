// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package cleanup

import (
	"encoding/json"
	"fmt"
	"os"
)

// HashAlwaysRemove marks an entry that is removed without comparing hashes.
const HashAlwaysRemove = "ALWAYS"

// Entry is one installed file or directory.
type Entry struct {
	Path string `json:"path"`
	// Hash is the lowercase hex SHA-256 recorded at install time. Empty or [HashAlwaysRemove] skips the check.
	Hash string `json:"hash,omitempty"`
}

// Manifest is what an installer records to be able to uninstall later.
type Manifest struct {
	// UninstallID is the uninstall registry entry to remove, see sys.RegisterUninstall
	UninstallID string `json:"uninstall_id,omitempty"`
	// IPCDir is the instance registry to erase
	IPCDir string `json:"ipc_dir,omitempty"`
	// TrustedDirs hold files that change at runtime, their hashes are not checked
	TrustedDirs []string `json:"trusted_dirs,omitempty"`
	Entries     []Entry  `json:"entries"`
}

func LoadManifest(p string) (*Manifest, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", p, err)
	}

	m := &Manifest{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", p, err)
	}

	for i, e := range m.Entries {
		if e.Path == "" {
			return nil, fmt.Errorf("manifest entry %d has an empty path", i)
		}
	}

	return m, nil
}
