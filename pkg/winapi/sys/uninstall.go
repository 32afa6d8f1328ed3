// SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package sys

import (
	"errors"
	"fmt"

	"github.com/oomol-lab/win-interface/pkg/logger"
	"github.com/oomol-lab/win-interface/pkg/types"
	"golang.org/x/sys/windows/registry"
)

const registryUninstallPath = `Software\Microsoft\Windows\CurrentVersion\Uninstall\`

// RegisterUninstall creates or updates the per-user uninstall entry of an application.
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/msi/uninstall-registry-key
func RegisterUninstall(log *logger.Context, entry *types.UninstallEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("uninstall entry id is empty")
	}

	// no administrator privileges required to modify HKCU
	key, _, err := registry.CreateKey(registry.CURRENT_USER, registryUninstallPath+entry.ID, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to create/open registry key: %w", err)
	}

	defer func() {
		_ = key.Close()
	}()

	strs := []struct {
		name, value string
	}{
		{"DisplayName", entry.DisplayName},
		{"DisplayIcon", entry.DisplayIcon},
		{"Publisher", entry.Publisher},
		{"UninstallString", entry.UninstallString},
		{"QuietUninstallString", entry.QuietUninstallString},
	}
	for _, s := range strs {
		if s.value == "" {
			continue
		}
		if err := key.SetStringValue(s.name, s.value); err != nil {
			return fmt.Errorf("failed to set registry value %s: %w", s.name, err)
		}
	}

	dwords := []struct {
		name  string
		value uint32
	}{
		{"EstimatedSize", entry.EstimatedSizeKB},
		{"NoModify", 1},
		{"NoRepair", 1},
	}
	for _, d := range dwords {
		if err := key.SetDWordValue(d.name, d.value); err != nil {
			return fmt.Errorf("failed to set registry value %s: %w", d.name, err)
		}
	}

	log.Infof("Uninstall entry %s registered", entry.ID)
	return nil
}

// ReadUninstall reads back the uninstall entry id.
func ReadUninstall(id string) (*types.UninstallEntry, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, registryUninstallPath+id, registry.QUERY_VALUE)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry key: %w", err)
	}

	defer func() {
		_ = key.Close()
	}()

	entry := &types.UninstallEntry{ID: id}

	for _, s := range []struct {
		name string
		dst  *string
	}{
		{"DisplayName", &entry.DisplayName},
		{"DisplayIcon", &entry.DisplayIcon},
		{"Publisher", &entry.Publisher},
		{"UninstallString", &entry.UninstallString},
		{"QuietUninstallString", &entry.QuietUninstallString},
	} {
		v, _, err := key.GetStringValue(s.name)
		if err != nil && !errors.Is(err, registry.ErrNotExist) {
			return nil, fmt.Errorf("failed to read registry value %s: %w", s.name, err)
		}
		*s.dst = v
	}

	size, _, err := key.GetIntegerValue("EstimatedSize")
	if err != nil && !errors.Is(err, registry.ErrNotExist) {
		return nil, fmt.Errorf("failed to read registry value EstimatedSize: %w", err)
	}
	entry.EstimatedSizeKB = uint32(size)

	return entry, nil
}

// UnregisterUninstall removes the uninstall entry id. A missing entry is not an error.
func UnregisterUninstall(log *logger.Context, id string) error {
	if id == "" {
		return nil
	}

	err := registry.DeleteKey(registry.CURRENT_USER, registryUninstallPath+id)
	if err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("failed to delete registry key %s: %w", id, err)
	}

	log.Infof("Uninstall entry %s removed", id)
	return nil
}
