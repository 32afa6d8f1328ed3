// SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package types

import "github.com/oomol-lab/win-interface/pkg/logger"

type BasicOpt struct {
	Name              string
	LogPath           string
	EventNpipeName    string
	BindPID           int
	IsAdmin           bool
	IsElevatedProcess bool
	Logger            *logger.Context
}

// LinkOpt describes a shell shortcut (.lnk).
//
// All fields are UTF-8.
type LinkOpt struct {
	// Target is the file the shortcut points at
	Target string
	// LinkPath is where the .lnk file is written
	LinkPath    string
	IconPath    string
	Args        string
	Description string
	// Admin marks the shortcut to run as administrator (SLDF_RUNAS_USER)
	Admin bool
}

type LinkCmdOpt struct {
	LinkOpt

	BasicOpt
}

type ScheduleDeleteOpt struct {
	Paths []string

	BasicOpt
}

type RemoveOpt struct {
	ManifestPath string
	NoSchedule   bool
	Reboot       bool

	BasicOpt
}

type FocusOpt struct {
	PID uint32

	BasicOpt
}

type InstanceOpt struct {
	IPCDir string

	BasicOpt
}

// UninstallEntry is the "Apps & features" entry of an installed application.
type UninstallEntry struct {
	// ID is the subkey name under ...\CurrentVersion\Uninstall
	ID                   string
	DisplayName          string
	DisplayIcon          string
	Publisher            string
	EstimatedSizeKB      uint32
	UninstallString      string
	QuietUninstallString string
}

type RegisterOpt struct {
	UninstallEntry

	BasicOpt
}
