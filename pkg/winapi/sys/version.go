// SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package sys

import (
	"fmt"

	"github.com/hashicorp/go-version"
	"github.com/oomol-lab/win-interface/pkg/logger"
	"golang.org/x/sys/windows"
)

// SLDF_RUNAS_USER is honored since Windows Vista (6.0).
var minRunAsVersion = version.Must(version.NewVersion("6.0"))

// OSVersion returns the running Windows version as major.minor.build.
func OSVersion() (*version.Version, error) {
	v := windows.RtlGetVersion()

	return version.NewVersion(fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber))
}

// SupportRunAsShortcut reports whether shortcuts on this system can request elevation.
func SupportRunAsShortcut(log *logger.Context) bool {
	v, err := OSVersion()
	if err != nil {
		log.Warnf("Cannot parse system version: %v", err)
		return false
	}

	log.Infof("Current system version is %s", v)

	return v.GreaterThanOrEqual(minRunAsVersion)
}
