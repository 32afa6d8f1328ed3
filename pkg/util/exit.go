// SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package util

import (
	"os"

	"github.com/oomol-lab/win-interface/pkg/logger"
)

func Exit(exitCode int) {
	logger.CloseAll()
	os.Exit(exitCode)
}
