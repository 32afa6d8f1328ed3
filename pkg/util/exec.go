// SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package util

import (
	"strings"
	"syscall"
)

// EscapeArg joins args into a single Windows command line, quoting each one as needed.
func EscapeArg(args []string) string {
	newArgs := make([]string, 0, len(args))
	for _, arg := range args {
		newArgs = append(newArgs, syscall.EscapeArg(arg))
	}

	return strings.Join(newArgs, " ")
}
