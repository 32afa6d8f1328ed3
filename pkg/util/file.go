// SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package util

import "os"

func Exists(path string) error {
	_, err := os.Stat(path)
	return err
}

// IsDir reports whether path exists and is a directory. Symlinks are not followed.
func IsDir(path string) bool {
	fi, err := os.Lstat(path)
	return err == nil && fi.IsDir()
}
