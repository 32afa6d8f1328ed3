// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package sys

import (
	"testing"

	"github.com/oomol-lab/win-interface/pkg/logger"
)

func TestOSVersion(t *testing.T) {
	v, err := OSVersion()
	if err != nil {
		t.Fatalf("OSVersion() error: %v", err)
	}

	if len(v.Segments()) != 3 {
		t.Errorf("OSVersion() = %s, want major.minor.build", v)
	}

	if !SupportRunAsShortcut(logger.Discard()) {
		t.Errorf("SupportRunAsShortcut() = false on %s", v)
	}
}
