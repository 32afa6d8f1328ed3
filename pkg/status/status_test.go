// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package status

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, OK},
		{"plain", errors.New("boom"), OSFailure},
		{"direct", New(NotFound, "EnumWindows", 0, nil), NotFound},
		{"wrapped", fmt.Errorf("focus: %w", New(FocusRefused, "SetForegroundWindow", 0, nil)), FocusRefused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(nil); got != 0 {
		t.Errorf("CodeOf(nil) = %d, want 0", got)
	}

	if got := CodeOf(errors.New("boom")); got != errorGenFailure {
		t.Errorf("CodeOf(plain) = %d, want %d", got, errorGenFailure)
	}

	err := fmt.Errorf("schedule: %w", New(OSFailure, "MoveFileExW", 5, nil))
	if got := CodeOf(err); got != 5 {
		t.Errorf("CodeOf(wrapped) = %d, want 5", got)
	}
}

func TestHResult(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want uint32
	}{
		{"nil", nil, 0},
		{"com", New(COMFailure, "CoCreateInstance", 0x80040154, nil), 0x80040154},
		{"access denied", New(OSFailure, "MoveFileExW", 5, nil), 0x80070005},
		{"no unicode translation", New(InvalidEncoding, "MultiByteToWideChar", 1113, nil), 0x80070459},
		{"zero code", New(InvalidEncoding, "UTF16PtrFromUTF8", 0, nil), EFail},
		{"zero com code", New(COMFailure, "CoCreateInstance", 0, nil), EFail},
		{"not found", New(NotFound, "EnumWindows", 0, nil), EFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HResult(tt.err); got != tt.want {
				t.Errorf("HResult() = 0x%08X, want 0x%08X", got, tt.want)
			}
		})
	}
}

func TestFocusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, FocusOK},
		{New(NotFound, "EnumWindows", 0, nil), FocusNotFound},
		{New(EnumFailed, "EnumWindows", 1400, nil), FocusError},
		{New(FocusRefused, "SetForegroundWindow", 0, nil), FocusError},
		{errors.New("boom"), FocusError},
	}

	for _, tt := range tests {
		if got := FocusCode(tt.err); got != tt.want {
			t.Errorf("FocusCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	err := New(OSFailure, "MoveFileExW", 5, errors.New("Access is denied."))
	want := "MoveFileExW: os failure (code: 0x00000005): Access is denied."
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if Kind(200).String() != "kind(200)" {
		t.Errorf("unexpected name for unknown kind: %s", Kind(200))
	}
}
