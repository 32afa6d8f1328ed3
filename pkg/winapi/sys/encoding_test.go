// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package sys

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/oomol-lab/win-interface/pkg/status"
	"golang.org/x/sys/windows"
	"golang.org/x/text/encoding/unicode"
)

// utf16Oracle encodes s with x/text, independent of the OS conversion.
func utf16Oracle(t *testing.T, s string) []uint16 {
	t.Helper()

	b, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	if err != nil {
		t.Fatalf("x/text encode %q: %v", s, err)
	}

	u := make([]uint16, len(b)/2)
	for i := range u {
		u[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return u
}

func TestUTF8ToUTF16(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"ascii", `C:\Program Files\app\app.exe`},
		{"cjk", `C:\用户\桌面\应用.lnk`},
		{"surrogate pair", "emoji 😀 \U0010FFFF"},
		{"mixed", "Überprüfung – ölçü"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UTF8ToUTF16(tt.in)
			if err != nil {
				t.Fatalf("UTF8ToUTF16() error: %v", err)
			}

			if diff := cmp.Diff(utf16Oracle(t, tt.in), got); diff != "" {
				t.Errorf("UTF8ToUTF16() mismatch (-want +got):\n%s", diff)
			}

			back, err := UTF16ToUTF8(got)
			if err != nil {
				t.Fatalf("UTF16ToUTF8() error: %v", err)
			}
			if back != tt.in {
				t.Errorf("round trip = %q, want %q", back, tt.in)
			}
		})
	}
}

func TestUTF8ToUTF16Empty(t *testing.T) {
	got, err := UTF8ToUTF16("")
	if err != nil {
		t.Fatalf("UTF8ToUTF16() error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("UTF8ToUTF16(\"\") = %#v, want empty", got)
	}
}

func TestUTF8ToUTF16Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"lone continuation", "a\x80b"},
		{"truncated", "\xe4\xbd"},
		{"overlong", "\xc0\xaf"},
		{"surrogate half", "\xed\xa0\x80"},
		{"invalid byte", "\xff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UTF8ToUTF16(tt.in)
			if err == nil {
				t.Fatalf("UTF8ToUTF16() = %v, want error", got)
			}

			if k := status.KindOf(err); k != status.InvalidEncoding {
				t.Errorf("kind = %s, want %s", k, status.InvalidEncoding)
			}
			if c := status.CodeOf(err); c != uint32(windows.ERROR_NO_UNICODE_TRANSLATION) {
				t.Errorf("code = %d, want %d", c, windows.ERROR_NO_UNICODE_TRANSLATION)
			}
		})
	}
}

func TestUTF16ToUTF8Unpaired(t *testing.T) {
	if _, err := UTF16ToUTF8([]uint16{'a', 0xD800, 'b'}); status.KindOf(err) != status.InvalidEncoding {
		t.Errorf("UTF16ToUTF8() error = %v, want invalid encoding", err)
	}
}

func TestUTF16PtrFromUTF8(t *testing.T) {
	p, err := UTF16PtrFromUTF8("abc")
	if err != nil {
		t.Fatalf("UTF16PtrFromUTF8() error: %v", err)
	}
	if s := windows.UTF16PtrToString(p); s != "abc" {
		t.Errorf("UTF16PtrFromUTF8() = %q, want abc", s)
	}

	if _, err := UTF16PtrFromUTF8("a\x00b"); status.KindOf(err) != status.InvalidEncoding {
		t.Errorf("embedded NUL error = %v, want invalid encoding", err)
	}

	p, err = UTF16PtrFromUTF8("")
	if err != nil || *p != 0 {
		t.Errorf("UTF16PtrFromUTF8(\"\") = %v, %v, want empty string", p, err)
	}
}
