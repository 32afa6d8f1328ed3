// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package sys

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/oomol-lab/win-interface/pkg/logger"
	"github.com/oomol-lab/win-interface/pkg/status"
	"github.com/oomol-lab/win-interface/pkg/types"
)

func notepad(t *testing.T) string {
	t.Helper()

	p := filepath.Join(os.Getenv("SystemRoot"), "notepad.exe")
	if _, err := os.Stat(p); err != nil {
		t.Skipf("notepad.exe not available: %v", err)
	}
	return p
}

// sameFile compares paths by the file they resolve to, GetPath may return a different spelling
// (case, 8.3 names) of the path that was set.
var sameFile = cmp.Comparer(func(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}

	fa, errA := os.Stat(a)
	fb, errB := os.Stat(b)
	if errA != nil || errB != nil {
		return strings.EqualFold(a, b)
	}
	return os.SameFile(fa, fb)
})

func diffLink(want, got *types.LinkOpt) string {
	return cmp.Diff(want, got, cmp.FilterPath(func(p cmp.Path) bool {
		s := p.String()
		return s == "Target" || s == "IconPath"
	}, sameFile))
}

func TestCreateLink(t *testing.T) {
	target := notepad(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		opt  types.LinkOpt
	}{
		{
			name: "plain",
			opt: types.LinkOpt{
				Target:      target,
				LinkPath:    filepath.Join(dir, "plain.lnk"),
				IconPath:    target,
				Args:        `--open "a b.txt"`,
				Description: "Notepad",
			},
		},
		{
			name: "admin",
			opt: types.LinkOpt{
				Target:      target,
				LinkPath:    filepath.Join(dir, "admin.lnk"),
				IconPath:    target,
				Description: "Notepad (admin)",
				Admin:       true,
			},
		},
		{
			name: "unicode",
			opt: types.LinkOpt{
				Target:      target,
				LinkPath:    filepath.Join(dir, "记事本 😀.lnk"),
				IconPath:    target,
				Args:        "ünïcödé",
				Description: "描述",
			},
		},
		{
			name: "empty optional fields",
			opt: types.LinkOpt{
				Target:   target,
				LinkPath: filepath.Join(dir, "bare.lnk"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := CreateLink(logger.Discard(), &tt.opt); err != nil {
				t.Fatalf("CreateLink() error: %v", err)
			}

			got, err := ReadLink(tt.opt.LinkPath)
			if err != nil {
				t.Fatalf("ReadLink() error: %v", err)
			}

			if diff := diffLink(&tt.opt, got); diff != "" {
				t.Errorf("ReadLink() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCreateLinkOverwrite(t *testing.T) {
	target := notepad(t)
	link := filepath.Join(t.TempDir(), "app.lnk")

	first := &types.LinkOpt{Target: target, LinkPath: link, Description: "first", Admin: true}
	second := &types.LinkOpt{Target: target, LinkPath: link, Description: "second"}

	for _, opt := range []*types.LinkOpt{first, second} {
		if err := CreateLink(logger.Discard(), opt); err != nil {
			t.Fatalf("CreateLink() error: %v", err)
		}
	}

	got, err := ReadLink(link)
	if err != nil {
		t.Fatal(err)
	}
	if diff := diffLink(second, got); diff != "" {
		t.Errorf("ReadLink() mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateLinkInvalidEncoding(t *testing.T) {
	link := filepath.Join(t.TempDir(), "bad\xff.lnk")

	err := CreateLink(logger.Discard(), &types.LinkOpt{Target: `C:\x.exe`, LinkPath: link})
	if status.KindOf(err) != status.InvalidEncoding {
		t.Fatalf("CreateLink() error = %v, want invalid encoding", err)
	}

	if status.HResult(err) != 0x80070459 {
		t.Errorf("HResult() = 0x%08X, want 0x80070459", status.HResult(err))
	}
}

func TestCreateLinkMissingDir(t *testing.T) {
	target := notepad(t)
	link := filepath.Join(t.TempDir(), "missing", "app.lnk")

	err := CreateLink(logger.Discard(), &types.LinkOpt{Target: target, LinkPath: link})
	if status.KindOf(err) != status.COMFailure {
		t.Fatalf("CreateLink() error = %v, want com failure", err)
	}
	if status.HResult(err) == 0 {
		t.Error("HResult() = 0 for a failed save")
	}

	if _, err := os.Stat(link); !os.IsNotExist(err) {
		t.Errorf("no shortcut should be written, stat err: %v", err)
	}
}

func TestCreateLinkConcurrent(t *testing.T) {
	target := notepad(t)
	dir := t.TempDir()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = CreateLink(logger.Discard(), &types.LinkOpt{
				Target:   target,
				LinkPath: filepath.Join(dir, string(rune('a'+i))+".lnk"),
				Admin:    i%2 == 0,
			})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("CreateLink() #%d error: %v", i, err)
		}
	}
}

func TestKnownFolderLinks(t *testing.T) {
	desktop, err := DesktopLinkPath("App")
	if err != nil {
		t.Fatalf("DesktopLinkPath() error: %v", err)
	}
	if filepath.Base(desktop) != "App.lnk" {
		t.Errorf("DesktopLinkPath() = %s", desktop)
	}

	menu, err := StartMenuLinkPath("App")
	if err != nil {
		t.Fatalf("StartMenuLinkPath() error: %v", err)
	}
	if filepath.Base(filepath.Dir(menu)) != "Programs" {
		t.Errorf("StartMenuLinkPath() = %s, want a file in Programs", menu)
	}
}
