// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

// Package cleanup removes what an installer put on disk.
//
// Files go first, longest path first, then directories, so children are always handled before their
// parents. Files modified since installation are kept. Anything that cannot be removed now is
// scheduled for deletion at the next reboot.
package cleanup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/oomol-lab/win-interface/pkg/logger"
	"github.com/oomol-lab/win-interface/pkg/util"
	"github.com/oomol-lab/win-interface/pkg/winapi/sys"
	"golang.org/x/sync/errgroup"
)

var scheduleDelete = sys.ScheduleFileDelete

type Options struct {
	// NoSchedule disables the deferred deletion fallback
	NoSchedule  bool
	TrustedDirs []string
}

type Failure struct {
	Path string
	Err  error
}

type Result struct {
	Removed   []string
	Scheduled []string
	// Skipped files were modified after installation
	Skipped []string
	Failed  []Failure
}

// NeedReboot reports whether some entries are only gone after the next reboot.
func (r *Result) NeedReboot() bool {
	return len(r.Scheduled) > 0
}

type plan struct {
	entry  Entry
	isDir  bool
	exists bool
	hash   string
	err    error
}

func (o *Options) trusted(p string) bool {
	for _, part := range strings.Split(filepath.ToSlash(p), "/") {
		if strings.EqualFold(part, "node_modules") {
			return true
		}
	}

	for _, dir := range o.TrustedDirs {
		rel, err := filepath.Rel(dir, p)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}

	return false
}

func (o *Options) needHash(e Entry) bool {
	return e.Hash != "" && e.Hash != HashAlwaysRemove && !o.trusted(e.Path)
}

func inspect(ctx context.Context, entries []Entry, opt *Options) ([]*plan, error) {
	plans := make([]*plan, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, e := range entries {
		p := &plan{entry: e}
		plans[i] = p

		fi, err := os.Lstat(e.Path)
		if err != nil {
			continue
		}
		p.exists = true
		p.isDir = fi.IsDir()

		if p.isDir || !opt.needHash(e) {
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p.hash, p.err = util.Sha256File(p.entry.Path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(plans, func(a, b *plan) int {
		return len(b.entry.Path) - len(a.entry.Path)
	})

	return plans, nil
}

func (r *Result) fallback(log *logger.Context, opt *Options, p string, removeErr error) {
	if opt.NoSchedule {
		r.Failed = append(r.Failed, Failure{Path: p, Err: removeErr})
		return
	}

	if err := scheduleDelete(log, p); err != nil {
		log.Warnf("Scheduling failed for %s: %v", p, err)
		r.Failed = append(r.Failed, Failure{Path: p, Err: err})
		return
	}

	r.Scheduled = append(r.Scheduled, p)
}

// Remove deletes entries. Individual failures end up in the result, the returned error is only
// set when ctx is done before hashing completes.
func Remove(ctx context.Context, log *logger.Context, entries []Entry, opt *Options) (*Result, error) {
	if opt == nil {
		opt = &Options{}
	}

	plans, err := inspect(ctx, entries, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect entries: %w", err)
	}

	log.Infof("Uninstalling %d items", len(plans))

	r := &Result{}

	for _, p := range plans {
		if !p.exists || p.isDir {
			continue
		}

		path := p.entry.Path

		if p.err != nil {
			log.Warnf("Cannot hash %s: %v", path, p.err)
			r.Failed = append(r.Failed, Failure{Path: path, Err: p.err})
			continue
		}

		if opt.needHash(p.entry) && !strings.EqualFold(p.hash, p.entry.Hash) {
			log.Warnf("Hash mismatch, won't delete %s, expected %s but got %s", path, p.entry.Hash, p.hash)
			r.Skipped = append(r.Skipped, path)
			continue
		}

		if err := os.Remove(path); err != nil {
			log.Warnf("Could not remove file %s: %v", path, err)
			r.fallback(log, opt, path, err)
			continue
		}

		r.Removed = append(r.Removed, path)
	}

	for _, p := range plans {
		if !p.exists || !p.isDir {
			continue
		}

		path := p.entry.Path

		if err := os.Remove(path); err != nil {
			log.Warnf("Could not remove folder %s: %v", path, err)
			r.fallback(log, opt, path, err)
			continue
		}

		log.Infof("Removed folder: %s", path)
		r.Removed = append(r.Removed, path)
	}

	return r, nil
}
