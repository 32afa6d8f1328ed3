// SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

const logCount = 5

var (
	csMu sync.Mutex
	cs   = make([]*Context, 0, 10)
)

// New creates a new log file
//
// Older files are rotated to <name>.2.log ... <name>.5.log
func New(p, n string) (*Context, error) {
	c := newContext(p, n, false)
	if err := c.createLog(); err != nil {
		return nil, err
	}

	track(c)

	return c, nil
}

// NewWithChildProcess creates a new log file with child process
//
// No files will be created, the latest log file will be used.
func NewWithChildProcess(p, n string) (*Context, error) {
	c := newContext(p, n, true)
	if err := c.useExistLog(); err != nil {
		return nil, err
	}

	track(c)

	return c, nil
}

// Discard returns a logger that drops every message.
func Discard() *Context {
	c := newContext("", "", false)
	c.w = io.Discard
	return c
}

func CloseAll() {
	csMu.Lock()
	defer csMu.Unlock()

	for _, c := range cs {
		c.closeFile()
	}
	cs = cs[:0]
}

func track(c *Context) {
	csMu.Lock()
	cs = append(cs, c)
	csMu.Unlock()
}

type syncWriter struct {
	m    sync.Mutex
	w    io.Writer
	file *os.File
}

func (w *syncWriter) write(b []byte) (n int, err error) {
	w.m.Lock()
	defer w.m.Unlock()
	return w.w.Write(b)
}

func (w *syncWriter) sync() {
	if w.file != nil {
		_ = w.file.Sync()
	}
}

func (w *syncWriter) closeFile() {
	w.m.Lock()
	defer w.m.Unlock()

	if w.file != nil {
		_ = w.file.Sync()
		_ = w.file.Close()
		w.file = nil
		w.w = io.Discard
	}
}

type Context struct {
	path    string
	name    string
	isChild bool
	syncWriter
}

func newContext(p, n string, isChild bool) *Context {
	return &Context{
		path:    p,
		name:    n,
		isChild: isChild,
		syncWriter: syncWriter{
			w: io.Discard,
		},
	}
}

func (c *Context) setFile(f *os.File) {
	c.file = f
	c.w = f
}

func (c *Context) logPath(i int) string {
	logName := c.name
	if i > 1 {
		logName += "." + strconv.Itoa(i)
	}
	return filepath.Join(c.path, logName+".log")
}

func (c *Context) createLog() error {
	for i := logCount - 1; i > 0; i-- {
		logPath := c.logPath(i)

		if _, err := os.Stat(logPath); err == nil {
			if err := os.Rename(logPath, c.logPath(i+1)); err != nil {
				return fmt.Errorf("cannot rename log file: %v", err)
			}
		}

		if i == 1 {
			f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_RDWR|os.O_TRUNC, 0644)
			if err != nil {
				return fmt.Errorf("cannot open log file: %v", err)
			}
			c.setFile(f)
		}
	}
	return nil
}

func (c *Context) useExistLog() error {
	for i := 1; i <= logCount; i++ {
		logPath := c.logPath(i)

		if _, err := os.Stat(logPath); err != nil {
			continue
		}

		f, err := os.OpenFile(logPath, os.O_APPEND|os.O_RDWR, 0644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %v", err)
		}
		c.setFile(f)
		return nil
	}

	return fmt.Errorf("cannot find latest log file in: %s", c.path)
}

// NewWithAppendName creates a sibling log file named <name>-<suffix>
func (c *Context) NewWithAppendName(name string) (*Context, error) {
	return New(c.path, c.name+"-"+name)
}

// Path returns the file backing this logger, empty for [Discard].
func (c *Context) Path() string {
	c.m.Lock()
	defer c.m.Unlock()

	if c.file == nil {
		return ""
	}
	return c.file.Name()
}

func (c *Context) base(t, message string) {
	d := time.Now().Format("2006-01-02 15:04:05.000")
	tag := ""
	if t != "" {
		tag = fmt.Sprintf("[%s]: ", t)
	}

	if c.isChild {
		_, _ = c.write([]byte(fmt.Sprintf("%s [CHILD] %s%s\n", d, tag, message)))
	} else {
		_, _ = c.write([]byte(fmt.Sprintf("%s %s%s\n", d, tag, message)))
	}
}

func (c *Context) Raw(message string) {
	c.base("", message)
}

func (c *Context) Rawf(format string, args ...any) {
	c.Raw(fmt.Sprintf(format, args...))
}

func (c *Context) Info(message string) {
	c.base("INFO", message)
}

func (c *Context) Infof(format string, args ...any) {
	c.Info(fmt.Sprintf(format, args...))
}

func (c *Context) Warn(message string) {
	c.base("WARN", message)
	c.sync()
}

func (c *Context) Warnf(format string, args ...any) {
	c.Warn(fmt.Sprintf(format, args...))
}

func (c *Context) Error(message string) error {
	c.base("ERROR", message)
	c.sync()
	return errors.New(message)
}

func (c *Context) Errorf(format string, args ...any) error {
	return c.Error(fmt.Sprintf(format, args...))
}

func (c *Context) Close() {
	c.closeFile()

	csMu.Lock()
	defer csMu.Unlock()

	for i, context := range cs {
		if context == c {
			cs = append(cs[:i], cs[i+1:]...)
			break
		}
	}
}
