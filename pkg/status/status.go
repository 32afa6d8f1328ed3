// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

// Package status maps native Windows results (Win32 error codes and COM
// HRESULTs) into a closed set of error kinds, keeping the raw code around
// for diagnostics.
package status

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	OK Kind = iota
	// NotFound no top-level window is owned by the requested process
	NotFound
	// FocusRefused the window was found, but the OS refused to bring it to the foreground
	FocusRefused
	// EnumFailed window enumeration failed for another reason
	EnumFailed
	// InvalidEncoding the input is not valid UTF-8 (or UTF-16), or contains NUL
	InvalidEncoding
	// COMFailure a COM call returned a failing HRESULT
	COMFailure
	// OSFailure a Win32 call failed, Code holds GetLastError
	OSFailure
)

var kindNames = map[Kind]string{
	OK:              "ok",
	NotFound:        "not found",
	FocusRefused:    "focus refused",
	EnumFailed:      "enumeration failed",
	InvalidEncoding: "invalid encoding",
	COMFailure:      "com failure",
	OSFailure:       "os failure",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Error is returned by every operation in pkg/winapi/sys.
type Error struct {
	Kind Kind
	// Op is the native call that failed, e.g. "MoveFileExW"
	Op string
	// Code is the raw HRESULT (COMFailure) or Win32 error code (everything else)
	Code uint32
	Err  error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s (code: 0x%08X)", e.Op, e.Kind, e.Code)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, op string, code uint32, err error) *Error {
	return &Error{
		Kind: kind,
		Op:   op,
		Code: code,
		Err:  err,
	}
}

// KindOf returns OK for a nil error and OSFailure for errors that do not carry a [*Error].
func KindOf(err error) Kind {
	if err == nil {
		return OK
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return OSFailure
}

// CodeOf returns the raw native code carried by err, 0 for nil.
//
// Errors that are not a [*Error] report ERROR_GEN_FAILURE.
func CodeOf(err error) uint32 {
	if err == nil {
		return 0
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return errorGenFailure
}
