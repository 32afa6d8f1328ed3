// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package shelllink

import (
	"errors"
	"runtime"
	"syscall"

	"github.com/go-ole/go-ole"
)

const (
	sFalse            = 0x00000001
	rpcEChangedMode   = 0x80010106
	hresultUnexpected = 0x8000FFFF
)

// Apartment is a COM initialization owned by one call.
//
// The calling goroutine stays locked to its OS thread until [Apartment.Close].
type Apartment struct {
	owned bool
}

// Initialize locks the OS thread and initializes a single-threaded apartment on it.
//
// S_FALSE (already initialized) still needs a balancing CoUninitialize. RPC_E_CHANGED_MODE means the
// thread lives in another apartment that we do not own, COM is usable but must not be torn down by us.
func Initialize() (*Apartment, error) {
	runtime.LockOSThread()

	err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED)
	switch HResult(err) {
	case 0, sFalse:
		return &Apartment{owned: true}, nil
	case rpcEChangedMode:
		return &Apartment{owned: false}, nil
	default:
		runtime.UnlockOSThread()
		return nil, err
	}
}

func (a *Apartment) Close() {
	if a.owned {
		ole.CoUninitialize()
	}
	runtime.UnlockOSThread()
}

// HResult extracts the HRESULT carried by err, 0 for nil.
func HResult(err error) uint32 {
	if err == nil {
		return 0
	}

	var oleErr *ole.OleError
	if errors.As(err, &oleErr) {
		return uint32(oleErr.Code())
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uint32(errno)
	}

	return hresultUnexpected
}

func hresultError(hr uintptr) error {
	if int32(hr) < 0 {
		return ole.NewError(hr)
	}
	return nil
}
