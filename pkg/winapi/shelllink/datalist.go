// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package shelllink

import (
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
)

// IShellLinkDataList
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/shobjidl_core/nn-shobjidl_core-ishelllinkdatalist
type IShellLinkDataList struct {
	ole.IUnknown
}

type IShellLinkDataListVtbl struct {
	ole.IUnknownVtbl
	AddDataBlock    uintptr
	CopyDataBlock   uintptr
	RemoveDataBlock uintptr
	GetFlags        uintptr
	SetFlags        uintptr
}

func (v *IShellLinkDataList) VTable() *IShellLinkDataListVtbl {
	return (*IShellLinkDataListVtbl)(unsafe.Pointer(v.RawVTable))
}

func (v *IShellLinkDataList) GetFlags() (uint32, error) {
	var flags uint32
	hr, _, _ := syscall.SyscallN(v.VTable().GetFlags, uintptr(unsafe.Pointer(v)), uintptr(unsafe.Pointer(&flags)))
	if err := hresultError(hr); err != nil {
		return 0, err
	}
	return flags, nil
}

func (v *IShellLinkDataList) SetFlags(flags uint32) error {
	hr, _, _ := syscall.SyscallN(v.VTable().SetFlags, uintptr(unsafe.Pointer(v)), uintptr(flags))
	return hresultError(hr)
}
