// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package shelllink

import (
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
)

// IPersistFile
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/objidl/nn-objidl-ipersistfile
type IPersistFile struct {
	ole.IUnknown
}

type IPersistFileVtbl struct {
	ole.IUnknownVtbl
	GetClassID    uintptr
	IsDirty       uintptr
	Load          uintptr
	Save          uintptr
	SaveCompleted uintptr
	GetCurFile    uintptr
}

func (v *IPersistFile) VTable() *IPersistFileVtbl {
	return (*IPersistFileVtbl)(unsafe.Pointer(v.RawVTable))
}

// Save writes the object to path. remember makes path the object's current file.
func (v *IPersistFile) Save(path *uint16, remember bool) error {
	var fRemember uintptr
	if remember {
		fRemember = 1
	}

	hr, _, _ := syscall.SyscallN(v.VTable().Save, uintptr(unsafe.Pointer(v)), uintptr(unsafe.Pointer(path)), fRemember)
	return hresultError(hr)
}

// SaveCompleted notifies the object that it can write to its file again.
func (v *IPersistFile) SaveCompleted(path *uint16) error {
	hr, _, _ := syscall.SyscallN(v.VTable().SaveCompleted, uintptr(unsafe.Pointer(v)), uintptr(unsafe.Pointer(path)))
	return hresultError(hr)
}

func (v *IPersistFile) Load(path *uint16, mode uint32) error {
	hr, _, _ := syscall.SyscallN(v.VTable().Load, uintptr(unsafe.Pointer(v)), uintptr(unsafe.Pointer(path)), uintptr(mode))
	return hresultError(hr)
}
