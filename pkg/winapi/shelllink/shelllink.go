// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

// Package shelllink binds the COM interfaces behind Windows shortcuts (.lnk):
// IShellLinkW, IShellLinkDataList and IPersistFile.
//
// Interface layouts follow go-ole: a struct embedding [ole.IUnknown] whose
// RawVTable is reinterpreted as the interface's vtable.
package shelllink

import (
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
)

// IShellLinkW
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/shobjidl_core/nn-shobjidl_core-ishelllinkw
type IShellLinkW struct {
	ole.IUnknown
}

type IShellLinkWVtbl struct {
	ole.IUnknownVtbl
	GetPath             uintptr
	GetIDList           uintptr
	SetIDList           uintptr
	GetDescription      uintptr
	SetDescription      uintptr
	GetWorkingDirectory uintptr
	SetWorkingDirectory uintptr
	GetArguments        uintptr
	SetArguments        uintptr
	GetHotkey           uintptr
	SetHotkey           uintptr
	GetShowCmd          uintptr
	SetShowCmd          uintptr
	GetIconLocation     uintptr
	SetIconLocation     uintptr
	SetRelativePath     uintptr
	Resolve             uintptr
	SetPath             uintptr
}

// New creates an in-process ShellLink object. COM must be initialized on the calling thread.
func New() (*IShellLinkW, error) {
	unk, err := ole.CreateInstance(CLSID_ShellLink, IID_IShellLinkW)
	if err != nil {
		return nil, err
	}

	return (*IShellLinkW)(unsafe.Pointer(unk)), nil
}

func (v *IShellLinkW) VTable() *IShellLinkWVtbl {
	return (*IShellLinkWVtbl)(unsafe.Pointer(v.RawVTable))
}

func (v *IShellLinkW) callStr(method uintptr, s *uint16) error {
	hr, _, _ := syscall.SyscallN(method, uintptr(unsafe.Pointer(v)), uintptr(unsafe.Pointer(s)))
	return hresultError(hr)
}

func (v *IShellLinkW) getStr(method uintptr, size int) (string, error) {
	buf := make([]uint16, size)
	hr, _, _ := syscall.SyscallN(method, uintptr(unsafe.Pointer(v)), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if err := hresultError(hr); err != nil {
		return "", err
	}

	return syscall.UTF16ToString(buf), nil
}

func (v *IShellLinkW) SetPath(path *uint16) error {
	return v.callStr(v.VTable().SetPath, path)
}

func (v *IShellLinkW) SetDescription(desc *uint16) error {
	return v.callStr(v.VTable().SetDescription, desc)
}

func (v *IShellLinkW) SetArguments(args *uint16) error {
	return v.callStr(v.VTable().SetArguments, args)
}

func (v *IShellLinkW) SetIconLocation(path *uint16, index int32) error {
	hr, _, _ := syscall.SyscallN(v.VTable().SetIconLocation, uintptr(unsafe.Pointer(v)), uintptr(unsafe.Pointer(path)), uintptr(index))
	return hresultError(hr)
}

// GetPath returns the raw target path (environment variables are not expanded).
func (v *IShellLinkW) GetPath() (string, error) {
	buf := make([]uint16, syscall.MAX_LONG_PATH)
	hr, _, _ := syscall.SyscallN(v.VTable().GetPath,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		0,
		SLGP_RAWPATH,
	)
	if err := hresultError(hr); err != nil {
		return "", err
	}

	return syscall.UTF16ToString(buf), nil
}

func (v *IShellLinkW) GetDescription() (string, error) {
	return v.getStr(v.VTable().GetDescription, INFOTIPSIZE)
}

func (v *IShellLinkW) GetArguments() (string, error) {
	return v.getStr(v.VTable().GetArguments, INFOTIPSIZE)
}

func (v *IShellLinkW) GetIconLocation() (path string, index int32, err error) {
	buf := make([]uint16, syscall.MAX_PATH)
	hr, _, _ := syscall.SyscallN(v.VTable().GetIconLocation,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&index)),
	)
	if err := hresultError(hr); err != nil {
		return "", 0, err
	}

	return syscall.UTF16ToString(buf), index, nil
}

// PersistFile queries the IPersistFile interface of the same object.
func (v *IShellLinkW) PersistFile() (*IPersistFile, error) {
	var ppf *IPersistFile
	if err := v.PutQueryInterface(IID_IPersistFile, &ppf); err != nil {
		return nil, err
	}
	return ppf, nil
}

// DataList queries the IShellLinkDataList interface of the same object.
func (v *IShellLinkW) DataList() (*IShellLinkDataList, error) {
	var pdl *IShellLinkDataList
	if err := v.PutQueryInterface(IID_IShellLinkDataList, &pdl); err != nil {
		return nil, err
	}
	return pdl, nil
}
