// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package shelllink

import "github.com/go-ole/go-ole"

// Ref: ShObjIdl_core.h / ObjIdl.h
var (
	CLSID_ShellLink        = ole.NewGUID("{00021401-0000-0000-C000-000000000046}")
	IID_IShellLinkW        = ole.NewGUID("{000214F9-0000-0000-C000-000000000046}")
	IID_IShellLinkDataList = ole.NewGUID("{45E2B4AE-B1C3-11D0-B92F-00A0C90312E1}")
	IID_IPersistFile       = ole.NewGUID("{0000010B-0000-0000-C000-000000000046}")
)

// SHELL_LINK_DATA_FLAGS
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/shlobj_core/ne-shlobj_core-shell_link_data_flags
const (
	SLDF_DEFAULT     uint32 = 0x00000000
	SLDF_HAS_ID_LIST uint32 = 0x00000001
	SLDF_RUNAS_USER  uint32 = 0x00002000
)

// SLGP_FLAGS
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/shobjidl_core/ne-shobjidl_core-slgp_flags
const (
	SLGP_SHORTPATH = 0x1
	SLGP_RAWPATH   = 0x4
)

// STGM_READ opens an object read-only.
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/stg/stgm-constants
const STGM_READ = 0x00000000

// INFOTIPSIZE is the maximum length of description and arguments the shell stores.
const INFOTIPSIZE = 1024
