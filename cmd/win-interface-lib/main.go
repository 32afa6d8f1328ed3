// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

// Command win-interface-lib is built with -buildmode=c-shared. Every string argument is UTF-8.
package main

import "C"

import "github.com/oomol-lab/win-interface/pkg/types"

//export CreateLink
func CreateLink(target, linkFilePath, linkIconPath, args, description *C.char, admin C.char) C.int {
	return C.int(createLink(&types.LinkOpt{
		Target:      C.GoString(target),
		LinkPath:    C.GoString(linkFilePath),
		IconPath:    C.GoString(linkIconPath),
		Args:        C.GoString(args),
		Description: C.GoString(description),
		Admin:       admin != 0,
	}))
}

//export ScheduleFileDelete
func ScheduleFileDelete(target *C.char) C.int {
	return C.int(scheduleFileDelete(C.GoString(target)))
}

//export FocusPID
func FocusPID(pid C.ulong) C.int {
	return C.int(focusPID(uint32(pid)))
}

// EnableLog starts writing <dir>\<name>.log, rotating older files. Returns 0 on success.
//
//export EnableLog
func EnableLog(dir, name *C.char) C.int {
	return C.int(enableLog(C.GoString(dir), C.GoString(name)))
}

func main() {}
