// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package sys

import (
	"fmt"
	"path/filepath"

	"github.com/oomol-lab/win-interface/pkg/logger"
	"github.com/oomol-lab/win-interface/pkg/status"
	"github.com/oomol-lab/win-interface/pkg/types"
	"github.com/oomol-lab/win-interface/pkg/winapi/shelllink"
	"golang.org/x/sys/windows"
)

func comError(op string, err error) error {
	return status.New(status.COMFailure, op, shelllink.HResult(err), err)
}

type linkStrings struct {
	target, desc, icon, args, path *uint16
}

func convertLink(opt *types.LinkOpt) (s linkStrings, err error) {
	for _, v := range []struct {
		dst **uint16
		src string
	}{
		{&s.target, opt.Target},
		{&s.desc, opt.Description},
		{&s.icon, opt.IconPath},
		{&s.args, opt.Args},
		{&s.path, opt.LinkPath},
	} {
		if *v.dst, err = UTF16PtrFromUTF8(v.src); err != nil {
			return s, err
		}
	}

	return s, nil
}

// CreateLink creates the shortcut opt.LinkPath pointing at opt.Target.
//
// With opt.Admin the shortcut asks the shell to run the target elevated. If any step before
// IPersistFile::Save fails nothing is written, a failing Save may still leave a partial file.
// Errors are of kind [status.COMFailure] with the HRESULT as code, or [status.InvalidEncoding].
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/shell/links#creating-a-shortcut-and-a-folder-shortcut-to-a-file
func CreateLink(log *logger.Context, opt *types.LinkOpt) error {
	log.Infof("Create shortcut %s -> %s, admin: %t", opt.LinkPath, opt.Target, opt.Admin)

	s, err := convertLink(opt)
	if err != nil {
		return err
	}

	apt, err := shelllink.Initialize()
	if err != nil {
		return comError("CoInitializeEx", err)
	}
	defer apt.Close()

	psl, err := shelllink.New()
	if err != nil {
		return comError("CoCreateInstance", err)
	}
	defer psl.Release()

	if err := psl.SetPath(s.target); err != nil {
		return comError("IShellLinkW::SetPath", err)
	}
	if err := psl.SetDescription(s.desc); err != nil {
		return comError("IShellLinkW::SetDescription", err)
	}
	if err := psl.SetIconLocation(s.icon, 0); err != nil {
		return comError("IShellLinkW::SetIconLocation", err)
	}
	if err := psl.SetArguments(s.args); err != nil {
		return comError("IShellLinkW::SetArguments", err)
	}

	ppf, err := psl.PersistFile()
	if err != nil {
		return comError("QueryInterface(IPersistFile)", err)
	}
	defer ppf.Release()

	if opt.Admin {
		if err := markRunAs(psl); err != nil {
			return err
		}
	}

	if err := ppf.Save(s.path, true); err != nil {
		return comError("IPersistFile::Save", err)
	}
	if err := ppf.SaveCompleted(s.path); err != nil {
		return comError("IPersistFile::SaveCompleted", err)
	}

	log.Infof("Shortcut %s saved", opt.LinkPath)
	return nil
}

func markRunAs(psl *shelllink.IShellLinkW) error {
	pdl, err := psl.DataList()
	if err != nil {
		return comError("QueryInterface(IShellLinkDataList)", err)
	}
	defer pdl.Release()

	flags, err := pdl.GetFlags()
	if err != nil {
		return comError("IShellLinkDataList::GetFlags", err)
	}

	if err := pdl.SetFlags(flags | shelllink.SLDF_RUNAS_USER); err != nil {
		return comError("IShellLinkDataList::SetFlags", err)
	}

	return nil
}

// ReadLink loads an existing shortcut. Admin reports the SLDF_RUNAS_USER flag.
func ReadLink(path string) (*types.LinkOpt, error) {
	p, err := UTF16PtrFromUTF8(path)
	if err != nil {
		return nil, err
	}

	apt, err := shelllink.Initialize()
	if err != nil {
		return nil, comError("CoInitializeEx", err)
	}
	defer apt.Close()

	psl, err := shelllink.New()
	if err != nil {
		return nil, comError("CoCreateInstance", err)
	}
	defer psl.Release()

	ppf, err := psl.PersistFile()
	if err != nil {
		return nil, comError("QueryInterface(IPersistFile)", err)
	}
	defer ppf.Release()

	if err := ppf.Load(p, shelllink.STGM_READ); err != nil {
		return nil, comError("IPersistFile::Load", err)
	}

	opt := &types.LinkOpt{LinkPath: path}

	if opt.Target, err = psl.GetPath(); err != nil {
		return nil, comError("IShellLinkW::GetPath", err)
	}
	if opt.Args, err = psl.GetArguments(); err != nil {
		return nil, comError("IShellLinkW::GetArguments", err)
	}
	if opt.Description, err = psl.GetDescription(); err != nil {
		return nil, comError("IShellLinkW::GetDescription", err)
	}
	if opt.IconPath, _, err = psl.GetIconLocation(); err != nil {
		return nil, comError("IShellLinkW::GetIconLocation", err)
	}

	pdl, err := psl.DataList()
	if err != nil {
		return nil, comError("QueryInterface(IShellLinkDataList)", err)
	}
	defer pdl.Release()

	flags, err := pdl.GetFlags()
	if err != nil {
		return nil, comError("IShellLinkDataList::GetFlags", err)
	}
	opt.Admin = flags&shelllink.SLDF_RUNAS_USER != 0

	return opt, nil
}

// DesktopLinkPath returns <Desktop>\<name>.lnk for the current user.
func DesktopLinkPath(name string) (string, error) {
	return knownFolderLink(windows.FOLDERID_Desktop, name)
}

// StartMenuLinkPath returns <Start Menu>\Programs\<name>.lnk for the current user.
func StartMenuLinkPath(name string) (string, error) {
	return knownFolderLink(windows.FOLDERID_Programs, name)
}

func knownFolderLink(id *windows.KNOWNFOLDERID, name string) (string, error) {
	dir, err := windows.KnownFolderPath(id, windows.KF_FLAG_CREATE)
	if err != nil {
		return "", fmt.Errorf("failed to get known folder path: %w", err)
	}

	return filepath.Join(dir, name+".lnk"), nil
}
