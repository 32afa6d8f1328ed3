// SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/oomol-lab/win-interface/pkg/cli"
	"github.com/oomol-lab/win-interface/pkg/ipc/event"
	"github.com/oomol-lab/win-interface/pkg/status"
	"github.com/oomol-lab/win-interface/pkg/types"
	"github.com/oomol-lab/win-interface/pkg/util"
	ucli "github.com/urfave/cli/v3"
)

func basicOpt(cmd *ucli.Command) types.BasicOpt {
	return types.BasicOpt{
		Name:           cmd.String("name"),
		LogPath:        cmd.String("log-path"),
		EventNpipeName: cmd.String("event-npipe-name"),
		BindPID:        int(cmd.Int("bind-pid")),
	}
}

func linkFlags(linkUsage string) []ucli.Flag {
	return []ucli.Flag{
		&ucli.StringFlag{Name: "target", Usage: "File the shortcut points at", Required: true},
		&ucli.StringFlag{Name: "link", Usage: linkUsage, Required: true},
		&ucli.StringFlag{Name: "icon", Usage: "Icon file, defaults to the target"},
		&ucli.StringFlag{Name: "args", Usage: "Command line arguments passed to the target"},
		&ucli.StringFlag{Name: "description", Usage: "Shortcut tooltip"},
		&ucli.BoolFlag{Name: "admin", Usage: "Run the target as administrator"},
	}
}

func linkAction(location cli.LinkLocation) ucli.ActionFunc {
	return func(_ context.Context, cmd *ucli.Command) error {
		icon := cmd.String("icon")
		if icon == "" {
			icon = cmd.String("target")
		}

		c := cli.LinkCmd(&types.LinkCmdOpt{
			LinkOpt: types.LinkOpt{
				Target:      cmd.String("target"),
				LinkPath:    cmd.String("link"),
				IconPath:    icon,
				Args:        cmd.String("args"),
				Description: cmd.String("description"),
				Admin:       cmd.Bool("admin"),
			},
			BasicOpt: basicOpt(cmd),
		}, location)

		if err := c.Setup(); err != nil {
			return fmt.Errorf("setup link command failed: %w", err)
		}
		return report(c.Start())
	}
}

// report logs err to the host before it leaves the process.
func report(err error) error {
	if err != nil {
		event.NotifyError(err)
	}
	return err
}

// focusResult turns the outcome of FocusPID into the exit code of the focus command.
//
// A missing window is an expected outcome, already sent as focus=WindowNotFound.
func focusResult(err error) error {
	if err == nil {
		return nil
	}

	if status.KindOf(err) != status.NotFound {
		event.NotifyError(err)
	}
	return ucli.Exit(err, status.FocusCode(err))
}

// app is the command tree together with the exit code of failures that carry none.
type app struct {
	failCode int
}

func newApp() *app {
	return &app{failCode: 1}
}

// useFailCode makes every failure of the running command that is not an [ucli.ExitCoder]
// exit with code, usage errors included.
func (a *app) useFailCode(code int) ucli.BeforeFunc {
	return func(ctx context.Context, _ *ucli.Command) (context.Context, error) {
		a.failCode = code
		return ctx, nil
	}
}

func (a *app) exitCode(err error) int {
	if err == nil {
		return 0
	}

	var coder ucli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}

	return a.failCode
}

func (a *app) command() *ucli.Command {
	return &ucli.Command{
		Name:  "win-interface",
		Usage: "Windows shell helpers for installers: shortcuts, deferred deletion, window focus",
		// exit codes are handled below, after the pending events are delivered
		ExitErrHandler: func(context.Context, *ucli.Command, error) {},
		Flags: []ucli.Flag{
			&ucli.StringFlag{Name: "name", Usage: "Name of the application, used in log file names"},
			&ucli.StringFlag{Name: "log-path", Usage: "Path to the log folder", Required: true},
			&ucli.StringFlag{Name: "event-npipe-name", Usage: "HTTP server established in the named pipe (such as the foo in //./pipe/foo) must implement the GET /notify?event=&message= route"},
			&ucli.IntFlag{Name: "bind-pid", Usage: "Exit when this process exits"},
		},
		Commands: []*ucli.Command{
			{
				Name:   "link",
				Usage:  "Create a shortcut",
				Flags:  linkFlags("Path of the .lnk file"),
				Action: linkAction(cli.LinkAt),
			},
			{
				Name:   "link-desktop",
				Usage:  "Create a shortcut on the user's desktop",
				Flags:  linkFlags("Name of the shortcut, without .lnk"),
				Action: linkAction(cli.LinkOnDesktop),
			},
			{
				Name:   "link-start-menu",
				Usage:  "Create a shortcut in the user's start menu",
				Flags:  linkFlags("Name of the shortcut, without .lnk"),
				Action: linkAction(cli.LinkInStartMenu),
			},
			{
				Name:      "schedule-delete",
				Usage:     "Delete files or empty folders at the next reboot",
				ArgsUsage: "<path>...",
				Action: func(_ context.Context, cmd *ucli.Command) error {
					c := cli.ScheduleDeleteCmd(&types.ScheduleDeleteOpt{
						Paths:    cmd.Args().Slice(),
						BasicOpt: basicOpt(cmd),
					})
					if err := c.Setup(); err != nil {
						return fmt.Errorf("setup schedule-delete command failed: %w", err)
					}
					return report(c.Start())
				},
			},
			{
				Name:  "remove",
				Usage: "Remove what an installer recorded in a manifest",
				Flags: []ucli.Flag{
					&ucli.StringFlag{Name: "manifest", Usage: "Path to the manifest json", Required: true},
					&ucli.BoolFlag{Name: "no-schedule", Usage: "Do not schedule leftovers for deletion at reboot"},
					&ucli.BoolFlag{Name: "reboot", Usage: "Reboot when some leftovers were scheduled"},
				},
				Action: func(ctx context.Context, cmd *ucli.Command) error {
					c := cli.RemoveCmd(&types.RemoveOpt{
						ManifestPath: cmd.String("manifest"),
						NoSchedule:   cmd.Bool("no-schedule"),
						Reboot:       cmd.Bool("reboot"),
						BasicOpt:     basicOpt(cmd),
					})
					if err := c.Setup(); err != nil {
						return fmt.Errorf("setup remove command failed: %w", err)
					}
					return report(c.Start(ctx))
				},
			},
			{
				Name:  "focus",
				Usage: "Bring a window of a process to the foreground, exit code 1 means no window was found, 2 any other failure",
				Flags: []ucli.Flag{
					&ucli.UintFlag{Name: "pid", Usage: "Process id", Required: true},
				},
				// exit code 1 is reserved for a missing window
				Before: a.useFailCode(status.FocusError),
				OnUsageError: func(_ context.Context, _ *ucli.Command, err error, _ bool) error {
					return ucli.Exit(err, status.FocusError)
				},
				Action: func(_ context.Context, cmd *ucli.Command) error {
					c := cli.FocusCmd(&types.FocusOpt{
						PID:      uint32(cmd.Uint("pid")),
						BasicOpt: basicOpt(cmd),
					})
					if err := c.Setup(); err != nil {
						return ucli.Exit(fmt.Errorf("setup focus command failed: %w", err), status.FocusError)
					}

					return focusResult(c.Start())
				},
			},
			{
				Name:  "instance",
				Usage: "Register a running instance, or focus the one already running",
				Flags: []ucli.Flag{
					&ucli.StringFlag{Name: "ipc-dir", Usage: "Folder shared by all instances, defaults to %LOCALAPPDATA%\\<name>\\ipc"},
				},
				Action: func(ctx context.Context, cmd *ucli.Command) error {
					c := cli.InstanceCmd(&types.InstanceOpt{
						IPCDir:   cmd.String("ipc-dir"),
						BasicOpt: basicOpt(cmd),
					})
					if err := c.Setup(); err != nil {
						return fmt.Errorf("setup instance command failed: %w", err)
					}
					return report(c.Start(ctx))
				},
			},
			{
				Name:  "register",
				Usage: "Add the application to Apps & features",
				Flags: []ucli.Flag{
					&ucli.StringFlag{Name: "id", Usage: "Uninstall registry key name", Required: true},
					&ucli.StringFlag{Name: "display-name", Required: true},
					&ucli.StringFlag{Name: "display-icon"},
					&ucli.StringFlag{Name: "publisher"},
					&ucli.UintFlag{Name: "estimated-size", Usage: "Size in KB"},
					&ucli.StringFlag{Name: "uninstall-string", Required: true},
					&ucli.StringFlag{Name: "quiet-uninstall-string"},
				},
				Action: func(_ context.Context, cmd *ucli.Command) error {
					c := cli.RegisterCmd(&types.RegisterOpt{
						UninstallEntry: types.UninstallEntry{
							ID:                   cmd.String("id"),
							DisplayName:          cmd.String("display-name"),
							DisplayIcon:          cmd.String("display-icon"),
							Publisher:            cmd.String("publisher"),
							EstimatedSizeKB:      uint32(cmd.Uint("estimated-size")),
							UninstallString:      cmd.String("uninstall-string"),
							QuietUninstallString: cmd.String("quiet-uninstall-string"),
						},
						BasicOpt: basicOpt(cmd),
					})
					if err := c.Setup(); err != nil {
						return fmt.Errorf("setup register command failed: %w", err)
					}
					return report(c.Start())
				},
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp()
	err := a.command().Run(ctx, os.Args)
	event.NotifyApp(event.Exit)

	if err != nil {
		fmt.Println(err)
	}

	util.Exit(a.exitCode(err))
}
