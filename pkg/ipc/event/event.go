// SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package event

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/Code-Hex/go-infinity-channel"
	"github.com/Microsoft/go-winio"
	"github.com/oomol-lab/win-interface/pkg/logger"
)

type key string

const (
	kLink     key = "link"
	kDelete   key = "delete"
	kRemove   key = "remove"
	kFocus    key = "focus"
	kInstance key = "instance"
	kApp      key = "app"
	kError    key = "error"
)

type link string

const (
	Linking     link = "Linking"
	LinkFailed  link = "LinkFailed"
	LinkSuccess link = "LinkSuccess"
)

type del string

const (
	Scheduling      del = "Scheduling"
	ScheduleFailed  del = "ScheduleFailed"
	ScheduleSuccess del = "ScheduleSuccess"
)

type remove string

const (
	Removing      remove = "Removing"
	RemoveFailed  remove = "RemoveFailed"
	RemoveSuccess remove = "RemoveSuccess"
	NeedReboot    remove = "NeedReboot"
)

type focus string

const (
	Focused        focus = "Focused"
	WindowNotFound focus = "WindowNotFound"
	FocusFailed    focus = "FocusFailed"
)

type instance string

const (
	Registered     instance = "Registered"
	AlreadyRunning instance = "AlreadyRunning"
)

type app string

const (
	Exit app = "Exit"
)

type datum struct {
	name    string
	message string
}

type event struct {
	client  *http.Client
	log     *logger.Context
	channel *infinity.Channel[*datum]
	done    chan struct{}
}

var e *event

// Setup starts delivering notifications to the HTTP server listening on the named pipe
// \\.\pipe\<npipeName>. Without a pipe name every Notify call is a no-op.
func Setup(log *logger.Context, npipeName string) {
	if npipeName == "" {
		log.Info("No event named pipe given, notifications are disabled")
		return
	}

	socketPath := `\\.\pipe\` + npipeName

	c := &http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, addr string) (net.Conn, error) {
				return winio.DialPipeContext(ctx, socketPath)
			},
		},
		Timeout: 200 * time.Millisecond,
	}

	e = &event{
		client:  c,
		log:     log,
		channel: infinity.NewChannel[*datum](),
		done:    make(chan struct{}),
	}

	go e.loop()
}

func (e *event) loop() {
	// see: https://github.com/Code-Hex/go-infinity-channel/issues/1
	defer close(e.done)

	for datum := range e.channel.Out() {
		uri := fmt.Sprintf("http://win-interface/notify?event=%s&message=%s", datum.name, url.QueryEscape(datum.message))
		e.log.Infof("Notify %s event to %s", datum.name, uri)

		if resp, err := e.client.Get(uri); err != nil {
			e.log.Warnf("Notify %+v event failed: %v", *datum, err)
		} else {
			_ = resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				e.log.Warnf("Notify %+v event failed, status code is: %d", *datum, resp.StatusCode)
			}
		}

		if datum.name == string(kApp) && datum.message == string(Exit) {
			return
		}
	}
}

func notify(k key, v string) {
	if e == nil {
		return
	}

	e.channel.In() <- &datum{
		name:    string(k),
		message: v,
	}

	// Exit is the last event, wait until everything queued before it has been delivered
	if k == kApp && v == string(Exit) {
		e.channel.Close()
		<-e.done
		e = nil
	}
}

func NotifyLink(v link) {
	notify(kLink, string(v))
}

func NotifyDelete(v del) {
	notify(kDelete, string(v))
}

func NotifyRemove(v remove) {
	notify(kRemove, string(v))
}

func NotifyFocus(v focus) {
	notify(kFocus, string(v))
}

func NotifyInstance(v instance) {
	notify(kInstance, string(v))
}

func NotifyApp(v app) {
	notify(kApp, string(v))
}

func NotifyError(err error) {
	notify(kError, err.Error())
}
