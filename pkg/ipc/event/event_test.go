// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package event

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/Microsoft/go-winio"
	"github.com/google/go-cmp/cmp"
	"github.com/oomol-lab/win-interface/pkg/logger"
)

type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()

	r.mu.Lock()
	r.events = append(r.events, q.Get("event")+"="+q.Get("message"))
	r.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func TestNotifyOrder(t *testing.T) {
	name := fmt.Sprintf("win-interface-event-test-%d", os.Getpid())

	l, err := winio.ListenPipe(`\\.\pipe\`+name, nil)
	if err != nil {
		t.Fatalf("ListenPipe() error: %v", err)
	}
	defer l.Close()

	r := &recorder{}
	mux := http.NewServeMux()
	mux.Handle("/notify", r)
	go func() {
		_ = http.Serve(l, mux)
	}()

	Setup(logger.Discard(), name)

	NotifyLink(Linking)
	NotifyLink(LinkSuccess)
	NotifyError(errors.New("a b&c"))
	NotifyApp(Exit)

	if e != nil {
		t.Fatal("event should be torn down after Exit")
	}

	want := []string{
		"link=Linking",
		"link=LinkSuccess",
		"error=a b&c",
		"app=Exit",
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if diff := cmp.Diff(want, r.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestNotifyWithoutPipe(t *testing.T) {
	Setup(logger.Discard(), "")

	NotifyRemove(Removing)
	NotifyApp(Exit)

	if e != nil {
		t.Error("event should stay disabled without a pipe name")
	}
}
