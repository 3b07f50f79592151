// Package window implements the native-window login path: instead of a
// loopback HTTP server, a host application window loads the provider's login
// page and feeds every navigation it observes to a Watcher, which picks the
// authorization code out of the redirect back to the callback URL.
package window

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// UserTerminatedErr is reported when the window closes before any matching
// navigation delivered a code.
var UserTerminatedErr = errors.New("user terminated without authenticating")

// codePattern is deliberately permissive: the provider controls the redirect
// URL shape, the watcher only lifts the code out of it.
var codePattern = regexp.MustCompile(`code=([^&]*)`)

// Result is the single outcome of a watch run.
type Result struct {
	Code string
	Err  error
}

// Watcher inspects navigation events for the redirect back to the callback
// URL. Exactly one Result is ever produced per run; once resolved, further
// events (including the window-close that follows a successful redirect) are
// ignored.
type Watcher struct {
	prefix   string
	resolved bool
}

// New creates a watcher for navigations landing on callbackPrefix.
func New(callbackPrefix string) *Watcher {
	return &Watcher{prefix: callbackPrefix}
}

// Navigate inspects one navigated-to URL. URLs still inside the provider's
// flow are ignored and (nil, false) is returned. A URL matching the callback
// prefix resolves the watcher: with the extracted code on success, or with an
// error naming the full URL when no code is present.
func (w *Watcher) Navigate(url string) (*Result, bool) {
	if w.resolved || !strings.HasPrefix(url, w.prefix) {
		return nil, false
	}

	w.resolved = true
	m := codePattern.FindStringSubmatch(url)
	if m == nil {
		return &Result{Err: fmt.Errorf("no authorization code in callback %s", url)}, true
	}

	log.Debug().Msg("authorization code received from window navigation")
	return &Result{Code: m[1]}, true
}

// Closed handles the window-close event. After a resolution this is a no-op:
// the host closes the window as part of a successful redirect, and that close
// must not be mistaken for a user abort.
func (w *Watcher) Closed() *Result {
	if w.resolved {
		return nil
	}
	w.resolved = true
	return &Result{Err: UserTerminatedErr}
}
