// Package authgate implements the admin panel's demo login sequence.
//
// This is NOT a security boundary. The access key is a plaintext
// constant from the config file, compared without hashing, salting, or
// rate limiting, and the staged "scanning" delays are purely cosmetic.
// It exists to gate the demo admin panel and nothing else; never reuse
// it for real access control.
package authgate

import (
	"errors"
	"sync"
	"time"
)

// Status is one of the gate's four states.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusScanning Status = "scanning"
	StatusGranted  Status = "granted"
	StatusDenied   Status = "denied"
)

// DeniedMessage is the user-visible denial string. It auto-clears when
// the gate resets to idle.
const DeniedMessage = "ACCESS_DENIED: INVALID_CREDENTIALS"

// ErrScanInProgress is returned when a submit arrives while a previous
// one is still resolving.
var ErrScanInProgress = errors.New("authgate: scan already in progress")

// Delays stages the gate's artificial transitions.
type Delays struct {
	// Scan is how long a submit stays in scanning before resolving.
	Scan time.Duration
	// Commit is the pause between granted and authenticated=true.
	Commit time.Duration
	// Reset is how long a denial shows before returning to idle.
	Reset time.Duration
}

// DefaultDelays match the original login sequence timings.
func DefaultDelays() Delays {
	return Delays{
		Scan:   1500 * time.Millisecond,
		Commit: 800 * time.Millisecond,
		Reset:  2000 * time.Millisecond,
	}
}

// State is a snapshot of the gate for the status endpoint.
type State struct {
	Status        Status `json:"status"`
	Authenticated bool   `json:"authenticated"`
	Error         string `json:"error,omitempty"`
}

// Gate runs the idle → scanning → granted|denied sequence. Pending
// transitions are cancellable so tearing the gate down mid-sequence
// never leaks a timer.
type Gate struct {
	mu            sync.Mutex
	secret        string
	delays        Delays
	status        Status
	authenticated bool
	lastError     string
	timers        []*time.Timer
	closed        bool
}

// New creates a gate for the given access key.
func New(secret string, delays Delays) *Gate {
	return &Gate{
		secret: secret,
		delays: delays,
		status: StatusIdle,
	}
}

// Submit starts the scanning sequence for the given key. The
// comparison resolves after the scan delay; a grant commits
// authenticated=true after a further commit delay, and a denial
// auto-resets to idle after the reset delay.
func (g *Gate) Submit(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return errors.New("authgate: closed")
	}
	if g.status == StatusScanning || g.status == StatusGranted && !g.authenticated {
		return ErrScanInProgress
	}

	// A submit during the denied window supersedes the pending
	// auto-reset; left running it would yank the new scan back to idle.
	g.stopTimers()

	g.status = StatusScanning
	g.lastError = ""
	match := key == g.secret

	g.schedule(g.delays.Scan, func() {
		if match {
			g.status = StatusGranted
			g.schedule(g.delays.Commit, func() {
				g.authenticated = true
			})
			return
		}
		g.status = StatusDenied
		g.lastError = DeniedMessage
		g.schedule(g.delays.Reset, func() {
			g.status = StatusIdle
			g.lastError = ""
		})
	})
	return nil
}

// schedule registers a cancellable transition. Callers must hold mu;
// the callback runs with mu held and is skipped after Close.
func (g *Gate) schedule(d time.Duration, f func()) {
	var t *time.Timer
	t = time.AfterFunc(d, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.closed {
			return
		}
		g.removeTimer(t)
		f()
	})
	g.timers = append(g.timers, t)
}

func (g *Gate) removeTimer(t *time.Timer) {
	for i := range g.timers {
		if g.timers[i] == t {
			g.timers = append(g.timers[:i], g.timers[i+1:]...)
			return
		}
	}
}

// State returns a snapshot of the gate.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return State{
		Status:        g.status,
		Authenticated: g.authenticated,
		Error:         g.lastError,
	}
}

// Authenticated reports whether a grant has committed.
func (g *Gate) Authenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.authenticated
}

// Logout deauthenticates and returns the gate to idle. Any pending
// transition is cancelled.
func (g *Gate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopTimers()
	g.authenticated = false
	g.status = StatusIdle
	g.lastError = ""
}

// Close cancels all pending transitions. The gate refuses further
// submits once closed.
func (g *Gate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	g.stopTimers()
}

func (g *Gate) stopTimers() {
	for _, t := range g.timers {
		t.Stop()
	}
	g.timers = nil
}
