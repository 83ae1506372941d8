package authgate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func testDelays() Delays {
	return Delays{
		Scan:   20 * time.Millisecond,
		Commit: 10 * time.Millisecond,
		Reset:  30 * time.Millisecond,
	}
}

func newTestGate(t *testing.T) *Gate {
	t.Helper()
	g := New("usman_root", testDelays())
	t.Cleanup(g.Close)
	return g
}

// waitFor polls until cond holds or the deadline passes.
func waitFor(t *testing.T, d time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", msg)
}

func TestWrongSecretWalksDeniedBackToIdle(t *testing.T) {
	g := newTestGate(t)

	if err := g.Submit("wrong"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if g.State().Status != StatusScanning {
		t.Fatalf("expected scanning immediately after submit, got %s", g.State().Status)
	}

	waitFor(t, time.Second, func() bool { return g.State().Status == StatusDenied }, "denied")
	if g.Authenticated() {
		t.Error("authenticated must stay false on a denial")
	}
	if g.State().Error != DeniedMessage {
		t.Errorf("expected %q, got %q", DeniedMessage, g.State().Error)
	}

	waitFor(t, time.Second, func() bool { return g.State().Status == StatusIdle }, "auto-reset to idle")
	if g.State().Error != "" {
		t.Error("denial message should clear on reset")
	}
	if g.Authenticated() {
		t.Error("authenticated must remain false throughout")
	}
}

func TestSubmitDuringDeniedWindowStartsCleanScan(t *testing.T) {
	g := newTestGate(t)

	g.Submit("wrong")
	waitFor(t, time.Second, func() bool { return g.State().Status == StatusDenied }, "denied")

	// Retry while the denial is still showing. The pending auto-reset
	// from the failed attempt must not fire into the new scan.
	if err := g.Submit("usman_root"); err != nil {
		t.Fatalf("Submit during denied window: %v", err)
	}
	if g.State().Status != StatusScanning {
		t.Fatalf("expected scanning after retry, got %s", g.State().Status)
	}
	if g.State().Error != "" {
		t.Error("retry should clear the denial message")
	}

	// Past the old reset delay, still mid-scan: the retry must hold.
	time.Sleep(testDelays().Reset)
	if got := g.State().Status; got == StatusIdle {
		t.Fatal("stale reset timer yanked an in-flight scan back to idle")
	}

	waitFor(t, time.Second, g.Authenticated, "retry resolves to a committed grant")
}

func TestDefaultDelayTimings(t *testing.T) {
	d := DefaultDelays()
	if d.Scan != 1500*time.Millisecond || d.Commit != 800*time.Millisecond || d.Reset != 2000*time.Millisecond {
		t.Errorf("unexpected default delays: %+v", d)
	}
}

func TestCorrectSecretCommitsAfterDelay(t *testing.T) {
	g := newTestGate(t)

	if err := g.Submit("usman_root"); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	waitFor(t, time.Second, func() bool { return g.State().Status == StatusGranted }, "granted")
	// The grant commits only after the staging delay.
	waitFor(t, time.Second, g.Authenticated, "authenticated commit")
}

func TestSubmitWhileScanningRejected(t *testing.T) {
	g := newTestGate(t)

	g.Submit("usman_root")
	if err := g.Submit("again"); err != ErrScanInProgress {
		t.Errorf("expected ErrScanInProgress, got %v", err)
	}
}

func TestLogoutCancelsPendingGrant(t *testing.T) {
	g := newTestGate(t)

	g.Submit("usman_root")
	waitFor(t, time.Second, func() bool { return g.State().Status == StatusGranted }, "granted")

	// Logout before the commit delay fires.
	g.Logout()
	time.Sleep(testDelays().Commit * 3)
	if g.Authenticated() {
		t.Error("cancelled commit still authenticated the gate")
	}
	if g.State().Status != StatusIdle {
		t.Errorf("expected idle after logout, got %s", g.State().Status)
	}
}

func TestCloseMidScanLeaksNothing(t *testing.T) {
	g := New("usman_root", testDelays())
	g.Submit("usman_root")
	g.Close()

	time.Sleep(testDelays().Scan * 3)
	if g.Authenticated() {
		t.Error("closed gate still resolved a scan")
	}
	if err := g.Submit("usman_root"); err == nil {
		t.Error("closed gate accepted a submit")
	}
}

// HTTP handler tests

func TestRoute_LoginAndStatus(t *testing.T) {
	g := newTestGate(t)
	logouts := 0
	r := chi.NewRouter()
	RegisterRoutes(r, g, func() { logouts++ })

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"access_key":"wrong"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
	}

	// Second submit while scanning conflicts.
	req = httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"access_key":"wrong"}`))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}

	waitFor(t, time.Second, func() bool { return g.State().Status == StatusDenied }, "denied")

	req = httptest.NewRequest("GET", "/api/auth/status", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if !strings.Contains(w.Body.String(), "ACCESS_DENIED") {
		t.Errorf("expected denial message in status, got %s", w.Body.String())
	}

	req = httptest.NewRequest("POST", "/api/auth/logout", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if logouts != 1 {
		t.Errorf("expected logout hook to run once, ran %d times", logouts)
	}
}
