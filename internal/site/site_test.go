package site

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/usmank-dev/neonfolio/internal/authgate"
	"github.com/usmank-dev/neonfolio/internal/inbox"
	"github.com/usmank-dev/neonfolio/internal/portfolio"
	"github.com/usmank-dev/neonfolio/internal/profile"
	"github.com/usmank-dev/neonfolio/internal/ui"
)

func newTestSite(t *testing.T) (*Site, *authgate.Gate, chi.Router) {
	t.Helper()
	gate := authgate.New("test_key", authgate.Delays{
		Scan:   time.Millisecond,
		Commit: time.Millisecond,
		Reset:  time.Millisecond,
	})
	t.Cleanup(gate.Close)

	s, err := New(
		portfolio.NewStore(),
		profile.NewStore(profile.Owner{User: "Usman", Role: "Root Architect"}),
		inbox.NewStore(),
		gate,
		ui.NewState(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := chi.NewRouter()
	s.RegisterRoutes(r)
	return s, gate, r
}

func get(r chi.Router, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHomeRendersSeedContent(t *testing.T) {
	_, _, r := newTestSite(t)

	w := get(r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Usman", "Quantum Dashboard", "Neural Matrix", "Open a Channel"} {
		if !strings.Contains(body, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

func TestHomeTagFilter(t *testing.T) {
	_, _, r := newTestSite(t)

	w := get(r, "/?tag=Next.js")
	body := w.Body.String()
	if !strings.Contains(body, "Neon Commerce") {
		t.Error("expected Next.js project present")
	}
	if strings.Contains(body, "project-1") {
		t.Error("expected non-matching project card filtered out")
	}
}

func TestAdminShowsGateWhileUnauthenticated(t *testing.T) {
	_, _, r := newTestSite(t)

	w := get(r, "/admin")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Terminal_Auth") {
		t.Error("expected login gate for unauthenticated visitor")
	}
}

func TestAdminDashboardOnceAuthenticated(t *testing.T) {
	_, gate, r := newTestSite(t)

	gate.Submit("test_key")
	deadline := time.Now().Add(time.Second)
	for !gate.Authenticated() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if !gate.Authenticated() {
		t.Fatal("gate never authenticated")
	}

	w := get(r, "/admin")
	body := w.Body.String()
	if !strings.Contains(body, "COMMAND_CENTER") {
		t.Error("expected dashboard after authentication")
	}
	if !strings.Contains(body, "Comm_Relay") {
		t.Error("expected inbox panel in dashboard")
	}
}

func TestUnknownPathRenders404(t *testing.T) {
	_, _, r := newTestSite(t)

	w := get(r, "/blog/lol")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Signal lost") {
		t.Error("expected not-found view body")
	}
}

func TestBioMarkdownRendered(t *testing.T) {
	s, _, _ := newTestSite(t)

	out := string(s.markdown("**bold** move"))
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("markdown not rendered: %q", out)
	}
}
