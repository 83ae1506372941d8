package profile

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestStore() *Store {
	return NewStore(Owner{User: "Usman", Role: "Root Architect", Avatar: "https://example.com/a.png"})
}

func TestOverwrites(t *testing.T) {
	store := newTestStore()

	store.UpdateBio("new bio")
	if store.Bio() != "new bio" {
		t.Errorf("bio not overwritten: %q", store.Bio())
	}

	store.UpdateInstruction("be terse")
	if store.Instruction() != "be terse" {
		t.Errorf("instruction not overwritten: %q", store.Instruction())
	}

	store.UpdateOwner(Owner{User: "U2", Role: "Architect"})
	if store.Owner().User != "U2" {
		t.Errorf("owner not overwritten: %+v", store.Owner())
	}
}

func TestUpdateLink(t *testing.T) {
	store := newTestStore()

	if !store.UpdateLink("github", "https://github.com/elsewhere") {
		t.Fatal("expected known platform")
	}
	for _, l := range store.Links() {
		if l.Platform == "github" && l.URL != "https://github.com/elsewhere" {
			t.Errorf("link not updated: %q", l.URL)
		}
	}

	if store.UpdateLink("myspace", "https://myspace.com/u") {
		t.Error("expected unknown platform to miss, not be created")
	}
	if len(store.Links()) != 3 {
		t.Errorf("link set grew: %d", len(store.Links()))
	}
}

func newTestRouter(t *testing.T) (*Store, chi.Router) {
	t.Helper()
	store := newTestStore()
	r := chi.NewRouter()
	RegisterRoutes(r, store)
	return store, r
}

func TestRoute_GetAggregateView(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest("GET", "/api/profile/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var v view
	json.Unmarshal(w.Body.Bytes(), &v)
	if v.Owner.User != "Usman" {
		t.Errorf("unexpected owner: %+v", v.Owner)
	}
	if v.Bio == "" || v.Instruction == "" || len(v.Links) == 0 {
		t.Error("expected populated aggregate view")
	}
}

func TestRoute_UpdateInstruction(t *testing.T) {
	store, r := newTestRouter(t)

	req := httptest.NewRequest("PUT", "/api/profile/instruction", strings.NewReader(`{"text":"answer in haiku"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if store.Instruction() != "answer in haiku" {
		t.Errorf("instruction not applied: %q", store.Instruction())
	}
}

func TestRoute_UnknownPlatformIs404(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest("PUT", "/api/profile/links/myspace", strings.NewReader(`{"url":"https://x"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
