package inbox

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestAddDefaults(t *testing.T) {
	store := NewStore()
	m := store.Add(Submission{SenderName: "A", SenderEmail: "a@b.com", Subject: "", Body: "hi"})

	if m.ID == "" {
		t.Error("expected synthesized id")
	}
	if m.Timestamp.IsZero() {
		t.Error("expected synthesized timestamp")
	}
	if m.Subject != DefaultSubject {
		t.Errorf("expected blank subject replaced with %q, got %q", DefaultSubject, m.Subject)
	}
	if m.Priority != PriorityMedium {
		t.Errorf("expected medium priority, got %s", m.Priority)
	}
	if m.IsRead || m.IsArchived {
		t.Error("expected new message unread and unarchived")
	}

	if store.Messages()[0].ID != m.ID {
		t.Error("expected new message prepended")
	}
}

func TestPartitionDisjointAndExhaustive(t *testing.T) {
	store := NewStore()
	m := store.Add(Submission{SenderName: "A", SenderEmail: "a@b.com", Body: "hi"})

	active, archived := store.Partition()
	if len(active)+len(archived) != len(store.Messages()) {
		t.Error("partitions do not exhaust the message set")
	}
	for _, a := range active {
		for _, b := range archived {
			if a.ID == b.ID {
				t.Errorf("message %s in both partitions", a.ID)
			}
		}
	}

	if !store.Archive(m.ID) {
		t.Fatal("Archive miss")
	}
	active, archived = store.Partition()
	for _, a := range active {
		if a.ID == m.ID {
			t.Error("archived message still in active partition")
		}
	}
	found := false
	for _, a := range archived {
		if a.ID == m.ID {
			found = true
		}
	}
	if !found {
		t.Error("archived message missing from archived partition")
	}
}

func TestArchiveIdempotent(t *testing.T) {
	store := NewStore()
	m := store.Add(Submission{SenderName: "A", SenderEmail: "a@b.com", Body: "hi"})

	store.Archive(m.ID)
	before := store.Messages()
	store.Archive(m.ID)
	if !reflect.DeepEqual(store.Messages(), before) {
		t.Error("archiving an already-archived message changed state")
	}
}

func TestUnreadCountInvariant(t *testing.T) {
	store := NewStore()

	check := func(context string) {
		t.Helper()
		want := 0
		for _, m := range store.Messages() {
			if !m.IsRead && !m.IsArchived {
				want++
			}
		}
		if got := store.UnreadCount(); got != want {
			t.Errorf("%s: UnreadCount = %d, want %d", context, got, want)
		}
	}

	check("seed")
	m := store.Add(Submission{SenderName: "A", SenderEmail: "a@b.com", Body: "hi"})
	check("after add")
	store.MarkRead(m.ID)
	check("after read")
	store.Archive(m.ID)
	check("after archive")
	store.Unarchive(m.ID)
	check("after unarchive")
	store.Delete(m.ID)
	check("after delete")
}

func TestDeleteMissIsNoOp(t *testing.T) {
	store := NewStore()
	before := store.Messages()

	if store.Delete("ghost") {
		t.Error("expected miss for unknown id")
	}
	if !reflect.DeepEqual(store.Messages(), before) {
		t.Error("collection changed on a missed delete")
	}
}

func TestSetPriority(t *testing.T) {
	store := NewStore()
	m := store.Add(Submission{SenderName: "A", SenderEmail: "a@b.com", Body: "hi"})

	if !store.SetPriority(m.ID, PriorityHigh) {
		t.Fatal("SetPriority miss")
	}
	got, _ := store.Get(m.ID)
	if got.Priority != PriorityHigh {
		t.Errorf("expected high, got %s", got.Priority)
	}
}

// HTTP handler tests

func newTestRouter(t *testing.T) (*Store, chi.Router) {
	t.Helper()
	store := NewStore()
	r := chi.NewRouter()
	RegisterRoutes(r, store)
	return store, r
}

func TestRoute_ContactForm(t *testing.T) {
	_, r := newTestRouter(t)

	body := `{"sender_name":"A","sender_email":"a@b.com","subject":"","body":"hi"}`
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var m Message
	json.Unmarshal(w.Body.Bytes(), &m)
	if m.Subject != DefaultSubject {
		t.Errorf("expected default subject, got %q", m.Subject)
	}
	if m.Priority != PriorityMedium {
		t.Errorf("expected medium priority, got %s", m.Priority)
	}
}

func TestRoute_ContactFormValidation(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(`{"subject":"hi"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRoute_ListByPartition(t *testing.T) {
	store, r := newTestRouter(t)
	m := store.Add(Submission{SenderName: "A", SenderEmail: "a@b.com", Body: "hi"})
	store.Archive(m.ID)

	req := httptest.NewRequest("GET", "/api/messages/?filter=archived", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var archived []Message
	json.Unmarshal(w.Body.Bytes(), &archived)
	found := false
	for _, a := range archived {
		if a.ID == m.ID {
			found = true
		}
		if !a.IsArchived {
			t.Errorf("active message %s in archived listing", a.ID)
		}
	}
	if !found {
		t.Error("archived message missing from archived listing")
	}
}

func TestRoute_BadPriorityRejected(t *testing.T) {
	store, r := newTestRouter(t)
	m := store.Add(Submission{SenderName: "A", SenderEmail: "a@b.com", Body: "hi"})

	req := httptest.NewRequest("PUT", "/api/messages/"+m.ID+"/priority", strings.NewReader(`{"priority":"urgent"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown priority, got %d", w.Code)
	}
}

func TestRoute_Stats(t *testing.T) {
	store, r := newTestRouter(t)

	req := httptest.NewRequest("GET", "/api/messages/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var stats map[string]int
	json.Unmarshal(w.Body.Bytes(), &stats)
	if stats["unread_count"] != store.UnreadCount() {
		t.Errorf("stats unread_count = %d, want %d", stats["unread_count"], store.UnreadCount())
	}
}

func TestRoute_MutationMissIs404(t *testing.T) {
	_, r := newTestRouter(t)

	for _, path := range []string{
		"/api/messages/ghost/read",
		"/api/messages/ghost/archive",
		"/api/messages/ghost/unarchive",
	} {
		req := httptest.NewRequest("POST", path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, w.Code)
		}
	}
}
