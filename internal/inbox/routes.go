package inbox

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the public contact form and the admin inbox API.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Post("/api/contact", handleContactForm(store))

	r.Route("/api/messages", func(r chi.Router) {
		r.Get("/", handleList(store))
		r.Get("/stats", handleStats(store))
		r.Post("/{id}/read", handleMarkRead(store))
		r.Post("/{id}/archive", handleArchive(store))
		r.Post("/{id}/unarchive", handleUnarchive(store))
		r.Put("/{id}/priority", handleSetPriority(store))
		r.Delete("/{id}", handleDelete(store))
	})
}

func handleContactForm(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub Submission
		// The public page posts a regular form; API clients send JSON.
		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err != nil {
				http.Error(w, `{"error":"invalid form body"}`, http.StatusBadRequest)
				return
			}
			sub = Submission{
				SenderName:  r.PostFormValue("sender_name"),
				SenderEmail: r.PostFormValue("sender_email"),
				Subject:     r.PostFormValue("subject"),
				Body:        r.PostFormValue("body"),
			}
		} else if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if sub.SenderName == "" || sub.SenderEmail == "" || sub.Body == "" {
			http.Error(w, `{"error":"sender_name, sender_email and body are required"}`, http.StatusBadRequest)
			return
		}

		created := store.Add(sub)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active, archived := store.Partition()
		if active == nil {
			active = []Message{}
		}
		if archived == nil {
			archived = []Message{}
		}

		var out []Message
		switch r.URL.Query().Get("filter") {
		case "archived":
			out = archived
		case "active", "":
			out = active
		default:
			http.Error(w, `{"error":"filter must be active or archived"}`, http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(out)
	}
}

func handleStats(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]int{"unread_count": store.UnreadCount()})
	}
}

func targetedMutation(f func(*Store, string) bool, store *Store, status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !f(store, chi.URLParam(r, "id")) {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": status})
	}
}

func handleMarkRead(store *Store) http.HandlerFunc {
	return targetedMutation((*Store).MarkRead, store, "read")
}

func handleArchive(store *Store) http.HandlerFunc {
	return targetedMutation((*Store).Archive, store, "archived")
}

func handleUnarchive(store *Store) http.HandlerFunc {
	return targetedMutation((*Store).Unarchive, store, "active")
}

type priorityRequest struct {
	Priority Priority `json:"priority"`
}

func handleSetPriority(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req priorityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if !ValidPriority(req.Priority) {
			http.Error(w, `{"error":"priority must be low, medium or high"}`, http.StatusBadRequest)
			return
		}

		if !store.SetPriority(chi.URLParam(r, "id"), req.Priority) {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"priority": string(req.Priority)})
	}
}

func handleDelete(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !store.Delete(chi.URLParam(r, "id")) {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
