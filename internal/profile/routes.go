package profile

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the profile, bio, instruction and social-link API.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/profile", func(r chi.Router) {
		r.Get("/", handleGet(store))
		r.Put("/", handleUpdateOwner(store))
		r.Put("/bio", handleUpdateBio(store))
		r.Put("/instruction", handleUpdateInstruction(store))
		r.Put("/links/{platform}", handleUpdateLink(store))
	})
}

// view is the aggregate read shape for the admin settings panel.
type view struct {
	Owner       Owner        `json:"owner"`
	Bio         string       `json:"bio"`
	Instruction string       `json:"instruction"`
	Links       []SocialLink `json:"links"`
}

func handleGet(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(view{
			Owner:       store.Owner(),
			Bio:         store.Bio(),
			Instruction: store.Instruction(),
			Links:       store.Links(),
		})
	}
}

func handleUpdateOwner(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var o Owner
		if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if o.User == "" {
			http.Error(w, `{"error":"user is required"}`, http.StatusBadRequest)
			return
		}

		store.UpdateOwner(o)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(o)
	}
}

type textRequest struct {
	Text string `json:"text"`
}

func handleUpdateBio(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req textRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		store.UpdateBio(req.Text)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "updated"})
	}
}

func handleUpdateInstruction(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req textRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		store.UpdateInstruction(req.Text)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "updated"})
	}
}

type linkRequest struct {
	URL string `json:"url"`
}

func handleUpdateLink(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req linkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.URL == "" {
			http.Error(w, `{"error":"url is required"}`, http.StatusBadRequest)
			return
		}

		if !store.UpdateLink(chi.URLParam(r, "platform"), req.URL) {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "updated"})
	}
}
