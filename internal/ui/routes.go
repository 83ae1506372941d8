package ui

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the UI mode flag API.
func RegisterRoutes(r chi.Router, state *State) {
	r.Route("/api/ui", func(r chi.Router) {
		r.Get("/", handleSnapshot(state))
		r.Post("/admin/toggle", handleToggleAdmin(state))
		r.Post("/chat/toggle", handleToggleChat(state))
		r.Post("/theme/toggle", handleToggleTheme(state))
		r.Put("/tab", handleSetTab(state))
		r.Put("/filter", handleSetFilter(state))
		r.Put("/selection", handleSelectProject(state))
	})
}

func writeSnapshot(w http.ResponseWriter, state *State) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state.Snapshot())
}

func handleSnapshot(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSnapshot(w, state)
	}
}

func handleToggleAdmin(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state.ToggleAdmin()
		writeSnapshot(w, state)
	}
}

func handleToggleChat(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state.ToggleChat()
		writeSnapshot(w, state)
	}
}

func handleToggleTheme(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state.ToggleTheme()
		writeSnapshot(w, state)
	}
}

type valueRequest struct {
	Value string `json:"value"`
}

func handleSetTab(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req valueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		tab, err := ParseAdminTab(req.Value)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		state.SetActiveTab(tab)
		writeSnapshot(w, state)
	}
}

func handleSetFilter(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req valueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		filter, err := ParseMessageFilter(req.Value)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		state.SetMessageFilter(filter)
		writeSnapshot(w, state)
	}
}

func handleSelectProject(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req valueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		state.SelectProject(req.Value)
		writeSnapshot(w, state)
	}
}
