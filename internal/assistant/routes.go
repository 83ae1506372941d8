package assistant

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the chat widget API.
func RegisterRoutes(r chi.Router, bridge *Bridge) {
	r.Route("/api/assistant", func(r chi.Router) {
		r.Get("/greeting", handleGreeting(bridge))
		r.Post("/chat", handleChat(bridge))
	})
}

func handleGreeting(bridge *Bridge) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"text": bridge.Greeting()})
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Text string `json:"text"`
}

func handleChat(bridge *Bridge) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Message == "" {
			http.Error(w, `{"error":"message is required"}`, http.StatusBadRequest)
			return
		}

		text, err := bridge.Reply(r.Context(), req.Message)
		if err != nil {
			if errors.Is(err, ErrBusy) {
				http.Error(w, `{"error":"a reply is already pending"}`, http.StatusTooManyRequests)
				return
			}
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse{Text: text})
	}
}
