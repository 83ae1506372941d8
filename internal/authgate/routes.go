package authgate

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the demo login API. onLogout, if non-nil, runs
// after a logout so the caller can leave the admin view as well.
func RegisterRoutes(r chi.Router, gate *Gate, onLogout func()) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", handleLogin(gate))
		r.Get("/status", handleStatus(gate))
		r.Post("/logout", handleLogout(gate, onLogout))
	})
}

type loginRequest struct {
	AccessKey string `json:"access_key"`
}

func handleLogin(gate *Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		// The gate page posts a regular form; API clients send JSON.
		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err != nil {
				http.Error(w, `{"error":"invalid form body"}`, http.StatusBadRequest)
				return
			}
			req.AccessKey = r.PostFormValue("access_key")
		} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		if err := gate.Submit(req.AccessKey); err != nil {
			if errors.Is(err, ErrScanInProgress) {
				http.Error(w, `{"error":"scan already in progress"}`, http.StatusConflict)
				return
			}
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(gate.State())
	}
}

func handleStatus(gate *Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(gate.State())
	}
}

func handleLogout(gate *Gate, onLogout func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gate.Logout()
		if onLogout != nil {
			onLogout()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(gate.State())
	}
}
