package portfolio

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the project gallery and skill matrix API routes.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/projects", func(r chi.Router) {
		r.Get("/", handleListProjects(store))
		r.Post("/", handleCreateProject(store))
		r.Get("/tags", handleTags(store))
		r.Get("/{id}", handleGetProject(store))
		r.Put("/{id}", handleUpdateProject(store))
		r.Delete("/{id}", handleDeleteProject(store))
		r.Get("/{id}/related", handleRelated(store))
	})

	r.Route("/api/skills", func(r chi.Router) {
		r.Get("/", handleListSkills(store))
		r.Put("/{name}", handleUpdateSkillLevel(store))
	})
}

func handleListProjects(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag := r.URL.Query().Get("tag")
		query := r.URL.Query().Get("q")

		projects := Filter(store.Projects(), tag, query)
		if projects == nil {
			projects = []Project{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(projects)
	}
}

func handleCreateProject(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p Project
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if p.Title == "" {
			http.Error(w, `{"error":"title is required"}`, http.StatusBadRequest)
			return
		}

		created := store.AddProject(p)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func handleGetProject(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := store.GetProject(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(p)
	}
}

func handleUpdateProject(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p Project
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		p.ID = chi.URLParam(r, "id")

		if !store.UpdateProject(p) {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(p)
	}
}

func handleDeleteProject(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !store.DeleteProject(chi.URLParam(r, "id")) {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleRelated(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		focal, ok := store.GetProject(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}

		related := Related(store.Projects(), focal)
		if related == nil {
			related = []Project{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(related)
	}
}

func handleTags(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TagUniverse(store.Projects()))
	}
}

func handleListSkills(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(store.Skills())
	}
}

type skillLevelRequest struct {
	Level json.Number `json:"level"`
}

func handleUpdateSkillLevel(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		var req skillLevelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		level, err := strconv.Atoi(req.Level.String())
		if err != nil {
			http.Error(w, `{"error":"level must be an integer"}`, http.StatusBadRequest)
			return
		}

		if !store.UpdateSkillLevel(name, level) {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "updated"})
	}
}
