package portfolio

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds the project and skill collections in process memory.
// All state is volatile: a restart returns the store to seed data.
type Store struct {
	mu       sync.Mutex
	projects []Project
	skills   []Skill
}

// NewStore creates a store populated with seed content.
func NewStore() *Store {
	return &Store{
		projects: seedProjects(),
		skills:   seedSkills(),
	}
}

// Projects returns a copy of the project collection in insertion order.
func (s *Store) Projects() []Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// GetProject returns the project with the given id.
func (s *Store) GetProject(id string) (Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// AddProject prepends a project to the collection. An empty id is
// replaced with a generated one; ids are otherwise caller-supplied and
// not checked for uniqueness.
func (s *Store) AddProject(p Project) Project {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append([]Project{p}, s.projects...)
	return p
}

// UpdateProject replaces the entry whose id matches. Reports whether a
// matching entry existed; the collection is untouched on a miss.
func (s *Store) UpdateProject(p Project) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			s.projects[i] = p
			return true
		}
	}
	return false
}

// DeleteProject removes the entry with the given id. Reports whether it
// existed.
func (s *Store) DeleteProject(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceProjects swaps the entire project collection.
func (s *Store) ReplaceProjects(projects []Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = make([]Project, len(projects))
	copy(s.projects, projects)
}

// Skills returns a copy of the skill collection.
func (s *Store) Skills() []Skill {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Skill, len(s.skills))
	copy(out, s.skills)
	return out
}

// UpdateSkillLevel sets the level for the named skill, clamped to
// [0,100]. Reports whether the skill exists.
func (s *Store) UpdateSkillLevel(name string, level int) bool {
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.skills {
		if s.skills[i].Name == name {
			s.skills[i].Level = level
			return true
		}
	}
	return false
}

// ReplaceSkills swaps the entire skill collection.
func (s *Store) ReplaceSkills(skills []Skill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skills = make([]Skill, len(skills))
	copy(s.skills, skills)
}
