// Package ui tracks the client-facing view flags the admin panel and
// public page share: which view is showing, the theme, the inbox
// filter, the selected project. It is display state, not data.
package ui

import (
	"fmt"
	"sync"
)

// Theme is the site color scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// AdminTab is the active panel inside the admin dashboard.
type AdminTab string

const (
	TabProjects AdminTab = "projects"
	TabSkills   AdminTab = "skills"
	TabInbox    AdminTab = "inbox"
	TabSettings AdminTab = "settings"
)

// MessageFilter selects which inbox partition the admin is viewing.
type MessageFilter string

const (
	FilterActive   MessageFilter = "active"
	FilterArchived MessageFilter = "archived"
)

// ParseAdminTab validates a tab name.
func ParseAdminTab(s string) (AdminTab, error) {
	switch AdminTab(s) {
	case TabProjects, TabSkills, TabInbox, TabSettings:
		return AdminTab(s), nil
	}
	return "", fmt.Errorf("unknown admin tab %q", s)
}

// ParseMessageFilter validates an inbox filter name.
func ParseMessageFilter(s string) (MessageFilter, error) {
	switch MessageFilter(s) {
	case FilterActive, FilterArchived:
		return MessageFilter(s), nil
	}
	return "", fmt.Errorf("unknown message filter %q", s)
}

// Snapshot is the full UI mode state.
type Snapshot struct {
	AdminView         bool          `json:"admin_view"`
	ChatOpen          bool          `json:"chat_open"`
	Theme             Theme         `json:"theme"`
	ActiveTab         AdminTab      `json:"active_tab"`
	MessageFilter     MessageFilter `json:"message_filter"`
	SelectedProjectID string        `json:"selected_project_id,omitempty"`
}

// State holds the UI flags behind toggle/set mutators.
type State struct {
	mu   sync.Mutex
	snap Snapshot
}

// NewState starts on the public page with the dark theme, mirroring a
// fresh page load.
func NewState() *State {
	return &State{snap: Snapshot{
		Theme:         ThemeDark,
		ActiveTab:     TabProjects,
		MessageFilter: FilterActive,
	}}
}

// Snapshot returns the current flags.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// ToggleAdmin flips between the public page and the admin view.
func (s *State) ToggleAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.AdminView = !s.snap.AdminView
	return s.snap.AdminView
}

// SetAdminView sets the admin view flag directly.
func (s *State) SetAdminView(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.AdminView = on
}

// ToggleChat flips the chat widget open or closed.
func (s *State) ToggleChat() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.ChatOpen = !s.snap.ChatOpen
	return s.snap.ChatOpen
}

// ToggleTheme flips between dark and light.
func (s *State) ToggleTheme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.Theme == ThemeDark {
		s.snap.Theme = ThemeLight
	} else {
		s.snap.Theme = ThemeDark
	}
	return s.snap.Theme
}

// SetActiveTab switches the admin dashboard panel.
func (s *State) SetActiveTab(t AdminTab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.ActiveTab = t
}

// SetMessageFilter switches the inbox partition view.
func (s *State) SetMessageFilter(f MessageFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.MessageFilter = f
}

// SelectProject records the project open in the detail modal; an empty
// id clears the selection.
func (s *State) SelectProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.SelectedProjectID = id
}
