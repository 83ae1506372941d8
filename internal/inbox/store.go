package inbox

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds contact messages in process memory. State is volatile
// and resets to seed data on restart.
type Store struct {
	mu       sync.Mutex
	messages []Message
	now      func() time.Time
}

// NewStore creates a store populated with seed messages.
func NewStore() *Store {
	s := &Store{now: time.Now}
	s.messages = seedMessages(s.now())
	return s
}

// Add creates a message from a contact-form submission and prepends it.
// It synthesizes the id and timestamp; a blank subject becomes the
// default placeholder, and every submission starts unread, unarchived,
// and at medium priority.
func (s *Store) Add(sub Submission) Message {
	m := Message{
		ID:          uuid.New().String(),
		SenderName:  sub.SenderName,
		SenderEmail: sub.SenderEmail,
		Subject:     sub.Subject,
		Body:        sub.Body,
		Timestamp:   s.now().UTC(),
		Priority:    PriorityMedium,
	}
	if m.Subject == "" {
		m.Subject = DefaultSubject
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append([]Message{m}, s.messages...)
	return m
}

// Messages returns a copy of every message, newest first.
func (s *Store) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Get returns the message with the given id.
func (s *Store) Get(id string) (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.messages {
		if m.ID == id {
			return m, true
		}
	}
	return Message{}, false
}

func (s *Store) mutate(id string, f func(*Message)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ID == id {
			f(&s.messages[i])
			return true
		}
	}
	return false
}

// MarkRead flags the message as read. Reports whether it exists.
func (s *Store) MarkRead(id string) bool {
	return s.mutate(id, func(m *Message) { m.IsRead = true })
}

// Archive moves the message to the archived partition. Archiving an
// already-archived message leaves state unchanged.
func (s *Store) Archive(id string) bool {
	return s.mutate(id, func(m *Message) { m.IsArchived = true })
}

// Unarchive moves the message back to the active partition.
func (s *Store) Unarchive(id string) bool {
	return s.mutate(id, func(m *Message) { m.IsArchived = false })
}

// SetPriority changes the message priority.
func (s *Store) SetPriority(id string, p Priority) bool {
	return s.mutate(id, func(m *Message) { m.Priority = p })
}

// Delete permanently removes the message. Reports whether it existed;
// the collection is untouched on a miss.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return true
		}
	}
	return false
}

// UnreadCount counts messages that are neither read nor archived.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, m := range s.messages {
		if !m.IsRead && !m.IsArchived {
			count++
		}
	}
	return count
}

// Partition splits the messages into the active and archived sets.
// The two are disjoint and together exhaust the message set.
func (s *Store) Partition() (active, archived []Message) {
	for _, m := range s.Messages() {
		if m.IsArchived {
			archived = append(archived, m)
		} else {
			active = append(active, m)
		}
	}
	return active, archived
}
