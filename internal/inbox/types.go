package inbox

import "time"

// Priority ranks how urgently a message needs attention.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriority reports whether p is one of the known priorities.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// DefaultSubject replaces a blank subject at creation time.
const DefaultSubject = "(no subject)"

// Message is one contact-form submission. Archived and active are
// disjoint partitions of the message set: a message is in exactly one.
type Message struct {
	ID          string    `json:"id"`
	SenderName  string    `json:"sender_name"`
	SenderEmail string    `json:"sender_email"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	Timestamp   time.Time `json:"timestamp"`
	IsRead      bool      `json:"is_read"`
	IsArchived  bool      `json:"is_archived"`
	Priority    Priority  `json:"priority"`
}

// Submission is the public contact-form payload.
type Submission struct {
	SenderName  string `json:"sender_name"`
	SenderEmail string `json:"sender_email"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
}
