package inbox

import "time"

// seedMessages gives the admin inbox something to show on a fresh boot.
func seedMessages(now time.Time) []Message {
	return []Message{
		{
			ID:          "msg-0001",
			SenderName:  "Ava Chen",
			SenderEmail: "ava.chen@protomail.dev",
			Subject:     "Freelance engagement: trading dashboard",
			Body:        "Saw the Quantum Dashboard case study. We have a similar real-time visualization problem and would love to talk scope.",
			Timestamp:   now.Add(-2 * time.Hour).UTC(),
			Priority:    PriorityHigh,
		},
		{
			ID:          "msg-0002",
			SenderName:  "Marcus Webb",
			SenderEmail: "m.webb@studio-neon.io",
			Subject:     "Speaking slot at FrontendConf",
			Body:        "Would you be interested in a 30-minute talk on AI-integrated portfolio sites?",
			Timestamp:   now.Add(-26 * time.Hour).UTC(),
			IsRead:      true,
			Priority:    PriorityMedium,
		},
		{
			ID:          "msg-0003",
			SenderName:  "Recruiter Bot",
			SenderEmail: "noreply@talentsink.example",
			Subject:     "Exciting opportunity!!!",
			Body:        "We have an exciting opportunity that matches your profile.",
			Timestamp:   now.Add(-72 * time.Hour).UTC(),
			IsRead:      true,
			IsArchived:  true,
			Priority:    PriorityLow,
		},
	}
}
