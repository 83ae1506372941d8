package profile

import "sync"

const defaultBio = `Usman is a world-class Senior Frontend Engineer specialized in building high-performance, futuristic user interfaces.
With deep expertise in React, TypeScript, and modern styling frameworks like Tailwind CSS, he bridges the gap between complex
backend data and elegant human interaction. He has a passion for AI integration and creative coding.`

const defaultInstruction = `You are the site owner's AI proxy on his portfolio site. Answer questions
about his skills, projects, and experience concisely and in a friendly,
slightly futuristic tone. Encourage visitors to use the contact form for
business enquiries.`

// Store holds the singleton profile state: owner identity, bio text,
// the assistant system instruction, and the social link map. All
// writes are unconditional overwrites.
type Store struct {
	mu          sync.Mutex
	owner       Owner
	bio         string
	instruction string
	links       []SocialLink
}

// NewStore creates a store seeded for the given owner.
func NewStore(owner Owner) *Store {
	return &Store{
		owner:       owner,
		bio:         defaultBio,
		instruction: defaultInstruction,
		links: []SocialLink{
			{Platform: "github", URL: "https://github.com/usmank-dev"},
			{Platform: "linkedin", URL: "https://www.linkedin.com/in/usmank-dev"},
			{Platform: "twitter", URL: "https://twitter.com/usmank_dev"},
		},
	}
}

// Owner returns the current owner profile.
func (s *Store) Owner() Owner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owner
}

// UpdateOwner overwrites the owner profile.
func (s *Store) UpdateOwner(o Owner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owner = o
}

// Bio returns the bio text.
func (s *Store) Bio() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bio
}

// UpdateBio overwrites the bio text.
func (s *Store) UpdateBio(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bio = text
}

// Instruction returns the assistant system instruction. The chat
// bridge reads this at call time, so admin edits apply to the next
// message immediately.
func (s *Store) Instruction() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.instruction
}

// UpdateInstruction overwrites the assistant system instruction.
func (s *Store) UpdateInstruction(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instruction = text
}

// Links returns a copy of the social link list.
func (s *Store) Links() []SocialLink {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SocialLink, len(s.links))
	copy(out, s.links)
	return out
}

// UpdateLink sets the URL for the given platform. Reports whether the
// platform is known; unknown platforms are not created.
func (s *Store) UpdateLink(platform, url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.links {
		if s.links[i].Platform == platform {
			s.links[i].URL = url
			return true
		}
	}
	return false
}
