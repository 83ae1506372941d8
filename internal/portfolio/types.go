package portfolio

// Project represents one entry in the project gallery.
type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	FullDescription string   `json:"full_description"`
	Challenges      []string `json:"challenges"`
	Solution        string   `json:"solution"`
	Tags            []string `json:"tags"`
	Image           string   `json:"image"`
	LiveLink        string   `json:"live_link"`
	SourceLink      string   `json:"source_link"`
}

// SkillCategory groups skills in the skill matrix.
type SkillCategory string

const (
	CategoryFrontend SkillCategory = "frontend"
	CategoryLanguage SkillCategory = "language"
	CategoryTool     SkillCategory = "tool"
)

// Skill is one entry in the skill matrix. Name is the unique key;
// Level is a 0-100 proficiency percentage.
type Skill struct {
	Name     string        `json:"name"`
	Level    int           `json:"level"`
	Category SkillCategory `json:"category"`
}

// TagAll is the sentinel tag that matches every project.
const TagAll = "All"
