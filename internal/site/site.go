// Package site serves the rendered pages: the public portfolio, the
// admin shell, and the not-found view. The root path and /admin are
// the only real pages; everything else is a 404.
package site

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/usmank-dev/neonfolio/internal/authgate"
	"github.com/usmank-dev/neonfolio/internal/inbox"
	"github.com/usmank-dev/neonfolio/internal/portfolio"
	"github.com/usmank-dev/neonfolio/internal/profile"
	"github.com/usmank-dev/neonfolio/internal/ui"
)

// Site renders the HTML views over the live stores.
type Site struct {
	projects *portfolio.Store
	profiles *profile.Store
	messages *inbox.Store
	gate     *authgate.Gate
	state    *ui.State

	md       goldmark.Markdown
	home     *template.Template
	admin    *template.Template
	login    *template.Template
	notFound *template.Template
}

// New parses the page templates and wires the stores.
func New(projects *portfolio.Store, profiles *profile.Store, messages *inbox.Store, gate *authgate.Gate, state *ui.State) (*Site, error) {
	s := &Site{
		projects: projects,
		profiles: profiles,
		messages: messages,
		gate:     gate,
		state:    state,
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}

	var err error
	if s.home, err = template.New("home").Parse(homeTemplate); err != nil {
		return nil, err
	}
	if s.admin, err = template.New("admin").Parse(adminTemplate); err != nil {
		return nil, err
	}
	if s.login, err = template.New("login").Parse(loginTemplate); err != nil {
		return nil, err
	}
	if s.notFound, err = template.New("notfound").Parse(notFoundTemplate); err != nil {
		return nil, err
	}
	return s, nil
}

// RegisterRoutes mounts the page handlers. The not-found handler
// covers every path chi cannot match.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get("/", s.handleHome)
	r.Get("/admin", s.handleAdmin)
	r.NotFound(s.handleNotFound)
}

// markdown renders md text to sanitizable HTML for the templates.
func (s *Site) markdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(text), &buf); err != nil {
		log.Printf("site: markdown render: %v", err)
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String())
}

type projectView struct {
	portfolio.Project
	FullHTML template.HTML
}

type homeData struct {
	Owner    profile.Owner
	BioHTML  template.HTML
	Projects []projectView
	Tags     []string
	Selected string
	Query    string
	Skills   []portfolio.Skill
	Links    []profile.SocialLink
	Theme    ui.Theme
}

func (s *Site) handleHome(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		tag = portfolio.TagAll
	}
	query := r.URL.Query().Get("q")

	all := s.projects.Projects()
	filtered := portfolio.Filter(all, tag, query)
	views := make([]projectView, len(filtered))
	for i, p := range filtered {
		views[i] = projectView{Project: p, FullHTML: s.markdown(p.FullDescription)}
	}

	data := homeData{
		Owner:    s.profiles.Owner(),
		BioHTML:  s.markdown(s.profiles.Bio()),
		Projects: views,
		Tags:     portfolio.TagUniverse(all),
		Selected: tag,
		Query:    query,
		Skills:   s.projects.Skills(),
		Links:    s.profiles.Links(),
		Theme:    s.state.Snapshot().Theme,
	}
	s.render(w, s.home, data)
}

type adminData struct {
	Owner       profile.Owner
	Projects    []portfolio.Project
	Skills      []portfolio.Skill
	Messages    []inbox.Message
	UnreadCount int
	ActiveTab   ui.AdminTab
	Filter      ui.MessageFilter
}

func (s *Site) handleAdmin(w http.ResponseWriter, r *http.Request) {
	if !s.gate.Authenticated() {
		s.render(w, s.login, s.gate.State())
		return
	}

	snap := s.state.Snapshot()
	active, archived := s.messages.Partition()
	msgs := active
	if snap.MessageFilter == ui.FilterArchived {
		msgs = archived
	}

	data := adminData{
		Owner:       s.profiles.Owner(),
		Projects:    s.projects.Projects(),
		Skills:      s.projects.Skills(),
		Messages:    msgs,
		UnreadCount: s.messages.UnreadCount(),
		ActiveTab:   snap.ActiveTab,
		Filter:      snap.MessageFilter,
	}
	s.render(w, s.admin, data)
}

func (s *Site) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := s.notFound.Execute(w, map[string]string{"Path": r.URL.Path}); err != nil {
		log.Printf("site: rendering not-found: %v", err)
	}
}

func (s *Site) render(w http.ResponseWriter, t *template.Template, data any) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		log.Printf("site: rendering %s: %v", t.Name(), err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
