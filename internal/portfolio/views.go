package portfolio

import (
	"sort"
	"strings"
)

// TagUniverse returns the union of all tags across the given projects,
// deduplicated and sorted ascending, with the "All" sentinel first.
func TagUniverse(projects []Project) []string {
	seen := map[string]bool{}
	var tags []string
	for _, p := range projects {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return append([]string{TagAll}, tags...)
}

// Filter returns the projects passing both the tag and search
// predicates, order-preserved. A project passes when the selected tag
// is "All" or appears in its tag list, and when the query is a
// case-insensitive substring of its title or of any tag. An empty
// query matches everything.
func Filter(projects []Project, tag, query string) []Project {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []Project
	for _, p := range projects {
		if !matchesTag(p, tag) || !matchesQuery(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesTag(p Project, tag string) bool {
	if tag == "" || tag == TagAll {
		return true
	}
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func matchesQuery(p Project, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

// maxRelated caps how many related projects a detail view shows.
const maxRelated = 3

// Related ranks every other project by the number of tags it shares
// with the focal project, keeps only those sharing at least one, and
// returns the top three. Ties keep the original insertion order.
func Related(projects []Project, focal Project) []Project {
	type scored struct {
		project Project
		shared  int
	}
	var candidates []scored
	focalTags := map[string]bool{}
	for _, t := range focal.Tags {
		focalTags[t] = true
	}
	for _, p := range projects {
		if p.ID == focal.ID {
			continue
		}
		shared := 0
		for _, t := range p.Tags {
			if focalTags[t] {
				shared++
			}
		}
		if shared > 0 {
			candidates = append(candidates, scored{p, shared})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].shared > candidates[j].shared
	})
	if len(candidates) > maxRelated {
		candidates = candidates[:maxRelated]
	}
	out := make([]Project, len(candidates))
	for i, c := range candidates {
		out[i] = c.project
	}
	return out
}
