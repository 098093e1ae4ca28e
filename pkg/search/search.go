// Package search implements fuzzy search over a preference tree. A search
// pass marks matching groups and settings for visual highlighting, clears
// marks everywhere else, and yields a predicate for the navigation tree.
package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/Dicklesworthstone/prefnav/pkg/model"
)

// target identifies one searchable string in the tree.
type target struct {
	category *model.Category
	group    *model.Group
	setting  *model.Setting
}

// Result reports which categories contain a match for a query.
type Result struct {
	Query   string
	showAll bool
	matched map[*model.Category]bool
}

// Matches reports whether the category (or anything it contains) matched.
func (r Result) Matches(c *model.Category) bool {
	if r.showAll {
		return true
	}
	return r.matched[c]
}

// Predicate adapts the result for the filterable tree.
func (r Result) Predicate() func(*model.Category) bool {
	return r.Matches
}

// MatchCount returns the number of categories containing a match. It is
// meaningless for the empty query, which shows everything.
func (r Result) MatchCount() int {
	return len(r.matched)
}

// Apply runs a fuzzy search over category, group, and setting descriptions
// across the whole forest. Groups and settings that match are marked;
// every category without a match is unmarked in bulk. An empty (or
// whitespace) query clears all marks and shows everything.
func Apply(query string, categories []*model.Category) Result {
	flat := model.FlattenCategories(categories)

	query = strings.TrimSpace(query)
	if query == "" {
		for _, c := range flat {
			c.UnmarkAll()
		}
		return Result{showAll: true}
	}

	var targets []target
	var haystack []string
	for _, c := range flat {
		targets = append(targets, target{category: c})
		haystack = append(haystack, c.Description())
		for _, g := range c.Groups() {
			targets = append(targets, target{category: c, group: g})
			haystack = append(haystack, g.Description())
			for _, s := range g.Settings() {
				targets = append(targets, target{category: c, group: g, setting: s})
				haystack = append(haystack, s.Description())
			}
		}
	}

	matched := make(map[*model.Category]bool)
	markedGroups := make(map[*model.Group]bool)
	markedSettings := make(map[*model.Setting]bool)

	for _, m := range fuzzy.Find(query, haystack) {
		hit := targets[m.Index]
		matched[hit.category] = true
		if hit.setting != nil {
			markedSettings[hit.setting] = true
			markedGroups[hit.group] = true
		} else if hit.group != nil {
			markedGroups[hit.group] = true
		}
	}

	// Apply marks in one deterministic pass: clear first, then set, so a
	// repeated search is idempotent.
	for _, c := range flat {
		c.UnmarkAll()
	}
	for g := range markedGroups {
		g.Mark()
	}
	for s := range markedSettings {
		s.Mark()
	}

	return Result{Query: query, matched: matched}
}
