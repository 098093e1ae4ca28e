package model

// Group is an ordered collection of related settings. It participates in
// breadcrumb propagation and search marking but its editing semantics live
// in the view layer.
type Group struct {
	descriptionKey string
	description    *ObservableString
	breadcrumb     *ObservableString
	settings       []*Setting
	marked         bool
}

// NewGroup creates a group from settings. An empty description is valid
// and produces an untitled group.
func NewGroup(description string, settings ...*Setting) *Group {
	return &Group{
		descriptionKey: description,
		description:    NewObservableString(description),
		breadcrumb:     NewObservableString(""),
		settings:       settings,
	}
}

// GroupOf wraps settings into a single untitled group, for categories
// whose settings need no individual grouping.
func GroupOf(settings ...*Setting) *Group {
	return NewGroup("", settings...)
}

// DescriptionKey returns the untranslated label key.
func (g *Group) DescriptionKey() string {
	return g.descriptionKey
}

// Description returns the current (possibly translated) label.
func (g *Group) Description() string {
	return g.description.Get()
}

// Settings returns the group's settings in insertion order.
func (g *Group) Settings() []*Setting {
	return g.settings
}

// Breadcrumb returns the category-path marker assigned by breadcrumb
// stamping, or "" before the tree has been stamped.
func (g *Group) Breadcrumb() string {
	return g.breadcrumb.Get()
}

// BreadcrumbProperty exposes the observable breadcrumb for UI bindings.
func (g *Group) BreadcrumbProperty() *ObservableString {
	return g.breadcrumb
}

// AddToBreadcrumb assigns the owning category's breadcrumb to this group.
// The breadcrumb is a category-path marker used for search-result display,
// not a full settings path, so the group's own description is not appended.
func (g *Group) AddToBreadcrumb(categoryBreadcrumb string) {
	g.breadcrumb.Set(categoryBreadcrumb)
}

// Translate applies the translation service to the group description and
// all contained settings. A nil service resets everything to raw keys.
func (g *Group) Translate(service TranslationService) {
	if service == nil {
		g.description.Set(g.descriptionKey)
	} else if g.descriptionKey != "" {
		g.description.Set(service.Translate(g.descriptionKey))
	}
	for _, s := range g.settings {
		s.Translate(service)
	}
}

// Mark flags the group as a search match.
func (g *Group) Mark() {
	g.marked = true
}

// Unmark clears the search-match flag.
func (g *Group) Unmark() {
	g.marked = false
}

// IsMarked reports whether the group is currently a search match.
func (g *Group) IsMarked() bool {
	return g.marked
}
