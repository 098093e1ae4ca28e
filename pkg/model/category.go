package model

// BreadcrumbDelimiter joins category descriptions into a breadcrumb path.
// Descriptions containing the delimiter literal produce ambiguous
// breadcrumbs; this is an accepted limitation and is not guarded.
const BreadcrumbDelimiter = ">"

// TranslationService resolves label keys to display strings. Absence
// (a nil service) is a valid state meaning "no translation, show raw keys."
type TranslationService interface {
	Translate(key string) string
}

// Category is a node in the preference hierarchy: a translatable label,
// optional groups of settings, optional sub-categories, a breadcrumb
// marking its position, an optional icon, and an auto-expand flag.
//
// A Category is structurally immutable after construction except for
// breadcrumb assignment, description retranslation, and the build-time
// SubCategories/Expand fluent calls. It must not be mutated after the tree
// has been handed to the tree builder.
type Category struct {
	descriptionKey string
	description    *ObservableString
	groups         []*Group
	children       []*Category
	breadcrumb     *ObservableString
	itemIcon       string
	expand         bool
}

// CategoryOption configures a Category at construction time.
type CategoryOption func(*Category)

// WithGroups attaches groups of settings to the category.
func WithGroups(groups ...*Group) CategoryOption {
	return func(c *Category) {
		c.groups = groups
	}
}

// WithSettings attaches settings directly, wrapped into a single untitled
// group, for categories whose settings need no individual grouping.
func WithSettings(settings ...*Setting) CategoryOption {
	return func(c *Category) {
		c.groups = []*Group{GroupOf(settings...)}
	}
}

// WithIcon sets the icon shown next to the category name in the tree.
func WithIcon(icon string) CategoryOption {
	return func(c *Category) {
		c.itemIcon = icon
	}
}

// NewCategory creates a category. All option combinations funnel through
// here: the description key is set, an untranslated translate pass runs,
// and the breadcrumb is seeded to the raw description.
func NewCategory(description string, opts ...CategoryOption) *Category {
	c := &Category{
		descriptionKey: description,
		description:    NewObservableString(""),
		breadcrumb:     NewObservableString(""),
	}
	c.Translate(nil)
	c.SetBreadcrumb(description)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SubCategories attaches child categories, building up the hierarchy.
// Returns the receiver for fluent chaining. Calling this after the tree
// has been registered with a tree builder is undefined behavior.
func (c *Category) SubCategories(children ...*Category) *Category {
	c.children = children
	return c
}

// Expand marks the category for auto-expansion in the tree view.
// Returns the receiver for fluent chaining.
func (c *Category) Expand() *Category {
	c.expand = true
	return c
}

// CreateBreadcrumbs stamps breadcrumbs onto the given categories and,
// recursively, their entire subtrees, using the receiver's breadcrumb as
// the parent prefix. Each stamped category's groups receive the category's
// own breadcrumb. Callers invoking this on a synthetic root must seed that
// root's breadcrumb to the empty string so top-level categories get no
// leading delimiter; StampBreadcrumbs does exactly that.
//
// The category graph must be acyclic. A cycle causes unbounded recursion;
// no runtime check is performed.
func (c *Category) CreateBreadcrumbs(categories []*Category) {
	parent := c.Breadcrumb()
	for _, category := range categories {
		if parent == "" {
			category.SetBreadcrumb(category.Description())
		} else {
			category.SetBreadcrumb(parent + BreadcrumbDelimiter + category.Description())
		}
		for _, group := range category.groups {
			group.AddToBreadcrumb(category.Breadcrumb())
		}
		if category.children != nil {
			category.CreateBreadcrumbs(category.children)
		}
	}
}

// StampBreadcrumbs stamps the whole forest of top-level categories through
// an empty-seeded synthetic root, so top-level breadcrumbs equal the bare
// category description.
func StampBreadcrumbs(categories []*Category) {
	root := &Category{breadcrumb: NewObservableString("")}
	root.CreateBreadcrumbs(categories)
}

// UnmarkSettings clears the search-match flag on every setting across all
// of this category's groups. No-op if the category has no groups.
func (c *Category) UnmarkSettings() {
	if c.groups == nil {
		return
	}
	for _, setting := range GroupsToSettings(c.groups) {
		setting.Unmark()
	}
}

// UnmarkGroups clears the search-match flag on each group.
// No-op if the category has no groups.
func (c *Category) UnmarkGroups() {
	for _, group := range c.groups {
		group.Unmark()
	}
}

// UnmarkAll clears the search-match flags on all groups and settings.
// Safe to call repeatedly; unmarking an unmarked category is a no-op.
func (c *Category) UnmarkAll() {
	c.UnmarkGroups()
	c.UnmarkSettings()
}

// Translate applies the translation service to the description. A nil
// service resets the description to the raw key. Empty keys are skipped
// silently; this is not an error.
func (c *Category) Translate(service TranslationService) {
	if service == nil {
		c.description.Set(c.descriptionKey)
		return
	}
	if c.descriptionKey != "" {
		c.description.Set(service.Translate(c.descriptionKey))
	}
}

// UpdateGroupDescriptions forwards a retranslate request to every attached
// group. No-op if the category has no groups.
func (c *Category) UpdateGroupDescriptions(service TranslationService) {
	for _, group := range c.groups {
		group.Translate(service)
	}
}

// DescriptionKey returns the untranslated label key.
func (c *Category) DescriptionKey() string {
	return c.descriptionKey
}

// Description returns the current (possibly translated) label.
func (c *Category) Description() string {
	return c.description.Get()
}

// DescriptionProperty exposes the observable label for UI bindings.
func (c *Category) DescriptionProperty() *ObservableString {
	return c.description
}

// Groups returns the category's groups, or nil for content-free
// categories. Nil is distinct from an empty slice.
func (c *Category) Groups() []*Group {
	return c.groups
}

// Children returns the sub-categories, or nil for leaf categories.
func (c *Category) Children() []*Category {
	return c.children
}

// Breadcrumb returns the delimiter-joined path assigned by stamping.
func (c *Category) Breadcrumb() string {
	return c.breadcrumb.Get()
}

// BreadcrumbProperty exposes the observable breadcrumb for UI bindings.
func (c *Category) BreadcrumbProperty() *ObservableString {
	return c.breadcrumb
}

// SetBreadcrumb assigns the breadcrumb. Used by breadcrumb stamping.
func (c *Category) SetBreadcrumb(breadcrumb string) {
	c.breadcrumb.Set(breadcrumb)
}

// ItemIcon returns the icon shown next to the category name, or "".
func (c *Category) ItemIcon() string {
	return c.itemIcon
}

// IsExpand reports whether the tree view should auto-expand this node.
func (c *Category) IsExpand() bool {
	return c.expand
}

func (c *Category) String() string {
	return c.Description()
}
