package model

// GroupsToSettings flattens all settings across the given groups,
// preserving group order and setting order within each group.
func GroupsToSettings(groups []*Group) []*Setting {
	var settings []*Setting
	for _, group := range groups {
		settings = append(settings, group.Settings()...)
	}
	return settings
}

// FlattenCategories returns the categories and all their descendants in
// pre-order. The input forest must be acyclic.
func FlattenCategories(categories []*Category) []*Category {
	var out []*Category
	var walk func(cats []*Category)
	walk = func(cats []*Category) {
		for _, c := range cats {
			out = append(out, c)
			if c.Children() != nil {
				walk(c.Children())
			}
		}
	}
	walk(categories)
	return out
}
