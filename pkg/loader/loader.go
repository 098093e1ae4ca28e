// Package loader reads a preferences definition file into a category
// tree. The definition is YAML: categories nest recursively, carry groups
// of settings or a flat settings shorthand, and may name an initial
// category for the navigation view.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/prefnav/pkg/model"
)

// Definition is a parsed preferences definition.
type Definition struct {
	Title           string
	InitialCategory string
	Categories      []*model.Category
}

// defFile mirrors the YAML document structure.
type defFile struct {
	Title           string        `yaml:"title"`
	InitialCategory string        `yaml:"initial_category"`
	Categories      []defCategory `yaml:"categories"`
}

type defCategory struct {
	Description string        `yaml:"description"`
	Icon        string        `yaml:"icon"`
	Expand      bool          `yaml:"expand"`
	Groups      []defGroup    `yaml:"groups"`
	Settings    []defSetting  `yaml:"settings"`
	Children    []defCategory `yaml:"children"`
}

type defGroup struct {
	Description string       `yaml:"description"`
	Settings    []defSetting `yaml:"settings"`
}

type defSetting struct {
	Description string   `yaml:"description"`
	Type        string   `yaml:"type"`
	Default     any      `yaml:"default"`
	Options     []string `yaml:"options"`
	Help        string   `yaml:"help"`
}

// Load reads and builds a definition from path. The returned categories
// are fully assembled and breadcrumb-stamped.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	return Parse(data)
}

// Parse builds a definition from YAML bytes.
func Parse(data []byte) (*Definition, error) {
	var file defFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	categories := make([]*model.Category, 0, len(file.Categories))
	for i, dc := range file.Categories {
		c, err := buildCategory(dc)
		if err != nil {
			return nil, fmt.Errorf("category %d: %w", i, err)
		}
		categories = append(categories, c)
	}

	model.StampBreadcrumbs(categories)

	return &Definition{
		Title:           file.Title,
		InitialCategory: file.InitialCategory,
		Categories:      categories,
	}, nil
}

func buildCategory(dc defCategory) (*model.Category, error) {
	if dc.Description == "" {
		return nil, fmt.Errorf("category description cannot be empty")
	}
	if len(dc.Groups) > 0 && len(dc.Settings) > 0 {
		return nil, fmt.Errorf("category %q: use groups or settings, not both", dc.Description)
	}

	var opts []model.CategoryOption
	if dc.Icon != "" {
		opts = append(opts, model.WithIcon(dc.Icon))
	}

	if len(dc.Settings) > 0 {
		settings, err := buildSettings(dc.Settings)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", dc.Description, err)
		}
		opts = append(opts, model.WithSettings(settings...))
	} else if len(dc.Groups) > 0 {
		groups := make([]*model.Group, 0, len(dc.Groups))
		for _, dg := range dc.Groups {
			settings, err := buildSettings(dg.Settings)
			if err != nil {
				return nil, fmt.Errorf("category %q group %q: %w", dc.Description, dg.Description, err)
			}
			groups = append(groups, model.NewGroup(dg.Description, settings...))
		}
		opts = append(opts, model.WithGroups(groups...))
	}

	c := model.NewCategory(dc.Description, opts...)

	if len(dc.Children) > 0 {
		children := make([]*model.Category, 0, len(dc.Children))
		for _, child := range dc.Children {
			cc, err := buildCategory(child)
			if err != nil {
				return nil, err
			}
			children = append(children, cc)
		}
		c.SubCategories(children...)
	}
	if dc.Expand {
		c.Expand()
	}
	return c, nil
}

func buildSettings(defs []defSetting) ([]*model.Setting, error) {
	settings := make([]*model.Setting, 0, len(defs))
	for _, ds := range defs {
		if ds.Description == "" {
			return nil, fmt.Errorf("setting description cannot be empty")
		}
		settingType := model.SettingType(ds.Type)
		if ds.Type == "" {
			settingType = model.TypeText
		}
		if !settingType.IsValid() {
			return nil, fmt.Errorf("setting %q: invalid type %q", ds.Description, ds.Type)
		}
		if settingType == model.TypeChoice && len(ds.Options) == 0 {
			return nil, fmt.Errorf("setting %q: choice type needs options", ds.Description)
		}

		s := model.NewSetting(ds.Description, settingType)
		s.Default = ds.Default
		s.Value = ds.Default
		s.Options = ds.Options
		s.Help = ds.Help
		settings = append(settings, s)
	}
	return settings, nil
}
