package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dicklesworthstone/prefnav/pkg/model"
)

const sampleDefinition = `
title: Demo Preferences
initial_category: General
categories:
  - description: General
    expand: true
    settings:
      - description: Username
      - description: Night mode
        type: bool
        default: false
  - description: Screen
    icon: "S"
    groups:
      - description: Appearance
        settings:
          - description: Theme
            type: choice
            options: [dark, light]
            default: dark
            help: |
              Pick the **color theme**.
    children:
      - description: Scaling
        settings:
          - description: Factor
            type: float
            default: 1.0
`

func TestParseBuildsTree(t *testing.T) {
	def, err := Parse([]byte(sampleDefinition))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if def.Title != "Demo Preferences" {
		t.Errorf("Title = %q", def.Title)
	}
	if def.InitialCategory != "General" {
		t.Errorf("InitialCategory = %q", def.InitialCategory)
	}
	if len(def.Categories) != 2 {
		t.Fatalf("len(Categories) = %d, want 2", len(def.Categories))
	}

	general := def.Categories[0]
	if !general.IsExpand() {
		t.Error("General should carry the expand flag")
	}
	if len(general.Groups()) != 1 {
		t.Fatalf("General groups = %d, want 1 (settings shorthand)", len(general.Groups()))
	}
	settings := general.Groups()[0].Settings()
	if len(settings) != 2 {
		t.Fatalf("General settings = %d, want 2", len(settings))
	}
	if settings[0].Type != model.TypeText {
		t.Errorf("Username type = %q, want text default", settings[0].Type)
	}
	if settings[1].Type != model.TypeBool {
		t.Errorf("Night mode type = %q, want bool", settings[1].Type)
	}

	screen := def.Categories[1]
	if screen.ItemIcon() != "S" {
		t.Errorf("Screen icon = %q, want S", screen.ItemIcon())
	}
	theme := screen.Groups()[0].Settings()[0]
	if theme.Type != model.TypeChoice || len(theme.Options) != 2 {
		t.Errorf("Theme = %+v, want choice with 2 options", theme)
	}
	if theme.Value != "dark" {
		t.Errorf("Theme value = %v, want default dark", theme.Value)
	}
	if !strings.Contains(theme.Help, "color theme") {
		t.Errorf("Theme help = %q", theme.Help)
	}
}

func TestParseStampsBreadcrumbs(t *testing.T) {
	def, err := Parse([]byte(sampleDefinition))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	screen := def.Categories[1]
	scaling := screen.Children()[0]
	want := "Screen" + model.BreadcrumbDelimiter + "Scaling"
	if scaling.Breadcrumb() != want {
		t.Errorf("Scaling breadcrumb = %q, want %q", scaling.Breadcrumb(), want)
	}
	if g := screen.Groups()[0]; g.Breadcrumb() != "Screen" {
		t.Errorf("Appearance breadcrumb = %q, want Screen", g.Breadcrumb())
	}
}

func TestParseMatchesFluentConstruction(t *testing.T) {
	def, err := Parse([]byte(sampleDefinition))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Hand-built equivalent of the Screen subtree.
	factor := model.NewSetting("Factor", model.TypeFloat)
	scaling := model.NewCategory("Scaling", model.WithSettings(factor))
	theme := model.NewSetting("Theme", model.TypeChoice)
	screen := model.NewCategory("Screen",
		model.WithIcon("S"),
		model.WithGroups(model.NewGroup("Appearance", theme)),
	).SubCategories(scaling)
	model.StampBreadcrumbs([]*model.Category{screen})

	got := def.Categories[1]
	if got.Description() != screen.Description() {
		t.Errorf("description mismatch: %q vs %q", got.Description(), screen.Description())
	}
	if got.Children()[0].Breadcrumb() != scaling.Breadcrumb() {
		t.Errorf("breadcrumb mismatch: %q vs %q",
			got.Children()[0].Breadcrumb(), scaling.Breadcrumb())
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.prefs.yaml")
	if err := os.WriteFile(path, []byte(sampleDefinition), 0644); err != nil {
		t.Fatal(err)
	}
	def, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(def.Categories) != 2 {
		t.Errorf("len(Categories) = %d, want 2", len(def.Categories))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "empty category description",
			yaml: "categories:\n  - description: \"\"\n",
		},
		{
			name: "groups and settings together",
			yaml: `
categories:
  - description: C
    settings:
      - description: S
    groups:
      - description: G
`,
		},
		{
			name: "invalid setting type",
			yaml: `
categories:
  - description: C
    settings:
      - description: S
        type: banana
`,
		},
		{
			name: "choice without options",
			yaml: `
categories:
  - description: C
    settings:
      - description: S
        type: choice
`,
		},
		{
			name: "not yaml",
			yaml: ":::",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("Parse: err = nil, want error")
			}
		})
	}
}

func TestParseEmptyDefinition(t *testing.T) {
	def, err := Parse([]byte("title: Empty\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(def.Categories) != 0 {
		t.Errorf("len(Categories) = %d, want 0", len(def.Categories))
	}
}
