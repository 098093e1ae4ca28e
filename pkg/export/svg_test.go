package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dicklesworthstone/prefnav/pkg/model"
)

func fixture() []*model.Category {
	colors := model.NewCategory("Colors",
		model.WithSettings(model.NewSetting("Theme", model.TypeChoice)))
	screen := model.NewCategory("Screen").SubCategories(colors)
	cats := []*model.Category{model.NewCategory("General"), screen}
	model.StampBreadcrumbs(cats)
	return cats
}

func TestWriteSVGContainsCategories(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, fixture()); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("output is not an SVG document")
	}
	for _, name := range []string{"General", "Screen", "Colors"} {
		if !strings.Contains(out, name) {
			t.Errorf("SVG missing category %q", name)
		}
	}
	if !strings.Contains(out, "1 settings") {
		t.Errorf("SVG missing settings count for Colors")
	}
}

func TestWriteSVGEmptyForest(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, nil); err != nil {
		t.Fatalf("WriteSVG on empty forest: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("empty forest should still produce an SVG document")
	}
}

func TestWriteSVGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.svg")
	if err := WriteSVGFile(path, fixture()); err != nil {
		t.Fatalf("WriteSVGFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Screen") {
		t.Error("file SVG missing categories")
	}
}
