// Package i18n provides YAML-backed label translation for preference
// definitions. A Bundle satisfies model.TranslationService; a nil service
// everywhere means "show raw keys".
package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/prefnav/pkg/model"
)

// Bundle maps label keys to display strings for one locale.
type Bundle struct {
	Locale   string
	messages map[string]string
}

// NewBundle creates a bundle from an in-memory message map.
func NewBundle(locale string, messages map[string]string) *Bundle {
	if messages == nil {
		messages = map[string]string{}
	}
	return &Bundle{Locale: locale, messages: messages}
}

// Translate resolves a key to its display string. Unknown keys fall back
// to the key itself so missing translations degrade to raw labels rather
// than blanks.
func (b *Bundle) Translate(key string) string {
	if msg, ok := b.messages[key]; ok {
		return msg
	}
	return key
}

// Len returns the number of messages in the bundle.
func (b *Bundle) Len() int {
	return len(b.messages)
}

// LoadBundle reads a single locale file. The locale name is derived from
// the file name: "de.yaml" -> "de".
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locale file: %w", err)
	}

	messages := map[string]string{}
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("parse locale file %s: %w", path, err)
	}

	locale := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return NewBundle(locale, messages), nil
}

// LoadBundles reads every *.yaml / *.yml file in dir concurrently and
// returns the bundles keyed by locale. A missing directory yields an
// empty map, not an error.
func LoadBundles(dir string) (map[string]*Bundle, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return map[string]*Bundle{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read locale dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	bundles := make(map[string]*Bundle, len(paths))
	var mu sync.Mutex
	var g errgroup.Group
	for _, path := range paths {
		g.Go(func() error {
			b, err := LoadBundle(path)
			if err != nil {
				return err
			}
			mu.Lock()
			bundles[b.Locale] = b
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bundles, nil
}

// Retranslate applies the service to every category, group, and setting
// reachable from the given top-level categories, then restamps breadcrumbs
// so paths reflect the new labels. A nil service restores raw keys.
func Retranslate(categories []*model.Category, service model.TranslationService) {
	for _, c := range model.FlattenCategories(categories) {
		c.Translate(service)
		c.UpdateGroupDescriptions(service)
	}
	model.StampBreadcrumbs(categories)
}
