package storage

import (
	"fmt"
	"strconv"

	"github.com/Dicklesworthstone/prefnav/pkg/model"
)

// Encode renders a setting's current value as its stored string form.
func Encode(s *model.Setting) string {
	switch v := s.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Decode parses a stored string back into the setting's typed value.
// Values that no longer parse under the setting's current type are
// rejected rather than silently coerced.
func Decode(s *model.Setting, raw string) error {
	switch s.Type {
	case model.TypeBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("stored value %q is not a bool: %w", raw, err)
		}
		s.Value = v
	case model.TypeInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("stored value %q is not an int: %w", raw, err)
		}
		s.Value = v
	case model.TypeFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("stored value %q is not a float: %w", raw, err)
		}
		s.Value = v
	case model.TypeChoice:
		for _, opt := range s.Options {
			if opt == raw {
				s.Value = raw
				return nil
			}
		}
		return fmt.Errorf("stored value %q is not among options %v", raw, s.Options)
	default:
		s.Value = raw
	}
	return nil
}

// SaveSetting persists one setting's current value.
func (s *Store) SaveSetting(group *model.Group, setting *model.Setting) error {
	return s.Set(Key(group, setting), Encode(setting))
}

// ApplyStored loads every persisted value onto the matching settings in
// the forest. Settings without a stored value keep their defaults; stored
// values that fail to decode are skipped and reported in the returned
// count of skipped entries.
func (s *Store) ApplyStored(categories []*model.Category) (skipped int, err error) {
	stored, err := s.All()
	if err != nil {
		return 0, err
	}
	if len(stored) == 0 {
		return 0, nil
	}

	for _, c := range model.FlattenCategories(categories) {
		for _, g := range c.Groups() {
			for _, st := range g.Settings() {
				raw, ok := stored[Key(g, st)]
				if !ok {
					continue
				}
				if decodeErr := Decode(st, raw); decodeErr != nil {
					skipped++
				}
			}
		}
	}
	return skipped, nil
}
