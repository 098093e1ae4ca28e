package model

// SettingType categorizes the kind of value a setting holds
type SettingType string

const (
	TypeText   SettingType = "text"
	TypeBool   SettingType = "bool"
	TypeInt    SettingType = "int"
	TypeFloat  SettingType = "float"
	TypeChoice SettingType = "choice"
)

// IsValid returns true if the setting type is a recognized value
func (t SettingType) IsValid() bool {
	switch t {
	case TypeText, TypeBool, TypeInt, TypeFloat, TypeChoice:
		return true
	}
	return false
}

// Setting is a single user-configurable value, the leaf of the content
// hierarchy. The description is a translatable key; Help holds optional
// markdown shown in the help pane.
type Setting struct {
	descriptionKey string
	description    *ObservableString
	Type           SettingType
	Value          any
	Default        any
	Options        []string // for TypeChoice
	Help           string
	marked         bool
}

// NewSetting creates a setting with the given description and type.
// The description doubles as the untranslated key until a translation
// service is applied.
func NewSetting(description string, settingType SettingType) *Setting {
	return &Setting{
		descriptionKey: description,
		description:    NewObservableString(description),
		Type:           settingType,
	}
}

// DescriptionKey returns the untranslated label key.
func (s *Setting) DescriptionKey() string {
	return s.descriptionKey
}

// Description returns the current (possibly translated) label.
func (s *Setting) Description() string {
	return s.description.Get()
}

// DescriptionProperty exposes the observable label for UI bindings.
func (s *Setting) DescriptionProperty() *ObservableString {
	return s.description
}

// Translate applies the translation service to the description.
// A nil service resets the description to the raw key. Empty keys are
// skipped silently.
func (s *Setting) Translate(service TranslationService) {
	if service == nil {
		s.description.Set(s.descriptionKey)
		return
	}
	if s.descriptionKey != "" {
		s.description.Set(service.Translate(s.descriptionKey))
	}
}

// Mark flags the setting as a search match.
func (s *Setting) Mark() {
	s.marked = true
}

// Unmark clears the search-match flag.
func (s *Setting) Unmark() {
	s.marked = false
}

// IsMarked reports whether the setting is currently a search match.
func (s *Setting) IsMarked() bool {
	return s.marked
}
