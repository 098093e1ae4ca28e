package ui

import (
	"testing"

	"github.com/Dicklesworthstone/prefnav/pkg/model"
)

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		suffix   string
		want     string
	}{
		{"fits", "hello", 10, "…", "hello"},
		{"exact", "hello", 5, "…", "hello"},
		{"truncated", "hello world", 8, "…", "hello w…"},
		{"zero width", "hello", 0, "…", ""},
		{"wide runes", "日本語テキスト", 7, "…", "日本語…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateWidth(tt.input, tt.maxWidth, tt.suffix)
			if got != tt.want {
				t.Errorf("truncateWidth(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"ab", 4, "ab  "},
		{"abcd", 4, "abcd"},
		{"abcde", 4, "abcde"},
		{"", 2, "  "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"bool true", true, "on"},
		{"bool false", false, "off"},
		{"string", "dark", "dark"},
		{"int", 42, "42"},
		{"float", 1.5, "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := model.NewSetting("x", model.TypeText)
			s.Value = tt.value
			if got := formatValue(s); got != tt.want {
				t.Errorf("formatValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
