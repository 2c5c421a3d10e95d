package model

import "strings"

// MaxTagWords is the word limit for custom tags.
const MaxTagWords = 3

// PresetTags is the fixed tag vocabulary. Matching is case-insensitive.
var PresetTags = []string{"reading", "videos", "work", "school", "personal"}

// TagKind classifies a tag against the preset vocabulary.
type TagKind int

const (
	TagPreset TagKind = iota
	TagCustom
)

// ClassifyTag returns TagPreset when the tag matches the vocabulary
// (case-insensitively), TagCustom otherwise.
func ClassifyTag(tag string) TagKind {
	lower := strings.ToLower(tag)
	for _, preset := range PresetTags {
		if lower == preset {
			return TagPreset
		}
	}
	return TagCustom
}

// TagWordCount counts whitespace-separated words in a tag, discarding
// empty tokens.
func TagWordCount(tag string) int {
	return len(strings.Fields(tag))
}

// ValidateTag checks the word-count limit for custom tags. Preset tags
// always pass.
func ValidateTag(tag string) error {
	if ClassifyTag(tag) == TagPreset {
		return nil
	}
	if TagWordCount(tag) > MaxTagWords {
		return &ValidationError{
			Field:   "tag",
			Message: "custom tags can be at most 3 words",
		}
	}
	return nil
}

// presetColors maps preset tags to their badge colors.
var presetColors = map[string]string{
	"reading":  "#F39C12",
	"videos":   "#9B59B6",
	"work":     "#2980B9",
	"school":   "#27AE60",
	"personal": "#E74C3C",
}

// customTagColor is the badge color for tags outside the vocabulary.
const customTagColor = "#7F8C8D"

// TagColor returns the badge color for a tag.
func TagColor(tag string) string {
	if c, ok := presetColors[strings.ToLower(tag)]; ok {
		return c
	}
	return customTagColor
}
