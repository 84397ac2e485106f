package models

import (
	"errors"
	"math/rand"
	"strings"
	"unicode/utf8"
)

// MaxTagNameLength is the exclusive upper bound on a trimmed tag name, in characters
const MaxTagNameLength = 128

// Tag-related errors
var (
	ErrEmptyTagName   = errors.New("tag name cannot be empty")
	ErrTagNameTooLong = errors.New("tag name must be shorter than 128 characters")
	ErrTagExists      = errors.New("tag already exists")
)

// TagType describes the kind of value a tag classifies
type TagType string

const (
	TagTypeString  TagType = "string"
	TagTypeNumber  TagType = "number"
	TagTypeBoolean TagType = "boolean"
	TagTypeObject  TagType = "object"
	TagTypeArray   TagType = "array"
)

// TagFormat describes how a tag value is presented
type TagFormat string

const (
	TagFormatText    TagFormat = "text"
	TagFormatInteger TagFormat = "integer"
	TagFormatDecimal TagFormat = "decimal"
	TagFormatDate    TagFormat = "date"
	TagFormatNone    TagFormat = "none"
)

// TagTypes and TagFormats list the known values in cycling order
var (
	TagTypes   = []TagType{TagTypeString, TagTypeNumber, TagTypeBoolean, TagTypeObject, TagTypeArray}
	TagFormats = []TagFormat{TagFormatText, TagFormatInteger, TagFormatDecimal, TagFormatDate, TagFormatNone}
)

// Tag represents a named, colored classification
type Tag struct {
	Name   string    `json:"name" yaml:"name"`
	Color  string    `json:"color,omitempty" yaml:"color,omitempty"`
	Type   TagType   `json:"type,omitempty" yaml:"type,omitempty"`
	Format TagFormat `json:"format,omitempty" yaml:"format,omitempty"`
}

// DefaultColorPalette provides a curated set of colors for tags
// These colors are chosen for good contrast and accessibility
var DefaultColorPalette = []string{
	"#e74c3c", // red
	"#3498db", // blue
	"#2ecc71", // green
	"#f39c12", // orange
	"#9b59b6", // purple
	"#1abc9c", // turquoise
	"#34495e", // dark gray
	"#e67e22", // dark orange
	"#16a085", // dark turquoise
	"#8e44ad", // dark purple
	"#f1c40f", // yellow
	"#d35400", // pumpkin
	"#27ae60", // nephritis
	"#2980b9", // belize hole
	"#c0392b", // pomegranate
}

// NewTag builds a tag with the default type and format
func NewTag(name, color string) Tag {
	return Tag{
		Name:   strings.TrimSpace(name),
		Color:  color,
		Type:   TagTypeString,
		Format: TagFormatText,
	}
}

// TagKey returns the identity key of a tag name
func TagKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SameTag reports whether two names refer to the same tag
func SameTag(a, b string) bool {
	return TagKey(a) == TagKey(b)
}

// FindTag returns the index of the tag with the given name, or -1
func FindTag(tags []Tag, name string) int {
	key := TagKey(name)
	for i, t := range tags {
		if TagKey(t.Name) == key {
			return i
		}
	}
	return -1
}

// ValidateTagName checks a candidate name against the tags it must not collide with
func ValidateTagName(name string, existing []Tag) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyTagName
	}

	if utf8.RuneCountInString(trimmed) >= MaxTagNameLength {
		return ErrTagNameTooLong
	}

	if FindTag(existing, trimmed) >= 0 {
		return ErrTagExists
	}

	return nil
}

// WithoutTag returns a copy of tags with the named tag removed
func WithoutTag(tags []Tag, name string) []Tag {
	result := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if !SameTag(t.Name, name) {
			result = append(result, t)
		}
	}
	return result
}

// NextColor picks the first palette color no tag uses yet. Once the palette is
// exhausted it falls back to a random palette entry.
func NextColor(tags []Tag, palette []string, rnd *rand.Rand) string {
	if len(palette) == 0 {
		return ""
	}

	used := make(map[string]bool, len(tags))
	for _, t := range tags {
		used[strings.ToLower(t.Color)] = true
	}

	for _, color := range palette {
		if !used[strings.ToLower(color)] {
			return color
		}
	}

	if rnd == nil {
		return palette[rand.Intn(len(palette))]
	}
	return palette[rnd.Intn(len(palette))]
}

// ParseTagType resolves a type name, case-insensitively
func ParseTagType(s string) (TagType, bool) {
	for _, t := range TagTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, true
		}
	}
	return "", false
}

// ParseTagFormat resolves a format name, case-insensitively
func ParseTagFormat(s string) (TagFormat, bool) {
	for _, f := range TagFormats {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, true
		}
	}
	return "", false
}

// NextTagType returns the type after t, wrapping around
func NextTagType(t TagType) TagType {
	for i, candidate := range TagTypes {
		if candidate == t {
			return TagTypes[(i+1)%len(TagTypes)]
		}
	}
	return TagTypeString
}

// NextTagFormat returns the format after f, wrapping around
func NextTagFormat(f TagFormat) TagFormat {
	for i, candidate := range TagFormats {
		if candidate == f {
			return TagFormats[(i+1)%len(TagFormats)]
		}
	}
	return TagFormatText
}
