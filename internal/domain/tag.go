package domain

import "strings"

// Tag is the effort classification of a task, derived from its title.
type Tag string

// Possible tag values
const (
	TagQuick  Tag = "Quick"
	TagMedium Tag = "Medium"
	TagDeep   Tag = "Deep"
)

// Word count thresholds for tag classification. A title with at most
// QuickMaxWords words is Quick, at most MediumMaxWords is Medium, and
// anything longer is Deep.
const (
	QuickMaxWords  = 3
	MediumMaxWords = 6
)

// Classify derives the effort tag for a title by counting its
// whitespace-delimited words. It accepts any input; an empty or blank
// title has zero words and is therefore Quick.
func Classify(title string) Tag {
	n := len(strings.Fields(title))
	switch {
	case n <= QuickMaxWords:
		return TagQuick
	case n <= MediumMaxWords:
		return TagMedium
	default:
		return TagDeep
	}
}

// IsValid reports whether the tag is one of the known effort tags.
func (t Tag) IsValid() bool {
	switch t {
	case TagQuick, TagMedium, TagDeep:
		return true
	default:
		return false
	}
}

func (t Tag) String() string {
	return string(t)
}
