package content

import (
	"github.com/cudacourse/coursekit/internal/course"
)

// FieldType is the expected type of a front matter field.
type FieldType string

const (
	FieldTypeString     FieldType = "string"
	FieldTypeInt        FieldType = "int"
	FieldTypeEnum       FieldType = "enum"
	FieldTypeStringList FieldType = "string[]"
)

// FieldRule describes one front matter field: its type, optionality,
// default and constraints. Rules holds the complete table.
type FieldRule struct {
	Name        string    // Key in the front matter
	Type        FieldType // Expected type
	Required    bool      // Must be present (and non-null)
	NonEmpty    bool      // Strings must not be empty
	Enum        []string  // Allowed values for FieldTypeEnum
	Min         *int      // Inclusive lower bound for ints
	Max         *int      // Inclusive upper bound for ints
	Default     any       // Applied when an optional field is absent
	Description string

	set func(e *Entry, v any)
}

func bound(n int) *int { return &n }

// Rules is the ContentEntry schema in front matter key order.
var Rules = []FieldRule{
	{
		Name:        "title",
		Type:        FieldTypeString,
		Required:    true,
		NonEmpty:    true,
		Description: "Page title",
		set:         func(e *Entry, v any) { e.Title = v.(string) },
	},
	{
		Name:        "description",
		Type:        FieldTypeString,
		Required:    true,
		NonEmpty:    true,
		Description: "Page description used for listings and meta tags",
		set:         func(e *Entry, v any) { e.Description = v.(string) },
	},
	{
		Name:        "sectionNumber",
		Type:        FieldTypeInt,
		Required:    true,
		Min:         bound(course.FirstSection),
		Max:         bound(course.LastSection),
		Description: "Course section the lecture belongs to",
		set:         func(e *Entry, v any) { e.SectionNumber = v.(int) },
	},
	{
		Name:        "sectionTitle",
		Type:        FieldTypeString,
		Required:    true,
		NonEmpty:    true,
		Description: "Human-readable section title",
		set:         func(e *Entry, v any) { e.SectionTitle = v.(string) },
	},
	{
		Name:        "lectureNumber",
		Type:        FieldTypeInt,
		Required:    true,
		Min:         bound(0),
		Description: "Lecture number within the section",
		set:         func(e *Entry, v any) { e.LectureNumber = v.(int) },
	},
	{
		Name:        "lectureTitle",
		Type:        FieldTypeString,
		Description: "Original lecture title",
		set:         func(e *Entry, v any) { e.LectureTitle = v.(string) },
	},
	{
		Name:        "difficulty",
		Type:        FieldTypeEnum,
		Enum:        course.DifficultyNames(),
		Default:     string(course.DefaultDifficulty),
		Description: "Lecture difficulty",
		set:         func(e *Entry, v any) { e.Difficulty = course.Difficulty(v.(string)) },
	},
	{
		Name:        "tags",
		Type:        FieldTypeStringList,
		Default:     []string{},
		Description: "Ordered list of tags",
		set:         func(e *Entry, v any) { e.Tags = v.([]string) },
	},
	{
		Name:        "category",
		Type:        FieldTypeEnum,
		Enum:        course.CategoryNames(),
		Default:     string(course.DefaultCategory),
		Description: "Topic category",
		set:         func(e *Entry, v any) { e.Category = course.Category(v.(string)) },
	},
	{
		Name:        "thumbnail",
		Type:        FieldTypeString,
		Description: "Thumbnail image reference",
		set:         func(e *Entry, v any) { e.Thumbnail = v.(string) },
	},
	{
		Name:        "order",
		Type:        FieldTypeInt,
		Required:    true,
		Description: "Display order among entries",
		set:         func(e *Entry, v any) { e.Order = v.(int) },
	},
}

// Rule returns the rule for a field name.
func Rule(name string) (FieldRule, bool) {
	for _, r := range Rules {
		if r.Name == name {
			return r, true
		}
	}
	return FieldRule{}, false
}
