// Package content validates lecture front matter against the ContentEntry
// schema and produces immutable Entry values with defaults applied.
package content

import (
	"github.com/cudacourse/coursekit/internal/course"
)

// Record is loosely typed front matter as decoded from YAML.
type Record map[string]any

// Entry is a validated content entry. Field order matches Rules.
type Entry struct {
	Title         string            `yaml:"title" json:"title"`
	Description   string            `yaml:"description" json:"description"`
	SectionNumber int               `yaml:"sectionNumber" json:"sectionNumber"`
	SectionTitle  string            `yaml:"sectionTitle" json:"sectionTitle"`
	LectureNumber int               `yaml:"lectureNumber" json:"lectureNumber"`
	LectureTitle  string            `yaml:"lectureTitle,omitempty" json:"lectureTitle,omitempty"`
	Difficulty    course.Difficulty `yaml:"difficulty" json:"difficulty"`
	Tags          []string          `yaml:"tags,flow" json:"tags"`
	Category      course.Category   `yaml:"category" json:"category"`
	Thumbnail     string            `yaml:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Order         int               `yaml:"order" json:"order"`
}

// Record renders the entry back into front matter form. Optional string
// fields are omitted when empty; defaults are written out explicitly.
func (e *Entry) Record() Record {
	rec := Record{
		"title":         e.Title,
		"description":   e.Description,
		"sectionNumber": e.SectionNumber,
		"sectionTitle":  e.SectionTitle,
		"lectureNumber": e.LectureNumber,
		"difficulty":    string(e.Difficulty),
		"tags":          append([]string{}, e.Tags...),
		"category":      string(e.Category),
		"order":         e.Order,
	}
	if e.LectureTitle != "" {
		rec["lectureTitle"] = e.LectureTitle
	}
	if e.Thumbnail != "" {
		rec["thumbnail"] = e.Thumbnail
	}
	return rec
}

// Key identifies an entry's position in the course.
type Key struct {
	Section int
	Lecture int
}

// Key returns the (section, lecture) pair of the entry.
func (e *Entry) Key() Key {
	return Key{Section: e.SectionNumber, Lecture: e.LectureNumber}
}
