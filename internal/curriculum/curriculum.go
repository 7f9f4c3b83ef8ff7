// Package curriculum turns a saved course curriculum dump into the item
// and video lists the skeleton generator consumes.
package curriculum

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cudacourse/coursekit/internal/course"
)

const (
	// AllItemsFile lists every lecture and quiz.
	AllItemsFile = "all_items.json"
	// VideoLecturesFile lists the video lectures only.
	VideoLecturesFile = "video_lectures.json"
)

// Item kinds.
const (
	TypeLecture = "lecture"
	TypeQuiz    = "quiz"
)

const (
	assetVideo   = "Video"
	assetQuiz    = "Quiz"
	assetUnknown = "Unknown"
)

// ErrNoResults is returned when a dump has no results array.
var ErrNoResults = errors.New("curriculum has no results")

// Item is one lecture or quiz in course order.
type Item struct {
	Type         string          `json:"type"`
	Section      int             `json:"section"`
	Lecture      int             `json:"lecture"`
	ID           int             `json:"id"`
	Title        string          `json:"title"`
	AssetType    string          `json:"asset_type"`
	SectionTitle string          `json:"section_title"`
	Category     course.Category `json:"category"`
}

// VideoLecture identifies a lecture that has a video asset.
type VideoLecture struct {
	Section int    `json:"s"`
	Lecture int    `json:"l"`
	ID      int    `json:"id"`
	Title   string `json:"title"`
}

// Curriculum is a parsed dump.
type Curriculum struct {
	Items  []Item         `json:"items"`
	Videos []VideoLecture `json:"videos"`
}

type rawDump struct {
	Count   int       `json:"count"`
	Results []rawItem `json:"results"`
}

type rawItem struct {
	Class string    `json:"_class"`
	ID    int       `json:"id"`
	Title *string   `json:"title"`
	Asset *rawAsset `json:"asset"`
}

type rawAsset struct {
	AssetType string `json:"asset_type"`
}

// Parse reads a curriculum dump. Each chapter starts a new section and
// resets the lecture counter; lectures and quizzes both advance it.
func Parse(r io.Reader) (*Curriculum, error) {
	var dump rawDump
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return nil, fmt.Errorf("decoding curriculum: %w", err)
	}
	if dump.Results == nil {
		return nil, ErrNoResults
	}

	c := &Curriculum{Items: []Item{}, Videos: []VideoLecture{}}
	section, lecture := 0, 0
	sectionTitle := ""

	for _, raw := range dump.Results {
		switch raw.Class {
		case "chapter":
			section++
			lecture = 0
			sectionTitle = stringOr(raw.Title, "")

		case TypeLecture:
			lecture++
			assetType := assetUnknown
			if raw.Asset != nil && raw.Asset.AssetType != "" {
				assetType = raw.Asset.AssetType
			}
			item := Item{
				Type:         TypeLecture,
				Section:      section,
				Lecture:      lecture,
				ID:           raw.ID,
				Title:        stringOr(raw.Title, ""),
				AssetType:    assetType,
				SectionTitle: sectionTitle,
				Category:     categoryFor(section),
			}
			c.Items = append(c.Items, item)
			if assetType == assetVideo {
				c.Videos = append(c.Videos, VideoLecture{
					Section: section,
					Lecture: lecture,
					ID:      raw.ID,
					Title:   item.Title,
				})
			}

		case TypeQuiz:
			lecture++
			c.Items = append(c.Items, Item{
				Type:         TypeQuiz,
				Section:      section,
				Lecture:      lecture,
				ID:           raw.ID,
				Title:        stringOr(raw.Title, "Quiz"),
				AssetType:    assetQuiz,
				SectionTitle: sectionTitle,
				Category:     categoryFor(section),
			})
		}
	}

	return c, nil
}

// ParseFile parses the dump stored at path.
func ParseFile(path string) (*Curriculum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func categoryFor(section int) course.Category {
	cat, err := course.CategoryOf(section)
	if err != nil {
		return course.DefaultCategory
	}
	return cat
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// SectionSummary counts the items of one section.
type SectionSummary struct {
	Section int
	Title   string
	Items   int
}

// Summary returns per-section item counts in section order.
func (c *Curriculum) Summary() []SectionSummary {
	var out []SectionSummary
	index := make(map[int]int)
	for _, item := range c.Items {
		i, ok := index[item.Section]
		if !ok {
			i = len(out)
			index[item.Section] = i
			out = append(out, SectionSummary{Section: item.Section, Title: item.SectionTitle})
		}
		out[i].Items++
	}
	// Sections arrive in order from the dump, so out is already sorted.
	return out
}

// WriteFiles writes AllItemsFile and VideoLecturesFile into dir.
func (c *Curriculum) WriteFiles(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := writeJSON(filepath.Join(dir, AllItemsFile), c.Items); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, VideoLecturesFile), c.Videos)
}

// ReadVideoLectures loads a VideoLecturesFile.
func ReadVideoLectures(path string) ([]VideoLecture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var videos []VideoLecture
	if err := json.Unmarshal(data, &videos); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return videos, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
