// Package generate writes lecture skeleton files for video lectures.
package generate

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/cudacourse/coursekit/internal/content"
	"github.com/cudacourse/coursekit/internal/course"
	"github.com/cudacourse/coursekit/internal/curriculum"
	"github.com/cudacourse/coursekit/internal/frontmatter"
)

// lectureTemplate is the outline written below the front matter.
//
//go:embed templates/lecture.md.tmpl
var lectureTemplate string

var bodyTemplate = template.Must(template.New("lecture").Parse(lectureTemplate))

// Options control skeleton generation.
type Options struct {
	// OutDir receives sections/NN/lecture-NN.mdx files.
	OutDir string
	// Force overwrites existing files instead of skipping them.
	Force bool
}

// Outcome of writing one skeleton.
type Outcome string

const (
	Created     Outcome = "created"
	Overwritten Outcome = "overwritten"
	Skipped     Outcome = "skipped"
)

// FileResult records what happened to one lecture.
type FileResult struct {
	Path    string
	Outcome Outcome
}

// RelPath returns the skeleton path for a lecture relative to the output
// directory.
func RelPath(section, lecture int) string {
	return filepath.Join("sections", fmt.Sprintf("%02d", section), fmt.Sprintf("lecture-%02d.mdx", lecture))
}

// Order is the sort key of a lecture.
func Order(section, lecture int) int {
	return section*100 + lecture
}

// NewEntry builds the front matter for a video lecture from the section
// registry.
func NewEntry(v curriculum.VideoLecture) (*content.Entry, error) {
	info, err := course.Section(v.Section)
	if err != nil {
		return nil, err
	}
	return &content.Entry{
		Title:         fmt.Sprintf("S%d-L%d: %s", v.Section, v.Lecture, v.Title),
		Description:   fmt.Sprintf("%s - %sの解説", info.Title, v.Title),
		SectionNumber: v.Section,
		SectionTitle:  info.Title,
		LectureNumber: v.Lecture,
		LectureTitle:  v.Title,
		Difficulty:    info.Difficulty,
		Tags:          []string{string(info.Category), "cuda"},
		Category:      info.Category,
		Order:         Order(v.Section, v.Lecture),
	}, nil
}

// Render returns the full skeleton file for a video lecture. The result is
// validated before it is returned.
func Render(v curriculum.VideoLecture) ([]byte, error) {
	entry, err := NewEntry(v)
	if err != nil {
		return nil, err
	}

	if _, result := content.Validate(entry.Record()); !result.Valid {
		return nil, fmt.Errorf("S%d-L%d: %w", v.Section, v.Lecture, result.Err())
	}

	var body bytes.Buffer
	if err := bodyTemplate.Execute(&body, v); err != nil {
		return nil, fmt.Errorf("rendering body: %w", err)
	}

	var out bytes.Buffer
	if err := frontmatter.Encode(&out, entry, body.Bytes()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Write renders and writes a skeleton for each video lecture. Every
// skeleton is rendered before any file is written, so an invalid lecture
// leaves the output directory untouched.
func Write(videos []curriculum.VideoLecture, opts Options) ([]FileResult, error) {
	if opts.OutDir == "" {
		return nil, errors.New("output directory is required")
	}

	rendered := make([][]byte, len(videos))
	for i, v := range videos {
		data, err := Render(v)
		if err != nil {
			return nil, err
		}
		rendered[i] = data
	}

	results := make([]FileResult, 0, len(videos))
	for i, v := range videos {
		path := filepath.Join(opts.OutDir, RelPath(v.Section, v.Lecture))
		outcome := Created
		if _, err := os.Stat(path); err == nil {
			if !opts.Force {
				slog.Debug("skipping existing skeleton", "path", path)
				results = append(results, FileResult{Path: path, Outcome: Skipped})
				continue
			}
			outcome = Overwritten
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return results, fmt.Errorf("creating directory for %s: %w", path, err)
		}
		if err := os.WriteFile(path, rendered[i], 0o644); err != nil {
			return results, fmt.Errorf("writing %s: %w", path, err)
		}
		results = append(results, FileResult{Path: path, Outcome: outcome})
	}
	return results, nil
}
