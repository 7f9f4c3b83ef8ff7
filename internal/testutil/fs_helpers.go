// Package testutil provides test utilities and helpers for coursekit tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// lectureConfig holds configuration for Lecture.
type lectureConfig struct {
	title        string
	sectionTitle string
	category     string
	order        int
	tags         []string
}

// LectureOption is a functional option for Lecture.
type LectureOption func(*lectureConfig)

// WithTitle sets the title after the "S<n>-L<m>: " prefix.
func WithTitle(title string) LectureOption {
	return func(c *lectureConfig) {
		c.title = title
	}
}

// WithSectionTitle sets sectionTitle.
func WithSectionTitle(title string) LectureOption {
	return func(c *lectureConfig) {
		c.sectionTitle = title
	}
}

// WithCategory sets category.
func WithCategory(category string) LectureOption {
	return func(c *lectureConfig) {
		c.category = category
	}
}

// WithOrder overrides the section*100+lecture order.
func WithOrder(order int) LectureOption {
	return func(c *lectureConfig) {
		c.order = order
	}
}

// WithTags sets tags.
func WithTags(tags ...string) LectureOption {
	return func(c *lectureConfig) {
		c.tags = tags
	}
}

// Lecture returns the text of a content file that passes non-strict
// validation. sectionTitle defaults to "Section <n>", which strict
// validation reports as a mismatch.
func Lecture(section, lecture int, opts ...LectureOption) string {
	config := &lectureConfig{
		title:        "Lecture",
		sectionTitle: fmt.Sprintf("Section %d", section),
		order:        section*100 + lecture,
	}
	for _, opt := range opts {
		opt(config)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "title: \"S%d-L%d: %s\"\n", section, lecture, config.title)
	sb.WriteString("description: \"notes\"\n")
	fmt.Fprintf(&sb, "sectionNumber: %d\n", section)
	fmt.Fprintf(&sb, "sectionTitle: %q\n", config.sectionTitle)
	fmt.Fprintf(&sb, "lectureNumber: %d\n", lecture)
	fmt.Fprintf(&sb, "order: %d\n", config.order)
	if config.category != "" {
		fmt.Fprintf(&sb, "category: %q\n", config.category)
	}
	if len(config.tags) > 0 {
		fmt.Fprintf(&sb, "tags: [%s]\n", formatTags(config.tags))
	}
	sb.WriteString("---\n\nbody\n")
	return sb.String()
}

// formatTags formats a string slice as a YAML flow sequence body
func formatTags(tags []string) string {
	quoted := make([]string, len(tags))
	for i, tag := range tags {
		quoted[i] = fmt.Sprintf("%q", tag)
	}
	return strings.Join(quoted, ", ")
}

// WriteTree writes files (slash-separated paths relative to a new temp
// directory) and returns the directory.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		WriteFile(t, filepath.Join(root, filepath.FromSlash(name)), content)
	}
	return root
}

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads file content, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}

	return string(content)
}

// coursekitEnvPrefix marks the environment variables that override config.
const coursekitEnvPrefix = "COURSEKIT_"

// IsolateConfig points HOME at an empty directory and clears COURSEKIT_*
// variables so neither the user config nor the environment leaks into a
// test. Tests calling it cannot run in parallel.
func IsolateConfig(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, coursekitEnvPrefix) {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
	return home
}
