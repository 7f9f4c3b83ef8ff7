package frontmatter

import "errors"

var (
	// ErrNoFrontMatter is returned when a document does not open with a
	// "---" delimiter line.
	ErrNoFrontMatter = errors.New("document has no front matter")

	// ErrUnterminatedFrontMatter is returned when the opening delimiter is
	// never closed.
	ErrUnterminatedFrontMatter = errors.New("front matter is not terminated")

	// ErrNotMapping is returned when the front matter parses as YAML but
	// is not a key-value mapping.
	ErrNotMapping = errors.New("front matter is not a mapping")
)
