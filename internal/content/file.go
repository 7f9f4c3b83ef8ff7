package content

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cudacourse/coursekit/internal/frontmatter"
)

// Lecture is a validated content file. Body is passed through untouched.
type Lecture struct {
	Path  string
	Entry *Entry
	Body  []byte
}

// FileResult pairs a content file with its validation outcome.
type FileResult struct {
	Path    string
	Lecture *Lecture // nil unless Result.Valid
	Result  *ValidationResult
}

// Err returns nil for a valid file and a *SchemaViolation naming the
// file otherwise.
func (r *FileResult) Err() error {
	if r.Result.Valid {
		return nil
	}
	return &SchemaViolation{Source: r.Path, Errors: r.Result.Errors}
}

// ValidateFile reads and validates the content file at path.
func (v *Validator) ValidateFile(path string) *FileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		res := &FileResult{Path: path, Result: &ValidationResult{Valid: true}}
		res.Result.AddError(&ValidationError{
			Message: fmt.Sprintf("failed to read file: %v", err),
		})
		return res
	}
	return v.ValidateBytes(path, data)
}

// ValidateBytes validates an already-read content file. Errors are
// annotated with the line and column of the offending value.
func (v *Validator) ValidateBytes(path string, data []byte) *FileResult {
	res := &FileResult{Path: path}

	doc, err := frontmatter.Parse(data)
	if err != nil {
		res.Result = &ValidationResult{Valid: true}
		res.Result.AddError(parseError(err))
		return res
	}

	rec, err := doc.Record()
	if err != nil {
		res.Result = &ValidationResult{Valid: true}
		res.Result.AddError(parseError(err))
		return res
	}

	entry, result := v.Validate(rec)
	for _, list := range [][]*ValidationError{result.Errors, result.Warnings} {
		for _, ve := range list {
			if ve.Field != "" {
				ve.Line, ve.Column = doc.Position(ve.Field)
			}
		}
	}
	res.Result = result

	if result.Valid {
		res.Lecture = &Lecture{Path: path, Entry: entry, Body: doc.Body}
	}
	return res
}

func parseError(err error) *ValidationError {
	ve := &ValidationError{Message: err.Error()}
	switch {
	case errors.Is(err, frontmatter.ErrNoFrontMatter):
		ve.Line = 1
		ve.Hint = "Start the file with a '---' line, the YAML fields, and a closing '---' line"
	case errors.Is(err, frontmatter.ErrUnterminatedFrontMatter):
		ve.Line = 1
		ve.Hint = "Add a closing '---' line after the front matter fields"
	case errors.Is(err, frontmatter.ErrNotMapping):
		ve.Hint = "The front matter should be key-value pairs, not a list or scalar"
	default:
		ve.Message, ve.Line, ve.Column = describeYAMLError(err)
		ve.Hint = "Check the YAML syntax for errors"
	}
	return ve
}

// headerOffset is the number of file lines before the first header line.
// yaml.v3 reports lines relative to the header.
const headerOffset = 1

var yamlLineRef = regexp.MustCompile(`at line (\d+)`)

// describeYAMLError returns a message and file position for a yaml.v3
// syntax or decode error.
func describeYAMLError(err error) (msg string, line, column int) {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		msgs := make([]string, 0, len(typeErr.Errors))
		for i, e := range typeErr.Errors {
			var l int
			if n, _ := fmt.Sscanf(e, "line %d:", &l); n == 1 {
				if i == 0 {
					line, column = l+headerOffset, 1
				}
				if _, rest, ok := strings.Cut(e, ": "); ok {
					e = rest
				}
			}
			msgs = append(msgs, shiftLineRefs(e))
		}
		return "invalid YAML: " + strings.Join(msgs, "; "), line, column
	}

	line, column = extractLineColumn(err.Error())
	if line > 0 {
		line += headerOffset
	}
	return cleanYAMLError(err.Error()), line, column
}

// shiftLineRefs rewrites "at line N" references from header to file lines.
func shiftLineRefs(msg string) string {
	return yamlLineRef.ReplaceAllStringFunc(msg, func(m string) string {
		n, err := strconv.Atoi(strings.TrimPrefix(m, "at line "))
		if err != nil {
			return m
		}
		return fmt.Sprintf("at line %d", n+headerOffset)
	})
}

// extractLineColumn pulls "line N" (and "column M") out of a yaml.v3
// error message. Returns 0, 0 if absent.
func extractLineColumn(msg string) (line, column int) {
	idx := strings.Index(msg, "yaml: line ")
	if idx < 0 {
		return 0, 0
	}
	msg = msg[idx:]
	var l, c int
	if n, _ := fmt.Sscanf(msg, "yaml: line %d: column %d:", &l, &c); n == 2 {
		return l, c
	}
	if n, _ := fmt.Sscanf(msg, "yaml: line %d:", &l); n == 1 {
		return l, 1
	}
	return 0, 0
}

// cleanYAMLError strips the "yaml: line N:" prefix.
func cleanYAMLError(msg string) string {
	if idx := strings.Index(msg, "yaml: "); idx >= 0 {
		rest := msg[idx:]
		if i := strings.LastIndex(rest, ": "); i > 0 {
			return "invalid YAML: " + rest[i+2:]
		}
	}
	return msg
}
