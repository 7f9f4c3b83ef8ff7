package catalog

import "github.com/cudacourse/coursekit/internal/content"

// Report holds per-file validation results ordered by path.
type Report struct {
	Files []*content.FileResult
}

// Valid returns the number of files that passed validation.
func (r *Report) Valid() int {
	n := 0
	for _, f := range r.Files {
		if f.Result.Valid {
			n++
		}
	}
	return n
}

// Invalid returns the number of files that failed validation.
func (r *Report) Invalid() int {
	return len(r.Files) - r.Valid()
}

// Warnings returns the total number of warnings across all files.
func (r *Report) Warnings() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Result.Warnings)
	}
	return n
}

// Lectures returns the validated lectures in path order.
func (r *Report) Lectures() []*content.Lecture {
	lectures := make([]*content.Lecture, 0, len(r.Files))
	for _, f := range r.Files {
		if f.Lecture != nil {
			lectures = append(lectures, f.Lecture)
		}
	}
	return lectures
}

// OK reports whether the load should be treated as a success.
func (r *Report) OK(warningsAsErrors bool) bool {
	if r.Invalid() > 0 {
		return false
	}
	return !warningsAsErrors || r.Warnings() == 0
}
