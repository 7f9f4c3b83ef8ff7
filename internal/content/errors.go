package content

import (
	"fmt"
	"strings"
)

// ValidationError describes one field that violated its rule.
type ValidationError struct {
	Field    string // Front matter key
	Line     int    // 1-based line in the source file (0 if unknown)
	Column   int    // 1-based column in the source file (0 if unknown)
	Message  string // Human-readable description
	Expected string // The constraint that was violated
	Actual   string // The value that was received
	Hint     string // Suggestion for fixing the field
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.Line > 0 {
		sb.WriteString(fmt.Sprintf("line %d", e.Line))
		if e.Column > 0 {
			sb.WriteString(fmt.Sprintf(":%d", e.Column))
		}
		sb.WriteString(": ")
	}
	if e.Field != "" {
		sb.WriteString(e.Field + ": ")
	}
	sb.WriteString(e.Message)
	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf(" (expected %s", e.Expected))
		if e.Actual != "" {
			sb.WriteString(fmt.Sprintf(", got %s", e.Actual))
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// FormatFull returns a multi-line description suitable for terminals.
func (e *ValidationError) FormatFull() string {
	var sb strings.Builder
	if e.Line > 0 {
		sb.WriteString(fmt.Sprintf("  Line %d", e.Line))
		if e.Column > 0 {
			sb.WriteString(fmt.Sprintf(", Column %d", e.Column))
		}
		sb.WriteString("\n")
	}
	if e.Field != "" {
		sb.WriteString(fmt.Sprintf("  Field: %s\n", e.Field))
	}
	sb.WriteString(fmt.Sprintf("  Error: %s\n", e.Message))
	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf("  Expected: %s\n", e.Expected))
	}
	if e.Actual != "" {
		sb.WriteString(fmt.Sprintf("  Got: %s\n", e.Actual))
	}
	if e.Hint != "" {
		sb.WriteString(fmt.Sprintf("  Hint: %s\n", e.Hint))
	}
	return sb.String()
}

// SchemaViolation is the error form of a failed validation.
type SchemaViolation struct {
	Source string // File path, or empty for in-memory records
	Errors []*ValidationError
}

func (e *SchemaViolation) Error() string {
	var sb strings.Builder
	if e.Source != "" {
		sb.WriteString(e.Source + ": ")
	}
	sb.WriteString(fmt.Sprintf("%d schema violation(s)", len(e.Errors)))
	for _, ve := range e.Errors {
		sb.WriteString("\n  - " + ve.Error())
	}
	return sb.String()
}

// Fields returns the names of the offending fields, in report order.
func (e *SchemaViolation) Fields() []string {
	fields := make([]string, 0, len(e.Errors))
	for _, ve := range e.Errors {
		fields = append(fields, ve.Field)
	}
	return fields
}
