package content

import (
	"fmt"
	"math"
	"strings"

	"github.com/cudacourse/coursekit/internal/course"
)

// ValidationResult is the outcome of validating one entry.
type ValidationResult struct {
	Valid    bool
	Errors   []*ValidationError
	Warnings []*ValidationError // Strict-mode findings; never affect Valid
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// AddError adds a validation error to the result.
func (r *ValidationResult) AddError(err *ValidationError) {
	r.Errors = append(r.Errors, err)
	r.Valid = false
}

// AddWarning records a non-fatal finding.
func (r *ValidationResult) AddWarning(w *ValidationError) {
	r.Warnings = append(r.Warnings, w)
}

// Err returns nil for a valid result and a *SchemaViolation otherwise.
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return &SchemaViolation{Errors: r.Errors}
}

// Validator checks records against Rules.
type Validator struct {
	// Strict enables cross-checks against the section registry. Findings
	// are reported as warnings.
	Strict bool
}

// Validate checks rec with a default (non-strict) Validator.
func Validate(rec Record) (*Entry, *ValidationResult) {
	return (&Validator{}).Validate(rec)
}

// Validate checks every rule against rec and reports every violation.
// The returned Entry is nil unless the result is valid. Keys not in the
// rule table are ignored. A null value counts as absent.
func (v *Validator) Validate(rec Record) (*Entry, *ValidationResult) {
	result := &ValidationResult{Valid: true}
	entry := &Entry{}

	for _, rule := range Rules {
		raw, ok := rec[rule.Name]
		if !ok || raw == nil {
			if rule.Required {
				result.AddError(&ValidationError{
					Field:    rule.Name,
					Message:  fmt.Sprintf("missing required field: %s", rule.Name),
					Expected: describeRule(rule),
					Hint:     fmt.Sprintf("Add the '%s' field to the front matter", rule.Name),
				})
				continue
			}
			if rule.Default != nil {
				rule.set(entry, cloneDefault(rule.Default))
			}
			continue
		}

		value, verr := checkField(rule, raw)
		if verr != nil {
			result.AddError(verr)
			continue
		}
		rule.set(entry, value)
	}

	if !result.Valid {
		return nil, result
	}
	if v.Strict {
		crossCheck(entry, result)
	}
	return entry, result
}

// checkField converts raw to the rule's Go type and applies constraints.
func checkField(rule FieldRule, raw any) (any, *ValidationError) {
	switch rule.Type {
	case FieldTypeString:
		s, ok := raw.(string)
		if !ok {
			return nil, typeError(rule, raw)
		}
		if rule.NonEmpty && s == "" {
			return nil, &ValidationError{
				Field:    rule.Name,
				Message:  fmt.Sprintf("field '%s' must not be empty", rule.Name),
				Expected: "non-empty string",
				Actual:   describeValue(raw),
				Hint:     fmt.Sprintf("Give '%s' a value", rule.Name),
			}
		}
		return s, nil

	case FieldTypeInt:
		n, ok := asInt(raw)
		if !ok {
			return nil, typeError(rule, raw)
		}
		if (rule.Min != nil && n < *rule.Min) || (rule.Max != nil && n > *rule.Max) {
			return nil, &ValidationError{
				Field:    rule.Name,
				Message:  fmt.Sprintf("field '%s' is out of bounds", rule.Name),
				Expected: describeBounds(rule),
				Actual:   describeValue(raw),
				Hint:     fmt.Sprintf("Use an integer %s", describeBounds(rule)),
			}
		}
		return n, nil

	case FieldTypeEnum:
		s, ok := raw.(string)
		if !ok {
			return nil, typeError(rule, raw)
		}
		for _, allowed := range rule.Enum {
			if s == allowed {
				return s, nil
			}
		}
		return nil, &ValidationError{
			Field:    rule.Name,
			Message:  fmt.Sprintf("invalid value for field '%s'", rule.Name),
			Expected: fmt.Sprintf("one of: %s", strings.Join(rule.Enum, ", ")),
			Actual:   describeValue(raw),
			Hint:     fmt.Sprintf("Use one of the valid values: %s", strings.Join(rule.Enum, ", ")),
		}

	case FieldTypeStringList:
		list, ok := asStringList(raw)
		if !ok {
			return nil, typeError(rule, raw)
		}
		return list, nil
	}

	return nil, &ValidationError{Field: rule.Name, Message: fmt.Sprintf("unsupported field type %q", rule.Type)}
}

// crossCheck compares an entry against the registry. Section fields may
// override the registry, so mismatches are warnings only.
func crossCheck(entry *Entry, result *ValidationResult) {
	section, err := course.Section(entry.SectionNumber)
	if err != nil {
		return
	}
	if entry.SectionTitle != section.Title {
		result.AddWarning(&ValidationError{
			Field:    "sectionTitle",
			Message:  fmt.Sprintf("sectionTitle does not match section %d", section.Number),
			Expected: fmt.Sprintf("'%s'", section.Title),
			Actual:   describeValue(entry.SectionTitle),
			Hint:     "Copy the title from `coursekit sections`",
		})
	}
	if entry.Category != section.Category {
		result.AddWarning(&ValidationError{
			Field:    "category",
			Message:  fmt.Sprintf("category differs from section %d", section.Number),
			Expected: fmt.Sprintf("'%s'", section.Category),
			Actual:   describeValue(string(entry.Category)),
		})
	}
}

func typeError(rule FieldRule, raw any) *ValidationError {
	return &ValidationError{
		Field:    rule.Name,
		Message:  fmt.Sprintf("wrong type for field '%s'", rule.Name),
		Expected: describeRule(rule),
		Actual:   describeValue(raw),
		Hint:     fmt.Sprintf("Change '%s' to be a %s", rule.Name, rule.Type),
	}
}

// maxExactFloat is the largest magnitude at which every integer is
// representable as a float64.
const maxExactFloat = 1 << 53

// asInt accepts Go integer kinds and integral floats. Strings are never
// coerced.
func asInt(raw any) (int, bool) {
	switch n := raw.(type) {
	case int:
		return n, true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case int32:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > maxExactFloat {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func asStringList(raw any) ([]string, bool) {
	switch list := raw.(type) {
	case []string:
		return append([]string{}, list...), true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func cloneDefault(v any) any {
	if list, ok := v.([]string); ok {
		return append([]string{}, list...)
	}
	return v
}

func describeRule(rule FieldRule) string {
	switch {
	case rule.Type == FieldTypeEnum:
		return fmt.Sprintf("one of: %s", strings.Join(rule.Enum, ", "))
	case rule.Type == FieldTypeInt && (rule.Min != nil || rule.Max != nil):
		return "integer " + describeBounds(rule)
	case rule.Type == FieldTypeInt:
		return "integer"
	case rule.Type == FieldTypeStringList:
		return "list of strings"
	case rule.NonEmpty:
		return "non-empty string"
	default:
		return string(rule.Type)
	}
}

func describeBounds(rule FieldRule) string {
	switch {
	case rule.Min != nil && rule.Max != nil:
		return fmt.Sprintf("in %d..%d", *rule.Min, *rule.Max)
	case rule.Min != nil:
		return fmt.Sprintf(">= %d", *rule.Min)
	case rule.Max != nil:
		return fmt.Sprintf("<= %d", *rule.Max)
	default:
		return ""
	}
}

func describeValue(raw any) string {
	switch v := raw.(type) {
	case string:
		return fmt.Sprintf("'%s'", v)
	case []any:
		return fmt.Sprintf("list %v", v)
	case map[string]any:
		return "object"
	case bool:
		return fmt.Sprintf("bool %t", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
