package config

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyType is the value type a config key accepts on the command line.
type KeyType int

const (
	TypeBool KeyType = iota
	TypeInt
	TypeString
	TypeList
)

func (t KeyType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeString:
		return "string"
	case TypeList:
		return "list"
	default:
		return "unknown"
	}
}

// Key describes one settable configuration key.
type Key struct {
	Name        string
	Type        KeyType
	Description string
}

// keys is kept in the order `config keys` prints them.
var keys = []Key{
	{"content_dir", TypeString, "Directory holding sections/NN/lecture-NN content files"},
	{"extensions", TypeList, "File extensions treated as content (comma separated)"},
	{"jobs", TypeInt, "Files validated in parallel (0 = number of CPUs)"},
	{"strict", TypeBool, "Warn when sectionTitle or category disagree with the section registry"},
	{"warnings_as_errors", TypeBool, "Fail validation when strict mode reports warnings"},
	{"show_progress", TypeBool, "Show a spinner while validating on a terminal"},
	{"site.course_id", TypeInt, "Upstream course identifier"},
	{"site.title", TypeString, "Site title"},
	{"site.description", TypeString, "Site description"},
	{"site.total_sections", TypeInt, "Declared number of sections"},
	{"site.total_lectures", TypeInt, "Declared number of lectures"},
	{"site.total_quizzes", TypeInt, "Declared number of quizzes (0 skips the check)"},
}

// UnknownKeyError reports a key that is not in the key table.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return "unknown configuration key: " + e.Key
}

// Keys returns every known key.
func Keys() []Key {
	return append([]Key(nil), keys...)
}

// LookupKey returns the key named name.
func LookupKey(name string) (Key, error) {
	for _, k := range keys {
		if k.Name == name {
			return k, nil
		}
	}
	return Key{}, &UnknownKeyError{Key: name}
}

// Parse converts a command-line string into the key's type.
func (k Key) Parse(value string) (interface{}, error) {
	switch k.Type {
	case TypeBool:
		switch strings.ToLower(value) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, fmt.Errorf("invalid boolean: %q (expected true or false)", value)
	case TypeInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid integer: %q", value)
		}
		return n, nil
	case TypeList:
		var items []string
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			return nil, fmt.Errorf("invalid list: %q (expected comma separated values)", value)
		}
		return items, nil
	default:
		return value, nil
	}
}

// ParseValue looks up name and parses value for it.
func ParseValue(name, value string) (interface{}, error) {
	k, err := LookupKey(name)
	if err != nil {
		return nil, err
	}
	return k.Parse(value)
}
