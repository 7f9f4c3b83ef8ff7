package shared

import (
	"encoding/json"
	"io"

	"github.com/fatih/color"
)

// Colored markers used in command output.
var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// OK returns a green check mark.
func OK() string { return green("✓") }

// Fail returns a red cross.
func Fail() string { return red("✗") }

// Warn returns a yellow exclamation mark.
func Warn() string { return yellow("!") }

// Yellow colors s yellow.
func Yellow(s string) string { return yellow(s) }

// WriteJSON writes v as indented JSON without HTML escaping, so Japanese
// text and <, > stay readable.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
