// Package mermaid quotes labels in mermaid diagrams embedded in content
// files so that CJK text and punctuation render instead of failing to parse.
package mermaid

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	blockPattern    = regexp.MustCompile("(?s)```mermaid\n(.*?)```")
	squarePattern   = regexp.MustCompile(`([\p{L}\p{N}_]+)\[([^\]"|]*?)\]`)
	diamondPattern  = regexp.MustCompile(`([\p{L}\p{N}_]+)\{([^}"|]*?)\}`)
	subgraphPattern = regexp.MustCompile(`^(\s*subgraph\s+)(.*?)$`)
	subgraphIDForm  = regexp.MustCompile(`^[\p{L}\p{N}_]+\[`)
)

// Lines that are left untouched after trimming.
var passthrough = map[string]bool{
	"graph TD":        true,
	"graph LR":        true,
	"graph TB":        true,
	"flowchart TD":    true,
	"flowchart LR":    true,
	"flowchart TB":    true,
	"sequenceDiagram": true,
	"classDiagram":    true,
	"end":             true,
}

const specialChars = ":=/+*?（）→←×✓<>"

// NeedsQuoting reports whether a label must be quoted: it holds CJK or
// full-width characters, or punctuation mermaid treats as syntax.
func NeedsQuoting(text string) bool {
	for _, r := range text {
		if (r >= 0x3000 && r <= 0x9FFF) || (r >= 0xFF00 && r <= 0xFFEF) {
			return true
		}
	}
	return strings.ContainsAny(text, specialChars)
}

func quote(text string) string {
	return `"` + strings.ReplaceAll(text, `"`, "'") + `"`
}

// FixLine quotes the subgraph name, arrow labels and node labels of one
// diagram line.
func FixLine(line string) string {
	stripped := strings.TrimFunc(line, unicode.IsSpace)
	if stripped == "" || passthrough[stripped] || strings.HasPrefix(stripped, "style ") {
		return line
	}

	if strings.HasPrefix(stripped, "subgraph") {
		line = fixSubgraph(line)
	}
	line = fixArrowLabels(line)
	line = mapUnquoted(line, func(seg string) string {
		return fixLabels(seg, squarePattern, "[", "]", true)
	})
	return mapUnquoted(line, func(seg string) string {
		return fixLabels(seg, diamondPattern, "{", "}", false)
	})
}

// fixArrowLabels quotes |label| pairs. Pipes inside double quotes do not
// count, so an already quoted label is never split.
func fixArrowLabels(line string) string {
	var b strings.Builder
	inQuote := false
	open, last := -1, 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuote = !inQuote
		case '|':
			if inQuote {
				continue
			}
			if open < 0 {
				open = i
				continue
			}
			label := line[open+1 : i]
			if !isQuoted(label) && NeedsQuoting(label) {
				b.WriteString(line[last : open+1])
				b.WriteString(quote(label))
				last = i
			}
			open = -1
		}
	}
	b.WriteString(line[last:])
	return b.String()
}

// mapUnquoted applies fn to the parts of line outside double quotes.
func mapUnquoted(line string, fn func(string) string) string {
	var b strings.Builder
	inQuote := false
	start := 0
	for i := 0; i < len(line); i++ {
		if line[i] != '"' {
			continue
		}
		if inQuote {
			b.WriteString(line[start:i])
		} else {
			b.WriteString(fn(line[start:i]))
		}
		b.WriteByte('"')
		inQuote = !inQuote
		start = i + 1
	}
	if inQuote {
		b.WriteString(line[start:])
	} else {
		b.WriteString(fn(line[start:]))
	}
	return b.String()
}

func isQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// fixLabels quotes ID<open>label<close> matches. With skipCall set, a
// label followed by "(" is left alone. Labels never contain a pipe, so
// quoting them does not change how arrow label pipes pair up.
func fixLabels(line string, re *regexp.Regexp, opening, closing string, skipCall bool) string {
	matches := re.FindAllStringSubmatchIndex(line, -1)
	if matches == nil {
		return line
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		id := line[m[2]:m[3]]
		label := line[m[4]:m[5]]
		b.WriteString(line[last:start])
		last = end

		if (skipCall && end < len(line) && line[end] == '(') || !NeedsQuoting(label) {
			b.WriteString(line[start:end])
			continue
		}
		b.WriteString(id + opening + quote(label) + closing)
	}
	b.WriteString(line[last:])
	return b.String()
}

func fixSubgraph(line string) string {
	m := subgraphPattern.FindStringSubmatch(line)
	if m == nil || strings.HasPrefix(m[2], `"`) {
		return line
	}
	name := strings.TrimSpace(m[2])
	if !NeedsQuoting(name) || subgraphIDForm.MatchString(name) {
		return line
	}
	return m[1] + quote(name)
}

// FixBlock fixes every line of a diagram body.
func FixBlock(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = FixLine(line)
	}
	return strings.Join(lines, "\n")
}

// Fix rewrites every ```mermaid block in src. It reports whether anything
// changed. Text outside mermaid blocks is never modified.
func Fix(src []byte) ([]byte, bool) {
	text := string(src)
	matches := blockPattern.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return src, false
	}

	var b strings.Builder
	changed := false
	last := 0
	for _, m := range matches {
		bodyStart, bodyEnd := m[2], m[3]
		body := text[bodyStart:bodyEnd]
		fixed := FixBlock(body)
		if fixed != body {
			changed = true
		}
		b.WriteString(text[last:bodyStart])
		b.WriteString(fixed)
		last = bodyEnd
	}
	if !changed {
		return src, false
	}
	b.WriteString(text[last:])
	return []byte(b.String()), true
}
