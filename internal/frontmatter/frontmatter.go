// Package frontmatter splits content files into a YAML header and an
// opaque body, and writes them back. The body is never interpreted.
package frontmatter

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is a parsed content file.
type Document struct {
	// Header is the root mapping node of the front matter.
	Header *yaml.Node
	// Body is everything after the closing delimiter, byte for byte.
	Body []byte
	// lineOffset converts header-relative node lines to file lines.
	lineOffset int
}

// Split separates the front matter from the body. The returned offset is
// the number of file lines preceding the first header line.
func Split(data []byte) (header, body []byte, offset int, err error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	first, rest, ok := cutLine(data)
	if !isDelimiter(first) {
		return nil, nil, 0, ErrNoFrontMatter
	}
	if !ok {
		return nil, nil, 0, ErrUnterminatedFrontMatter
	}

	start := len(data) - len(rest)
	pos := start
	for {
		line, after, more := cutLine(data[pos:])
		if isDelimiter(line) {
			header = data[start:pos]
			body = data[len(data)-len(after):]
			if !more {
				body = nil
			}
			return header, body, 1, nil
		}
		if !more {
			return nil, nil, 0, ErrUnterminatedFrontMatter
		}
		pos = len(data) - len(after)
	}
}

// Parse splits data and decodes the header into a YAML node tree.
// An empty header yields an empty mapping.
func Parse(data []byte) (*Document, error) {
	header, body, offset, err := Split(data)
	if err != nil {
		return nil, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(header, &root); err != nil {
		return nil, fmt.Errorf("parsing front matter: %w", err)
	}

	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Line: 1, Column: 1}
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		mapping = root.Content[0]
	}
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: got %s", ErrNotMapping, kindName(mapping.Kind))
	}

	return &Document{Header: mapping, Body: body, lineOffset: offset}, nil
}

// Record decodes the header into a loosely typed key-value record.
func (d *Document) Record() (map[string]any, error) {
	rec := make(map[string]any)
	if d.Header == nil || len(d.Header.Content) == 0 {
		return rec, nil
	}
	if err := d.Header.Decode(&rec); err != nil {
		return nil, fmt.Errorf("decoding front matter: %w", err)
	}
	return rec, nil
}

// Position returns the file line and column of key's value, or of the
// header itself when the key is absent. Zero means unknown.
func (d *Document) Position(key string) (line, column int) {
	if d.Header == nil {
		return 0, 0
	}
	for i := 0; i+1 < len(d.Header.Content); i += 2 {
		if d.Header.Content[i].Value == key {
			v := d.Header.Content[i+1]
			return v.Line + d.lineOffset, v.Column
		}
	}
	return d.lineOffset, 1
}

// Encode writes v as a front matter header followed by body.
func Encode(w io.Writer, v any, body []byte) error {
	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding front matter: %w", err)
	}

	buf.WriteString(delimiter + "\n")
	buf.Write(body)

	_, err := w.Write(buf.Bytes())
	return err
}

// cutLine returns the first line of data without its terminator, the
// remainder, and whether a terminator was found.
func cutLine(data []byte) (line, rest []byte, ok bool) {
	i := bytes.IndexByte(data, '\n')
	if i < 0 {
		return data, nil, false
	}
	return data[:i], data[i+1:], true
}

func isDelimiter(line []byte) bool {
	return string(bytes.TrimRight(line, " \t\r")) == delimiter
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.SequenceNode:
		return "array"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "unknown"
	}
}
