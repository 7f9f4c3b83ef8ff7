// Package frontmatter_test tests splitting, parsing and encoding of YAML front matter.
// Related: internal/frontmatter/frontmatter.go
// Tags: frontmatter, yaml, mdx, parsing
package frontmatter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input      string
		wantHeader string
		wantBody   string
		wantErr    error
	}{
		"simple": {
			input:      "---\ntitle: x\n---\n\n## Body\n",
			wantHeader: "title: x\n",
			wantBody:   "\n## Body\n",
		},
		"crlf delimiters": {
			input:      "---\r\ntitle: x\r\n---\r\nbody",
			wantHeader: "title: x\r\n",
			wantBody:   "body",
		},
		"closing delimiter at eof": {
			input:      "---\ntitle: x\n---",
			wantHeader: "title: x\n",
			wantBody:   "",
		},
		"empty header": {
			input:      "---\n---\nbody\n",
			wantHeader: "",
			wantBody:   "body\n",
		},
		"bom is ignored": {
			input:      "\xEF\xBB\xBF---\na: 1\n---\n",
			wantHeader: "a: 1\n",
			wantBody:   "",
		},
		"horizontal rule in body is kept": {
			input:      "---\na: 1\n---\ntext\n---\nmore\n",
			wantHeader: "a: 1\n",
			wantBody:   "text\n---\nmore\n",
		},
		"no front matter": {
			input:   "# Title\n",
			wantErr: ErrNoFrontMatter,
		},
		"unterminated": {
			input:   "---\ntitle: x\n",
			wantErr: ErrUnterminatedFrontMatter,
		},
		"only opening delimiter": {
			input:   "---",
			wantErr: ErrUnterminatedFrontMatter,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			header, body, offset, err := Split([]byte(tc.input))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantHeader, string(header))
			assert.Equal(t, tc.wantBody, string(body))
			assert.Equal(t, 1, offset)
		})
	}
}

func TestParse_RecordAndPositions(t *testing.T) {
	t.Parallel()

	input := "---\ntitle: \"S1-L1: GPU\"\nsectionNumber: 1\ntags: [a, b]\n---\nbody\n"
	doc, err := Parse([]byte(input))
	require.NoError(t, err)

	rec, err := doc.Record()
	require.NoError(t, err)
	assert.Equal(t, "S1-L1: GPU", rec["title"])
	assert.Equal(t, 1, rec["sectionNumber"])
	assert.Equal(t, []any{"a", "b"}, rec["tags"])
	assert.Equal(t, "body\n", string(doc.Body))

	line, col := doc.Position("sectionNumber")
	assert.Equal(t, 3, line)
	assert.Equal(t, 16, col)

	line, _ = doc.Position("missing")
	assert.Equal(t, 1, line)
}

func TestParse_EmptyHeaderIsEmptyRecord(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("---\n---\n"))
	require.NoError(t, err)

	rec, err := doc.Record()
	require.NoError(t, err)
	assert.Empty(t, rec)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("---\n- a\n- b\n---\n"))
	assert.ErrorIs(t, err, ErrNotMapping)

	_, err = Parse([]byte("---\ntitle: [unclosed\n---\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing front matter")
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	type header struct {
		Title string   `yaml:"title"`
		Order int      `yaml:"order"`
		Tags  []string `yaml:"tags"`
	}
	in := header{Title: "S2-L3: Install: nvcc", Order: 203, Tags: []string{"setup", "cuda"}}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, in, []byte("\n## 概要\n")))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("---\ntitle: ")))

	doc, err := Parse(buf.Bytes())
	require.NoError(t, err)
	var out header
	require.NoError(t, doc.Header.Decode(&out))
	assert.Equal(t, in, out)
	assert.Equal(t, "\n## 概要\n", string(doc.Body))
}
