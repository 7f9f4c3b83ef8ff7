package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cudacourse/coursekit/internal/testutil"
)

func TestRunValidate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		files      map[string]string
		opts       validateOptions
		wantCode   int
		wantOut    string
		wantErrOut string
	}{
		"all valid": {
			files: map[string]string{
				"01/lecture-01.mdx": testutil.Lecture(1, 1, testutil.WithTitle("Welcome")),
				"01/lecture-02.mdx": testutil.Lecture(1, 2, testutil.WithTitle("Hardware")),
			},
			wantCode: ExitSuccess,
			wantOut:  "✓ 2 files valid",
		},
		"one invalid": {
			files: map[string]string{
				"01/lecture-01.mdx": testutil.Lecture(1, 1, testutil.WithTitle("Welcome")),
				"01/lecture-02.mdx": "---\ntitle: \"\"\n---\n",
			},
			wantCode:   ExitValidationFailed,
			wantOut:    "✗ 1 of 2 files invalid",
			wantErrOut: "lecture-02.mdx has",
		},
		"strict warnings pass by default": {
			files: map[string]string{
				"01/lecture-01.mdx": testutil.Lecture(1, 1, testutil.WithTitle("Welcome")),
			},
			opts:       validateOptions{Strict: true},
			wantCode:   ExitSuccess,
			wantOut:    "warning(s)",
			wantErrOut: "sectionTitle",
		},
		"strict warnings as errors": {
			files: map[string]string{
				"01/lecture-01.mdx": testutil.Lecture(1, 1, testutil.WithTitle("Welcome")),
			},
			opts:     validateOptions{Strict: true, WarningsAsErrors: true},
			wantCode: ExitValidationFailed,
		},
		"no content files": {
			files: map[string]string{
				"notes.txt": "x",
			},
			wantCode:   ExitInvalidArguments,
			wantErrOut: "no content files",
		},
		"negative jobs": {
			files: map[string]string{
				"01/lecture-01.mdx": testutil.Lecture(1, 1, testutil.WithTitle("Welcome")),
			},
			opts:       validateOptions{Jobs: -1},
			wantCode:   ExitInvalidArguments,
			wantErrOut: "invalid --jobs value",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			opts := tt.opts
			opts.Paths = []string{testutil.WriteTree(t, tt.files)}

			var out, errOut bytes.Buffer
			err := runValidate(context.Background(), opts, &out, &errOut)

			assert.Equal(t, tt.wantCode, ExitCode(err))
			assert.Contains(t, out.String(), tt.wantOut)
			assert.Contains(t, errOut.String(), tt.wantErrOut)
		})
	}
}

func TestRunValidate_MissingPath(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	opts := validateOptions{Paths: []string{filepath.Join(t.TempDir(), "absent")}}
	err := runValidate(context.Background(), opts, &out, &errOut)

	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
	assert.Contains(t, errOut.String(), "absent")
}

func TestRunValidate_JSON(t *testing.T) {
	t.Parallel()

	root := testutil.WriteTree(t, map[string]string{
		"01/lecture-01.mdx": testutil.Lecture(1, 1, testutil.WithTitle("Welcome")),
		"01/lecture-02.mdx": "---\ntitle: \"S1-L2: Broken\"\nsectionNumber: 13\n---\n",
	})

	var out, errOut bytes.Buffer
	err := runValidate(context.Background(), validateOptions{Paths: []string{root}, JSON: true}, &out, &errOut)
	assert.Equal(t, ExitValidationFailed, ExitCode(err))

	var report validateReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.False(t, report.OK)
	assert.Equal(t, 2, report.Files)
	assert.Equal(t, 1, report.Valid)
	assert.Equal(t, 1, report.Invalid)
	require.Len(t, report.Results, 2)
	assert.True(t, report.Results[0].Valid)
	assert.False(t, report.Results[1].Valid)
	assert.NotEmpty(t, report.Results[1].Errors)
	assert.Empty(t, errOut.String())
}
