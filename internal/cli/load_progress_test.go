package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cudacourse/coursekit/internal/catalog"
	"github.com/cudacourse/coursekit/internal/config"
	"github.com/cudacourse/coursekit/internal/progress"
	"github.com/cudacourse/coursekit/internal/testutil"
)

func TestStartLoadProgress_Disabled(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		enabled bool
		caps    progress.TerminalCapabilities
	}{
		"progress off":   {enabled: false, caps: progress.TerminalCapabilities{IsTTY: true}},
		"not a terminal": {enabled: true, caps: progress.TerminalCapabilities{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var opts catalog.Options
			display := startLoadProgress(tt.enabled, tt.caps, &bytes.Buffer{}, &opts)
			assert.Nil(t, display)
			assert.Nil(t, opts.Progress)
		})
	}
}

func TestRunValidate_ProgressSummary(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		files   map[string]string
		wantErr string
	}{
		"all valid": {
			files: map[string]string{
				"01/lecture-01.mdx": testutil.Lecture(1, 1),
				"01/lecture-02.mdx": testutil.Lecture(1, 2),
			},
			wantErr: "[OK] checked 2 files\n",
		},
		"one invalid": {
			files: map[string]string{
				"01/lecture-01.mdx": testutil.Lecture(1, 1),
				"01/lecture-02.mdx": "no front matter",
			},
			wantErr: "[FAIL] checked 2 files, 1 invalid\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			opts := validateOptions{
				Paths:        []string{testutil.WriteTree(t, tt.files)},
				ShowProgress: true,
				Terminal:     progress.TerminalCapabilities{IsTTY: true},
			}
			var out, errOut bytes.Buffer
			_ = runValidate(context.Background(), opts, &out, &errOut)

			assert.Contains(t, errOut.String(), tt.wantErr)
		})
	}
}

func TestRunValidate_JSONHidesProgress(t *testing.T) {
	t.Parallel()

	opts := validateOptions{
		Paths:        []string{testutil.WriteTree(t, map[string]string{"01/lecture-01.mdx": testutil.Lecture(1, 1)})},
		JSON:         true,
		ShowProgress: true,
		Terminal:     progress.TerminalCapabilities{IsTTY: true},
	}
	var out, errOut bytes.Buffer
	assert.NoError(t, runValidate(context.Background(), opts, &out, &errOut))
	assert.NotContains(t, errOut.String(), "checked")
}

func TestRunStats_ProgressSummary(t *testing.T) {
	t.Parallel()

	root := testutil.WriteTree(t, map[string]string{
		"01/lecture-01.mdx": testutil.Lecture(1, 1),
		"01/lecture-02.mdx": testutil.Lecture(1, 2),
		"01/lecture-03.mdx": testutil.Lecture(1, 3),
	})
	opts := statsOptions{
		Dir:          root,
		ShowProgress: true,
		Terminal:     progress.TerminalCapabilities{IsTTY: true},
	}

	var out, errOut bytes.Buffer
	assert.NoError(t, runStats(context.Background(), &config.Configuration{Extensions: []string{".mdx"}}, opts, &out, &errOut))
	assert.Contains(t, errOut.String(), "[OK] checked 3 files\n")
	assert.Contains(t, out.String(), "Total: 3 lectures")
}
