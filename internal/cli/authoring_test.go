package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cudacourse/coursekit/internal/generate"
)

const curriculumFixture = "../curriculum/testdata/curriculum.json"

// Curriculum dump to data files to skeletons, which must then validate
// cleanly, registry cross-checks included.
func TestCurriculumGenerateValidate(t *testing.T) {
	t.Parallel()

	dataDir := filepath.Join(t.TempDir(), "data")
	siteDir := filepath.Join(t.TempDir(), "site")

	var out, errOut bytes.Buffer
	require.NoError(t, runCurriculum(curriculumFixture, dataDir, &out, &errOut))
	assert.Contains(t, out.String(), "7 items")
	assert.Contains(t, out.String(), "3 video lectures")
	assert.Contains(t, out.String(), "Section 1: Introduction to the Nvidia GPUs hardware (4 items)")
	assert.Contains(t, out.String(), "Section 2: Installing CUDA and other programs (3 items)")

	out.Reset()
	lectures := filepath.Join(dataDir, "video_lectures.json")
	require.NoError(t, runGenerate(lectures, generate.Options{OutDir: siteDir}, &out, &errOut))
	assert.Contains(t, out.String(), "Generated 3 of 3 lecture files")
	assert.FileExists(t, filepath.Join(siteDir, "sections", "01", "lecture-01.mdx"))
	assert.FileExists(t, filepath.Join(siteDir, "sections", "01", "lecture-04.mdx"))
	assert.FileExists(t, filepath.Join(siteDir, "sections", "02", "lecture-01.mdx"))

	out.Reset()
	opts := validateOptions{Paths: []string{siteDir}, Strict: true, WarningsAsErrors: true}
	require.NoError(t, runValidate(context.Background(), opts, &out, &errOut))
	assert.Contains(t, out.String(), "3 files valid")
	assert.Empty(t, errOut.String())
}

func TestRunGenerate_SkipsExisting(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	siteDir := t.TempDir()

	var out, errOut bytes.Buffer
	require.NoError(t, runCurriculum(curriculumFixture, dataDir, &out, &errOut))

	existing := filepath.Join(siteDir, "sections", "01", "lecture-01.mdx")
	require.NoError(t, os.MkdirAll(filepath.Dir(existing), 0o755))
	require.NoError(t, os.WriteFile(existing, []byte("hand written"), 0o644))

	out.Reset()
	lectures := filepath.Join(dataDir, "video_lectures.json")
	require.NoError(t, runGenerate(lectures, generate.Options{OutDir: siteDir}, &out, &errOut))
	assert.Contains(t, out.String(), "use --force to overwrite")
	assert.Contains(t, out.String(), "Generated 2 of 3 lecture files")

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "hand written", string(data))

	out.Reset()
	require.NoError(t, runGenerate(lectures, generate.Options{OutDir: siteDir, Force: true}, &out, &errOut))
	assert.Contains(t, out.String(), "overwritten")
	assert.Contains(t, out.String(), "Generated 3 of 3 lecture files")
}

func TestAuthoringCommands_BadInput(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		run        func(dir string, out, errOut *bytes.Buffer) error
		wantErrOut string
	}{
		"missing curriculum": {
			run: func(dir string, out, errOut *bytes.Buffer) error {
				return runCurriculum(filepath.Join(dir, "absent.json"), dir, out, errOut)
			},
			wantErrOut: "curriculum file not found",
		},
		"curriculum without results": {
			run: func(dir string, out, errOut *bytes.Buffer) error {
				path := filepath.Join(dir, "empty.json")
				if err := os.WriteFile(path, []byte(`{"count": 0}`), 0o644); err != nil {
					return err
				}
				return runCurriculum(path, dir, out, errOut)
			},
			wantErrOut: "no results",
		},
		"missing lectures file": {
			run: func(dir string, out, errOut *bytes.Buffer) error {
				return runGenerate(filepath.Join(dir, "absent.json"), generate.Options{OutDir: dir}, out, errOut)
			},
			wantErrOut: "absent.json",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out, errOut bytes.Buffer
			err := tt.run(t.TempDir(), &out, &errOut)
			assert.Equal(t, ExitInvalidArguments, ExitCode(err))
			assert.Contains(t, errOut.String(), tt.wantErrOut)
		})
	}
}
