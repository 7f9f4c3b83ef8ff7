package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfgpkg "github.com/cudacourse/coursekit/internal/config"
	apperrors "github.com/cudacourse/coursekit/internal/errors"
	"github.com/cudacourse/coursekit/internal/testutil"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestRegister(t *testing.T) {
	root := &cobra.Command{Use: "test"}
	require.NotPanics(t, func() { Register(root) })

	var found *cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Name() == "config" {
			found = cmd
		}
	}
	require.NotNil(t, found, "Should have 'config' command")

	subcommands := make(map[string]bool)
	for _, cmd := range found.Commands() {
		subcommands[cmd.Name()] = true
	}
	for _, name := range []string{"show", "get", "set", "keys"} {
		assert.True(t, subcommands[name], "Should have 'config %s' subcommand", name)
	}
}

func TestRunConfigSetThenGet(t *testing.T) {
	testutil.IsolateConfig(t)
	path := filepath.Join(t.TempDir(), ".coursekit", "config.json")

	var out bytes.Buffer
	require.NoError(t, runConfigSet(path, "project", "jobs", "8", &out))
	assert.Contains(t, out.String(), "Set jobs = 8 in project config")

	out.Reset()
	require.NoError(t, runConfigSet(path, "project", "extensions", ".md, .mdx", &out))

	out.Reset()
	require.NoError(t, runConfigGet(path, "jobs", &out))
	assert.Equal(t, "jobs: 8\n", out.String())

	out.Reset()
	require.NoError(t, runConfigGet(path, "extensions", &out))
	assert.Equal(t, "extensions: .md,.mdx\n", out.String())

	cfg, err := cfgpkg.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Jobs)
	assert.Equal(t, []string{".md", ".mdx"}, cfg.Extensions)
}

func TestRunConfigSet_Errors(t *testing.T) {
	testutil.IsolateConfig(t)

	tests := map[string]struct {
		key      string
		value    string
		category apperrors.ErrorCategory
	}{
		"unknown key": {
			key:      "colour",
			value:    "red",
			category: apperrors.Argument,
		},
		"not an integer": {
			key:      "jobs",
			value:    "many",
			category: apperrors.Configuration,
		},
		"fails validation": {
			key:      "jobs",
			value:    "1000",
			category: apperrors.Configuration,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")

			var out bytes.Buffer
			err := runConfigSet(path, "project", tt.key, tt.value, &out)
			require.Error(t, err)

			cliErr := apperrors.AsCLIError(err)
			require.NotNil(t, cliErr)
			assert.Equal(t, tt.category, cliErr.Category)
			assert.NoFileExists(t, path)
		})
	}
}

func TestRunConfigGet_Default(t *testing.T) {
	testutil.IsolateConfig(t)
	path := filepath.Join(t.TempDir(), "missing.json")

	var out bytes.Buffer
	require.NoError(t, runConfigGet(path, "site.total_lectures", &out))
	assert.Equal(t, "site.total_lectures: 60\n", out.String())
}

func TestRunConfigShow(t *testing.T) {
	t.Parallel()

	cfg := &cfgpkg.Configuration{
		ContentDir: "src/data/sections",
		Extensions: []string{".mdx"},
		Jobs:       4,
		Site:       cfgpkg.SiteConfig{Title: "Notes", TotalSections: 12},
	}

	tests := map[string]struct {
		asJSON bool
		want   []string
	}{
		"table": {
			asJSON: false,
			want:   []string{"content_dir", "src/data/sections", "site.total_sections", "12"},
		},
		"json": {
			asJSON: true,
			want:   []string{`"content_dir": "src/data/sections"`, `"jobs": 4`, `"title": "Notes"`},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			require.NoError(t, runConfigShow(cfg, tt.asJSON, &out))
			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestRunConfigKeys(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, runConfigKeys(&out))

	for _, key := range cfgpkg.Keys() {
		assert.Contains(t, out.String(), key.Name)
	}
	assert.Contains(t, out.String(), "KEY")
}
