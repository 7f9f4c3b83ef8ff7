// Package integration_test tests hierarchical configuration loading and merging behavior.
// Related: internal/config/config.go
// Tags: integration, config, hierarchical, env-vars, json

package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cudacourse/coursekit/internal/config"
	"github.com/cudacourse/coursekit/internal/testutil"
)

// TestHierarchicalConfigLoading loads user, project and environment
// layers together.
func TestHierarchicalConfigLoading(t *testing.T) {
	tests := map[string]struct {
		userConfig     string
		projectConfig  string
		envVars        map[string]string
		wantJobs       int
		wantContentDir string
		wantLectures   int
	}{
		"defaults only": {
			wantJobs:       0,
			wantContentDir: "src/data/sections",
			wantLectures:   60,
		},
		"user config": {
			userConfig:     `{"jobs": 2, "site": {"total_lectures": 61}}`,
			wantJobs:       2,
			wantContentDir: "src/data/sections",
			wantLectures:   61,
		},
		"project overrides user": {
			userConfig:     `{"jobs": 2, "content_dir": "user/sections"}`,
			projectConfig:  `{"jobs": 6}`,
			wantJobs:       6,
			wantContentDir: "user/sections",
			wantLectures:   60,
		},
		"env var override": {
			projectConfig: `{"jobs": 6}`,
			envVars: map[string]string{
				"COURSEKIT_JOBS":                 "9",
				"COURSEKIT_SITE__TOTAL_LECTURES": "64",
			},
			wantJobs:       9,
			wantContentDir: "src/data/sections",
			wantLectures:   64,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			home := testutil.IsolateConfig(t)
			if tc.userConfig != "" {
				testutil.WriteFile(t, filepath.Join(home, ".coursekit", "config.json"), tc.userConfig)
			}

			projectPath := filepath.Join(t.TempDir(), ".coursekit", "config.json")
			if tc.projectConfig != "" {
				testutil.WriteFile(t, projectPath, tc.projectConfig)
			}

			for key, value := range tc.envVars {
				t.Setenv(key, value)
			}

			cfg, err := config.Load(projectPath)
			require.NoError(t, err)

			assert.Equal(t, tc.wantJobs, cfg.Jobs)
			assert.Equal(t, tc.wantContentDir, cfg.ContentDir)
			assert.Equal(t, tc.wantLectures, cfg.Site.TotalLectures)
		})
	}
}

// TestSetValueRoundTrip writes through SetValue and reads the result back
// through the full layering.
func TestSetValueRoundTrip(t *testing.T) {
	testutil.IsolateConfig(t)
	projectPath := filepath.Join(t.TempDir(), ".coursekit", "config.json")

	require.NoError(t, config.SetValue(projectPath, "strict", "TRUE"))
	require.NoError(t, config.SetValue(projectPath, "site.total_quizzes", "12"))
	require.Error(t, config.SetValue(projectPath, "extensions", "mdx"))

	cfg, err := config.Load(projectPath)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 12, cfg.Site.TotalQuizzes)
	assert.Equal(t, []string{".mdx", ".md"}, cfg.Extensions)
}
