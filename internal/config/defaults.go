package config

import "github.com/cudacourse/coursekit/internal/course"

// DefaultLocalConfigPath is the project-level config file.
const DefaultLocalConfigPath = ".coursekit/config.json"

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"content_dir":         "src/data/sections",
		"extensions":          []string{".mdx", ".md"},
		"jobs":                0,
		"strict":              false,
		"warnings_as_errors":  false,
		"show_progress":       true,
		"site.course_id":      4267614,
		"site.title":          "CUDA Programming Course Notes",
		"site.description":    "Section-by-section notes for a GPU programming course with CUDA",
		"site.total_sections": course.SectionCount,
		"site.total_lectures": 60,
		"site.total_quizzes":  0,
	}
}
