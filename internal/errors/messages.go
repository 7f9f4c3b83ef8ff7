package errors

import "fmt"

// ContentDirNotFound reports a missing content directory.
func ContentDirNotFound(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("content directory not found: %s", path),
		"Pass the directory explicitly: coursekit validate <dir>",
		"Or set content_dir in .coursekit/config.json",
		"Or export COURSEKIT_CONTENT_DIR",
	)
}

// NoContentFiles reports a directory with nothing to validate.
func NoContentFiles(path string, extensions []string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("no content files (%v) found under %s", extensions, path),
		"Check that the path points at the sections directory",
		"Generate skeletons with: coursekit generate --lectures data/video_lectures.json",
	)
}

// ConfigParseError reports a config file that could not be loaded.
func ConfigParseError(path string, err error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("failed to load config %s: %v", path, err),
		Err:      err,
		Remediation: []string{
			"Check the file is valid JSON",
			"List the accepted keys with: coursekit config keys",
		},
	}
}

// InvalidSectionNumber reports a section argument outside the course.
func InvalidSectionNumber(arg string, first, last int) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid section number: %s", arg),
		"coursekit sections [number]",
		fmt.Sprintf("Use a number from %d to %d", first, last),
	)
}

// LecturesFileNotFound reports a missing video lecture list.
func LecturesFileNotFound(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("video lecture list not found: %s", path),
		"Create it from a curriculum dump: coursekit curriculum data/curriculum.json --out data",
	)
}

// FileNotWritable reports an output path that could not be written.
func FileNotWritable(path string, err error) *CLIError {
	return &CLIError{
		Category:    Runtime,
		Message:     fmt.Sprintf("cannot write %s: %v", path, err),
		Err:         err,
		Remediation: []string{"Check the directory exists and you have write permission"},
	}
}
