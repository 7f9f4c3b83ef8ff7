package mermaid

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cudacourse/coursekit/internal/catalog"
)

// Result summarises a run over a set of files.
type Result struct {
	Scanned int
	Fixed   []string
}

// FixFile fixes the mermaid blocks of one file in place. With dryRun set
// the file is only inspected.
func FixFile(path string, dryRun bool) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	fixed, changed := Fix(data)
	if !changed || dryRun {
		return changed, nil
	}
	if err := os.WriteFile(path, fixed, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	slog.Debug("fixed mermaid labels", "path", path)
	return true, nil
}

// FixPaths fixes every content file under paths.
func FixPaths(paths, extensions []string, dryRun bool) (*Result, error) {
	files, err := catalog.Discover(paths, extensions)
	if err != nil {
		return nil, err
	}

	res := &Result{Scanned: len(files)}
	for _, path := range files {
		changed, err := FixFile(path, dryRun)
		if err != nil {
			return res, err
		}
		if changed {
			res.Fixed = append(res.Fixed, path)
		}
	}
	return res, nil
}
