// Package catalog discovers content files under a directory tree and
// validates them concurrently.
package catalog

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/cudacourse/coursekit/internal/content"
)

// Options control a catalog load.
type Options struct {
	// Jobs bounds the number of files validated at once. 0 means GOMAXPROCS.
	Jobs       int
	Extensions []string
	Strict     bool
	// Progress, if set, is called after each file with the number of
	// files finished so far. It may be called from several goroutines.
	Progress func(done, total int)
}

// Load validates every content file under root.
func Load(ctx context.Context, root string, opts Options) (*Report, error) {
	return LoadPaths(ctx, []string{root}, opts)
}

// LoadPaths validates the content files named by paths, which may mix
// files and directories. A file that fails validation never stops the
// others; the returned error is reserved for discovery failures and
// context cancellation.
func LoadPaths(ctx context.Context, paths []string, opts Options) (*Report, error) {
	files, err := Discover(paths, opts.Extensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoContent
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	slog.Debug("validating content", "files", len(files), "jobs", jobs, "strict", opts.Strict)

	validator := &content.Validator{Strict: opts.Strict}
	results := make([]*content.FileResult, len(files))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Invalid files are results, not errors.
			results[i] = validator.ValidateFile(path)
			if opts.Progress != nil {
				opts.Progress(int(done.Add(1)), len(files))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Cancelled before any worker was scheduled.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Report{Files: results}, nil
}
