package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cudacourse/coursekit/internal/catalog"
	"github.com/cudacourse/coursekit/internal/cli/shared"
	"github.com/cudacourse/coursekit/internal/config"
	apperrors "github.com/cudacourse/coursekit/internal/errors"
	"github.com/cudacourse/coursekit/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats [dir]",
	Short: "Summarise lectures per section and check for duplicates",
	Long: `Summarise the content directory: lectures per section, duplicate
(section, lecture) pairs, duplicate order values, and a comparison with the
course totals declared in the site config.

Entries tagged "quiz" are counted as quizzes. Invalid files are skipped;
run 'coursekit validate' to see why.

Exit Codes:
  0 - No duplicates and counts match the declared totals
  1 - Duplicates or count mismatches found
  3 - Invalid arguments`,
	Args: shared.Args(cobra.MaximumNArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := shared.LoadConfig(cmd)
		if err != nil {
			return err
		}
		opts := statsOptions{
			Dir:          cfg.ContentDir,
			ShowProgress: cfg.ShowProgress,
			Terminal:     progress.DetectTerminalCapabilities(),
		}
		if len(args) == 1 {
			opts.Dir = args[0]
		}
		opts.JSON, _ = cmd.Flags().GetBool("json")
		return runStats(cmd.Context(), cfg, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	statsCmd.GroupID = GroupContent
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().Bool("json", false, "Print statistics as JSON")
}

type statsOptions struct {
	Dir          string
	JSON         bool
	ShowProgress bool
	Terminal     progress.TerminalCapabilities
}

func runStats(ctx context.Context, cfg *config.Configuration, opts statsOptions, out, errOut io.Writer) error {
	dir := opts.Dir
	if _, err := os.Stat(dir); err != nil {
		apperrors.FprintError(errOut, apperrors.ContentDirNotFound(dir))
		return NewExitError(ExitInvalidArguments)
	}

	loadOpts := catalog.Options{Jobs: cfg.Jobs, Extensions: cfg.Extensions}
	display := startLoadProgress(opts.ShowProgress && !opts.JSON, opts.Terminal, errOut, &loadOpts)
	report, err := catalog.Load(ctx, dir, loadOpts)
	finishLoadProgress(display, report, err)
	if err != nil {
		if errors.Is(err, catalog.ErrNoContent) {
			apperrors.FprintError(errOut, apperrors.NoContentFiles(dir, extensionsOrDefault(cfg.Extensions)))
			return NewExitError(ExitInvalidArguments)
		}
		return err
	}

	stats := catalog.ComputeStats(report.Lectures(), catalog.Totals{
		Sections: cfg.Site.TotalSections,
		Lectures: cfg.Site.TotalLectures,
		Quizzes:  cfg.Site.TotalQuizzes,
	})

	if opts.JSON {
		if err := shared.WriteJSON(out, stats); err != nil {
			return err
		}
	} else {
		printStats(stats, report, out, errOut)
	}

	if !stats.Clean() {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

func printStats(stats *catalog.Stats, report *catalog.Report, out, errOut io.Writer) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSECTION\tLECTURES\tQUIZZES")
	for _, s := range stats.Sections {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", s.Number, s.Title, s.Lectures, s.Quizzes)
	}
	tw.Flush()
	fmt.Fprintf(out, "\nTotal: %d lectures, %d quizzes\n", stats.Lectures, stats.Quizzes)

	if n := report.Invalid(); n > 0 {
		fmt.Fprintf(errOut, "%s %d invalid file(s) skipped\n", shared.Warn(), n)
	}
	for _, d := range stats.DuplicateKeys {
		fmt.Fprintf(errOut, "%s duplicate %s: %s\n", shared.Fail(), d.Key, strings.Join(d.Paths, ", "))
	}
	for _, d := range stats.DuplicateOrders {
		fmt.Fprintf(errOut, "%s duplicate %s: %s\n", shared.Fail(), d.Key, strings.Join(d.Paths, ", "))
	}
	for _, m := range stats.Mismatches {
		fmt.Fprintf(errOut, "%s %s\n", shared.Fail(), m)
	}
	if stats.Clean() {
		fmt.Fprintf(out, "%s no duplicates, totals match\n", shared.OK())
	}
}
