package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cudacourse/coursekit/internal/catalog"
	"github.com/cudacourse/coursekit/internal/cli/shared"
	"github.com/cudacourse/coursekit/internal/content"
	apperrors "github.com/cudacourse/coursekit/internal/errors"
	"github.com/cudacourse/coursekit/internal/progress"
)

var validateCmd = &cobra.Command{
	Use:   "validate [paths...]",
	Short: "Validate lecture front matter against the content schema",
	Long: `Validate lecture front matter against the content schema.

Paths may be files or directories; directories are searched recursively
for content files (see the extensions config key), skipping hidden
directories. With no paths the configured content directory is used.

Every field violation is reported with its line and column. With --strict
the sectionTitle and category of each entry are also compared with the
section registry and mismatches are reported as warnings.

Exit Codes:
  0 - All files valid
  1 - At least one file invalid (or warnings with --warnings-as-errors)
  3 - Invalid arguments (missing path, no content files, bad config)`,
	Example: `  # Validate the configured content directory
  coursekit validate

  # Validate a single lecture with registry cross-checks
  coursekit validate src/data/sections/03/lecture-02.mdx --strict

  # Machine-readable output
  coursekit validate --json > report.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := shared.LoadConfig(cmd)
		if err != nil {
			return err
		}

		opts := validateOptions{
			Paths:            args,
			Extensions:       cfg.Extensions,
			Jobs:             cfg.Jobs,
			Strict:           cfg.Strict,
			WarningsAsErrors: cfg.WarningsAsErrors,
			ShowProgress:     cfg.ShowProgress,
			Terminal:         progress.DetectTerminalCapabilities(),
		}
		if len(opts.Paths) == 0 {
			opts.Paths = []string{cfg.ContentDir}
		}
		if cmd.Flags().Changed("strict") {
			opts.Strict, _ = cmd.Flags().GetBool("strict")
		}
		if cmd.Flags().Changed("warnings-as-errors") {
			opts.WarningsAsErrors, _ = cmd.Flags().GetBool("warnings-as-errors")
		}
		if cmd.Flags().Changed("jobs") {
			opts.Jobs, _ = cmd.Flags().GetInt("jobs")
		}
		opts.JSON, _ = cmd.Flags().GetBool("json")

		return runValidate(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	validateCmd.GroupID = GroupContent
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("strict", false, "Cross-check sectionTitle and category against the section registry")
	validateCmd.Flags().Bool("warnings-as-errors", false, "Exit non-zero when strict checks report warnings")
	validateCmd.Flags().IntP("jobs", "j", 0, "Files validated in parallel (0 = number of CPUs)")
	validateCmd.Flags().Bool("json", false, "Print results as JSON")
}

type validateOptions struct {
	Paths            []string
	Extensions       []string
	Jobs             int
	Strict           bool
	WarningsAsErrors bool
	JSON             bool
	ShowProgress     bool
	Terminal         progress.TerminalCapabilities
}

// runValidate validates the content files under opts.Paths.
func runValidate(ctx context.Context, opts validateOptions, out, errOut io.Writer) error {
	if opts.Jobs < 0 {
		apperrors.FprintError(errOut, apperrors.NewArgumentError(
			fmt.Sprintf("invalid --jobs value: %d", opts.Jobs), "Use 0 for one job per CPU"))
		return NewExitError(ExitInvalidArguments)
	}
	for _, path := range opts.Paths {
		if _, err := os.Stat(path); err != nil {
			apperrors.FprintError(errOut, apperrors.ContentDirNotFound(path))
			return NewExitError(ExitInvalidArguments)
		}
	}

	loadOpts := catalog.Options{Jobs: opts.Jobs, Extensions: opts.Extensions, Strict: opts.Strict}

	display := startLoadProgress(opts.ShowProgress && !opts.JSON, opts.Terminal, errOut, &loadOpts)
	report, err := catalog.LoadPaths(ctx, opts.Paths, loadOpts)
	finishLoadProgress(display, report, err)
	if err != nil {
		if errors.Is(err, catalog.ErrNoContent) {
			apperrors.FprintError(errOut, apperrors.NoContentFiles(strings.Join(opts.Paths, ", "), extensionsOrDefault(opts.Extensions)))
			return NewExitError(ExitInvalidArguments)
		}
		return err
	}

	if opts.JSON {
		if err := shared.WriteJSON(out, newValidateReport(report, opts.WarningsAsErrors)); err != nil {
			return err
		}
	} else {
		printValidateReport(report, out, errOut)
	}

	if !report.OK(opts.WarningsAsErrors) {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

func extensionsOrDefault(exts []string) []string {
	if len(exts) == 0 {
		return catalog.DefaultExtensions
	}
	return exts
}

func printValidateReport(report *catalog.Report, out, errOut io.Writer) {
	for _, f := range report.Files {
		if !f.Result.Valid {
			fmt.Fprintf(errOut, "%s %s has %d error(s)\n", shared.Fail(), f.Path, len(f.Result.Errors))
			for _, ve := range f.Result.Errors {
				fmt.Fprint(errOut, ve.FormatFull())
			}
			fmt.Fprintln(errOut)
		}
		for _, w := range f.Result.Warnings {
			fmt.Fprintf(errOut, "%s %s: %s\n", shared.Warn(), f.Path, w.Error())
		}
	}

	total := len(report.Files)
	switch {
	case report.Invalid() > 0:
		fmt.Fprintf(out, "%s %d of %d files invalid\n", shared.Fail(), report.Invalid(), total)
	case report.Warnings() > 0:
		fmt.Fprintf(out, "%s %d files valid, %d warning(s)\n", shared.OK(), total, report.Warnings())
	default:
		fmt.Fprintf(out, "%s %d files valid\n", shared.OK(), total)
	}
}

type validateReport struct {
	OK       bool                 `json:"ok"`
	Files    int                  `json:"files"`
	Valid    int                  `json:"valid"`
	Invalid  int                  `json:"invalid"`
	Warnings int                  `json:"warnings"`
	Results  []validateFileResult `json:"results"`
}

type validateFileResult struct {
	Path     string             `json:"path"`
	Valid    bool               `json:"valid"`
	Errors   []validateJSONItem `json:"errors,omitempty"`
	Warnings []validateJSONItem `json:"warnings,omitempty"`
}

type validateJSONItem struct {
	Field    string `json:"field,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Message  string `json:"message"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
}

func newValidateReport(report *catalog.Report, warningsAsErrors bool) validateReport {
	out := validateReport{
		OK:       report.OK(warningsAsErrors),
		Files:    len(report.Files),
		Valid:    report.Valid(),
		Invalid:  report.Invalid(),
		Warnings: report.Warnings(),
		Results:  make([]validateFileResult, 0, len(report.Files)),
	}
	for _, f := range report.Files {
		out.Results = append(out.Results, validateFileResult{
			Path:     f.Path,
			Valid:    f.Result.Valid,
			Errors:   jsonItems(f.Result.Errors),
			Warnings: jsonItems(f.Result.Warnings),
		})
	}
	return out
}

func jsonItems(list []*content.ValidationError) []validateJSONItem {
	items := make([]validateJSONItem, 0, len(list))
	for _, ve := range list {
		items = append(items, validateJSONItem{
			Field:    ve.Field,
			Line:     ve.Line,
			Column:   ve.Column,
			Message:  ve.Message,
			Expected: ve.Expected,
			Actual:   ve.Actual,
		})
	}
	return items
}
