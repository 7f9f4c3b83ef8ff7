package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cudacourse/coursekit/internal/cli/shared"
	"github.com/cudacourse/coursekit/internal/config"
	apperrors "github.com/cudacourse/coursekit/internal/errors"
	"github.com/cudacourse/coursekit/internal/mermaid"
)

var fixMermaidCmd = &cobra.Command{
	Use:   "fix-mermaid [paths...]",
	Short: "Quote mermaid labels that contain CJK text or punctuation",
	Long: `Quote node labels, arrow labels and subgraph names inside mermaid
code blocks when they contain Japanese or full-width text or characters
such as : = / + * ? < > that mermaid would otherwise parse as syntax.

Only fenced blocks opened with a mermaid info string are touched. Running
the fixer twice changes nothing the second time.`,
	Example: `  # Report which files would change
  coursekit fix-mermaid --dry-run

  # Fix one section
  coursekit fix-mermaid src/data/sections/07`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := shared.LoadConfig(cmd)
		if err != nil {
			return err
		}
		if len(args) == 0 {
			args = []string{cfg.ContentDir}
		}
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		return runFixMermaid(args, cfg, dryRun, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	fixMermaidCmd.GroupID = GroupAuthoring
	rootCmd.AddCommand(fixMermaidCmd)
	fixMermaidCmd.Flags().Bool("dry-run", false, "Report files that would change without writing them")
}

func runFixMermaid(paths []string, cfg *config.Configuration, dryRun bool, out, errOut io.Writer) error {
	res, err := mermaid.FixPaths(paths, cfg.Extensions, dryRun)
	if err != nil {
		if res == nil {
			apperrors.FprintError(errOut, apperrors.Wrap(err, apperrors.Argument))
			return NewExitError(ExitInvalidArguments)
		}
		return err
	}

	verb, total := "Fixed", "fixed"
	if dryRun {
		verb, total = "Would fix", "to fix"
	}
	for _, path := range res.Fixed {
		fmt.Fprintf(out, "%s: %s\n", verb, path)
	}
	fmt.Fprintf(out, "\nTotal files %s: %d/%d\n", total, len(res.Fixed), res.Scanned)
	return nil
}
