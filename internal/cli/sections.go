package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cudacourse/coursekit/internal/cli/shared"
	"github.com/cudacourse/coursekit/internal/course"
	apperrors "github.com/cudacourse/coursekit/internal/errors"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections [number]",
	Short: "Print the section registry",
	Long: `Print the section registry: the title, category and default
difficulty of each course section.

The JSON form is what the site build consumes.`,
	Example: `  # Table of all sections
  coursekit sections

  # One section
  coursekit sections 7

  # JSON for the site build
  coursekit sections --json`,
	Args: shared.Args(cobra.MaximumNArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		return runSections(args, asJSON, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	sectionsCmd.GroupID = GroupContent
	rootCmd.AddCommand(sectionsCmd)
	sectionsCmd.Flags().Bool("json", false, "Print the registry as JSON")
}

func runSections(args []string, asJSON bool, out, errOut io.Writer) error {
	sections := course.Sections()

	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || !course.InRange(n) {
			apperrors.FprintError(errOut, apperrors.InvalidSectionNumber(args[0], course.FirstSection, course.LastSection))
			return NewExitError(ExitInvalidArguments)
		}
		info, _ := course.Section(n)
		sections = []course.SectionInfo{info}
	}

	if asJSON {
		return shared.WriteJSON(out, sections)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tCATEGORY\tDIFFICULTY")
	for _, s := range sections {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Number, s.Title, s.Category, s.Difficulty)
	}
	return tw.Flush()
}
