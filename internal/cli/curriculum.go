package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cudacourse/coursekit/internal/cli/shared"
	"github.com/cudacourse/coursekit/internal/curriculum"
	apperrors "github.com/cudacourse/coursekit/internal/errors"
)

var curriculumCmd = &cobra.Command{
	Use:   "curriculum <curriculum.json>",
	Short: "Build lecture data files from a saved curriculum dump",
	Long: `Build lecture data files from a saved curriculum dump.

Chapters start a new section; lectures and quizzes are numbered within
their section. Two files are written to --out:

  all_items.json       every lecture and quiz
  video_lectures.json  lectures with a video asset (input to 'generate')`,
	Example: `  coursekit curriculum data/curriculum.json --out data`,
	Args:    shared.Args(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out")
		return runCurriculum(args[0], outDir, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	curriculumCmd.GroupID = GroupAuthoring
	rootCmd.AddCommand(curriculumCmd)
	curriculumCmd.Flags().String("out", "data", "Directory for all_items.json and video_lectures.json")
}

func runCurriculum(path, outDir string, out, errOut io.Writer) error {
	c, err := curriculum.ParseFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			apperrors.FprintError(errOut, apperrors.NewArgumentError(
				fmt.Sprintf("curriculum file not found: %s", path),
				"Save the course curriculum JSON and pass its path"))
		} else {
			apperrors.FprintError(errOut, apperrors.Wrap(err, apperrors.Argument))
		}
		return NewExitError(ExitInvalidArguments)
	}

	if err := c.WriteFiles(outDir); err != nil {
		apperrors.FprintError(errOut, apperrors.FileNotWritable(outDir, err))
		return NewExitError(ExitValidationFailed)
	}

	fmt.Fprintf(out, "%s Saved %s (%d items)\n", shared.OK(), filepath.Join(outDir, curriculum.AllItemsFile), len(c.Items))
	fmt.Fprintf(out, "%s Saved %s (%d video lectures)\n", shared.OK(), filepath.Join(outDir, curriculum.VideoLecturesFile), len(c.Videos))

	fmt.Fprintf(out, "\nCourse Structure:\n")
	for _, s := range c.Summary() {
		fmt.Fprintf(out, "  Section %d: %s (%d items)\n", s.Section, s.Title, s.Items)
	}
	return nil
}
