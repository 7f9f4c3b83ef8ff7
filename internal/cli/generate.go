package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/cudacourse/coursekit/internal/cli/shared"
	"github.com/cudacourse/coursekit/internal/curriculum"
	apperrors "github.com/cudacourse/coursekit/internal/errors"
	"github.com/cudacourse/coursekit/internal/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write lecture skeleton files for video lectures",
	Long: `Write a lecture skeleton for each entry of a video lecture list
(the video_lectures.json written by 'coursekit curriculum').

Each skeleton is written to sections/NN/lecture-NN.mdx under --out, with
front matter filled in from the section registry and an outline body.
Existing files are skipped unless --force is given. Every skeleton is
validated before anything is written.`,
	Example: `  # Generate skeletons under src/data
  coursekit generate --lectures data/video_lectures.json --out src/data

  # Regenerate, overwriting existing files
  coursekit generate --lectures data/video_lectures.json --out src/data --force`,
	Args: shared.Args(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		lectures, _ := cmd.Flags().GetString("lectures")
		outDir, _ := cmd.Flags().GetString("out")
		force, _ := cmd.Flags().GetBool("force")
		return runGenerate(lectures, generate.Options{OutDir: outDir, Force: force}, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	generateCmd.GroupID = GroupAuthoring
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().String("lectures", "data/video_lectures.json", "Video lecture list")
	generateCmd.Flags().String("out", "src/data", "Directory that receives sections/NN/lecture-NN.mdx")
	generateCmd.Flags().Bool("force", false, "Overwrite existing files")
}

func runGenerate(lecturesPath string, opts generate.Options, out, errOut io.Writer) error {
	videos, err := curriculum.ReadVideoLectures(lecturesPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			apperrors.FprintError(errOut, apperrors.LecturesFileNotFound(lecturesPath))
		} else {
			apperrors.FprintError(errOut, apperrors.Wrap(err, apperrors.Argument))
		}
		return NewExitError(ExitInvalidArguments)
	}

	results, err := generate.Write(videos, opts)
	for _, r := range results {
		switch r.Outcome {
		case generate.Skipped:
			fmt.Fprintf(out, "%s %s (exists, use --force to overwrite)\n", shared.Warn(), r.Path)
		default:
			fmt.Fprintf(out, "%s %s %s\n", shared.OK(), r.Outcome, r.Path)
		}
	}
	if err != nil {
		apperrors.FprintError(errOut, apperrors.WrapWithMessage(err, apperrors.Runtime, "generating skeletons"))
		return NewExitError(ExitValidationFailed)
	}

	written := 0
	for _, r := range results {
		if r.Outcome != generate.Skipped {
			written++
		}
	}
	fmt.Fprintf(out, "\nGenerated %d of %d lecture files\n", written, len(videos))
	return nil
}
