// Package cli provides the Cobra-based commands of coursekit: content
// validation and statistics, section registry output, skeleton generation,
// curriculum parsing, mermaid label fixing and configuration management.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cudacourse/coursekit/internal/cli/config"
	"github.com/cudacourse/coursekit/internal/cli/shared"
	"github.com/cudacourse/coursekit/internal/cli/util"
	cfgpkg "github.com/cudacourse/coursekit/internal/config"
	apperrors "github.com/cudacourse/coursekit/internal/errors"
)

// Command group IDs for organizing help output (re-exported from shared)
const (
	GroupContent       = shared.GroupContent
	GroupAuthoring     = shared.GroupAuthoring
	GroupConfiguration = shared.GroupConfiguration
)

var rootCmd = &cobra.Command{
	Use:   "coursekit",
	Short: "Content tooling for the CUDA course notes site",
	Long: `Content tooling for the CUDA course notes site.

Validates lecture front matter against the content schema, exposes the
section registry, generates lecture skeletons from the curriculum and
fixes mermaid diagrams that would fail to render.`,
	Example: `  # Validate every lecture under the configured content directory
  coursekit validate

  # Validate with registry cross-checks, failing on warnings
  coursekit validate --strict --warnings-as-errors

  # Print the section registry as JSON
  coursekit sections --json

  # Build data files from a curriculum dump, then generate skeletons
  coursekit curriculum data/curriculum.json --out data
  coursekit generate --lectures data/video_lectures.json --out src/data`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupOutput,
}

// Execute runs the root command. Errors that carry no exit code of their
// own are printed here.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !shared.IsExitError(err) {
		apperrors.FprintError(rootCmd.ErrOrStderr(), asCLIError(err))
	}
	return err
}

func asCLIError(err error) *apperrors.CLIError {
	if cliErr := apperrors.AsCLIError(err); cliErr != nil {
		return cliErr
	}
	return apperrors.Wrap(err, apperrors.Runtime)
}

// setupOutput configures logging and color before any command runs.
func setupOutput(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if debug, _ := cmd.Flags().GetBool(shared.DebugFlag); debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	if noColor, _ := cmd.Flags().GetBool(shared.NoColorFlag); noColor {
		color.NoColor = true
	}
	return nil
}

func init() {
	// Define command groups in display order
	rootCmd.AddGroup(&cobra.Group{ID: GroupContent, Title: "Content:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupAuthoring, Title: "Authoring:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"})

	rootCmd.SetHelpCommandGroupID(GroupConfiguration)
	rootCmd.SetCompletionCommandGroupID(GroupConfiguration)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return apperrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine())
	})

	// Global flags
	rootCmd.PersistentFlags().StringP(shared.ConfigFlag, "c", cfgpkg.DefaultLocalConfigPath, "Path to config file")
	rootCmd.PersistentFlags().String(shared.ContentDirFlag, "", "Content directory (overrides content_dir)")
	rootCmd.PersistentFlags().BoolP(shared.DebugFlag, "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool(shared.NoColorFlag, false, "Disable colored output")

	// Register commands from subpackages
	config.Register(rootCmd)
	util.Register(rootCmd)
}
