package shared

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cudacourse/coursekit/internal/config"
	apperrors "github.com/cudacourse/coursekit/internal/errors"
)

// Global flag names.
const (
	ConfigFlag     = "config"
	ContentDirFlag = "content-dir"
	DebugFlag      = "debug"
	NoColorFlag    = "no-color"
)

// LoadConfig loads configuration from the --config path and applies the
// --content-dir override.
func LoadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString(ConfigFlag)
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, apperrors.ConfigParseError(configPath, err)
	}

	if cmd.Flags().Changed(ContentDirFlag) {
		cfg.ContentDir, _ = cmd.Flags().GetString(ContentDirFlag)
	}
	return cfg, nil
}

// Args wraps a positional argument check so that a failure is reported
// as an argument error with the command's usage line.
func Args(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return apperrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine(),
				fmt.Sprintf("Run '%s --help' for examples", cmd.CommandPath()))
		}
		return nil
	}
}
