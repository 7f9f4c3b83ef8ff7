package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cudacourse/coursekit/internal/cli/shared"
	cfgpkg "github.com/cudacourse/coursekit/internal/config"
	apperrors "github.com/cudacourse/coursekit/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and edit coursekit configuration",
	Long: `Show and edit coursekit configuration.

Values are layered, later sources winning:
  1. Built-in defaults
  2. User config     (~/.coursekit/config.json)
  3. Project config  (.coursekit/config.json, or --config)
  4. Environment     (COURSEKIT_*, nested keys joined with __)`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Example: `  coursekit config show
  coursekit config show --json`,
	Args: shared.Args(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := shared.LoadConfig(cmd)
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")
		return runConfigShow(cfg, asJSON, cmd.OutOrStdout())
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get the effective value of a configuration key.

Run 'coursekit config keys' to list the known keys.`,
	Example: `  coursekit config get content_dir
  coursekit config get site.total_lectures`,
	Args: shared.Args(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString(shared.ConfigFlag)
		return runConfigGet(configPath, args[0], cmd.OutOrStdout())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in project or user config.

By default, sets the value in the project config (.coursekit/config.json,
or the file given with --config). Use --user to set it in
~/.coursekit/config.json instead.

The value is parsed according to the key's type and the resulting
configuration is validated before the file is written.`,
	Example: `  # Validate with eight workers
  coursekit config set jobs 8

  # Accept .md and .mdx files
  coursekit config set extensions .md,.mdx

  # Declare the quiz total for every project
  coursekit config set site.total_quizzes 12 --user`,
	Args: shared.Args(cobra.ExactArgs(2)),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, scope, err := resolveConfigPath(cmd)
		if err != nil {
			return err
		}
		return runConfigSet(path, scope, args[0], args[1], cmd.OutOrStdout())
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List all available configuration keys",
	Long:  `Display all valid configuration keys with their types and descriptions.`,
	Args:  shared.Args(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigKeys(cmd.OutOrStdout())
	},
}

func init() {
	configCmd.GroupID = shared.GroupConfiguration

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configKeysCmd)

	configShowCmd.Flags().Bool("json", false, "Print the configuration as JSON")

	configSetCmd.Flags().Bool("user", false, "Set in user-level config")
	configSetCmd.Flags().Bool("project", false, "Set in project-level config (default)")
	configSetCmd.MarkFlagsMutuallyExclusive("user", "project")
}

func runConfigShow(cfg *cfgpkg.Configuration, asJSON bool, out io.Writer) error {
	if asJSON {
		return shared.WriteJSON(out, cfg)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	rows := []struct {
		key   string
		value interface{}
	}{
		{"content_dir", cfg.ContentDir},
		{"extensions", strings.Join(cfg.Extensions, ",")},
		{"jobs", cfg.Jobs},
		{"strict", cfg.Strict},
		{"warnings_as_errors", cfg.WarningsAsErrors},
		{"show_progress", cfg.ShowProgress},
		{"site.course_id", cfg.Site.CourseID},
		{"site.title", cfg.Site.Title},
		{"site.description", cfg.Site.Description},
		{"site.total_sections", cfg.Site.TotalSections},
		{"site.total_lectures", cfg.Site.TotalLectures},
		{"site.total_quizzes", cfg.Site.TotalQuizzes},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%v\n", row.key, row.value)
	}
	return tw.Flush()
}

func runConfigGet(configPath, key string, out io.Writer) error {
	value, err := cfgpkg.GetValue(configPath, key)
	if err != nil {
		return configError(key, err)
	}
	if list, ok := value.([]interface{}); ok {
		parts := make([]string, len(list))
		for i, v := range list {
			parts[i] = fmt.Sprint(v)
		}
		value = strings.Join(parts, ",")
	}
	if list, ok := value.([]string); ok {
		value = strings.Join(list, ",")
	}
	fmt.Fprintf(out, "%s: %v\n", key, value)
	return nil
}

func runConfigSet(path, scope, key, value string, out io.Writer) error {
	if err := cfgpkg.SetValue(path, key, value); err != nil {
		return configError(key, err)
	}
	fmt.Fprintf(out, "%s Set %s = %s in %s config (%s)\n", shared.OK(), key, value, scope, path)
	return nil
}

func runConfigKeys(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tTYPE\tDESCRIPTION")
	for _, key := range cfgpkg.Keys() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", key.Name, key.Type, key.Description)
	}
	return tw.Flush()
}

// resolveConfigPath picks the file `config set` writes to.
func resolveConfigPath(cmd *cobra.Command) (string, string, error) {
	if user, _ := cmd.Flags().GetBool("user"); user {
		path := cfgpkg.GlobalConfigPath()
		if path == "" {
			return "", "", apperrors.NewConfigError("cannot determine home directory for user config",
				"Use --project to write the project config instead")
		}
		return path, "user", nil
	}
	path, _ := cmd.Flags().GetString(shared.ConfigFlag)
	return path, "project", nil
}

func configError(key string, err error) error {
	var unknown *cfgpkg.UnknownKeyError
	if errors.As(err, &unknown) {
		return apperrors.NewArgumentError(err.Error(),
			"Run 'coursekit config keys' to list the valid keys")
	}
	return apperrors.WrapWithMessage(err, apperrors.Configuration, fmt.Sprintf("invalid value for %s", key))
}
