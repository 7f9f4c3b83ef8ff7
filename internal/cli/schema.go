package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cudacourse/coursekit/internal/cli/shared"
	"github.com/cudacourse/coursekit/internal/content"
	apperrors "github.com/cudacourse/coursekit/internal/errors"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [field]",
	Short: "Print the front matter schema for lecture files",
	Long: `Print the front matter schema for lecture files: every field with its
type, whether it is required, its default and its constraints. Name a
field to print only that one.`,
	Example: `  coursekit schema
  coursekit schema category`,
	Args: shared.Args(cobra.MaximumNArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return printFieldSchema(args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		}
		return printContentSchema(cmd.OutOrStdout())
	},
}

func init() {
	schemaCmd.GroupID = GroupContent
	rootCmd.AddCommand(schemaCmd)
}

// printContentSchema prints the content entry schema.
func printContentSchema(out io.Writer) error {
	fmt.Fprintf(out, "Schema for lecture front matter\n")
	fmt.Fprintf(out, "%s\n\n", strings.Repeat("=", 40))

	fmt.Fprintf(out, "Fields:\n")
	fmt.Fprintf(out, "%s\n", strings.Repeat("-", 40))

	for _, rule := range content.Rules {
		printSchemaRule(rule, out)
	}
	return nil
}

func printFieldSchema(name string, out, errOut io.Writer) error {
	rule, ok := content.Rule(name)
	if !ok {
		names := make([]string, 0, len(content.Rules))
		for _, r := range content.Rules {
			names = append(names, r.Name)
		}
		apperrors.FprintError(errOut, apperrors.NewArgumentErrorWithUsage(
			fmt.Sprintf("unknown field: %s", name), "coursekit schema [field]",
			"Valid fields: "+strings.Join(names, ", ")))
		return NewExitError(ExitInvalidArguments)
	}
	printSchemaRule(rule, out)
	return nil
}

// printSchemaRule prints a single field rule.
func printSchemaRule(rule content.FieldRule, out io.Writer) {
	required := ""
	if rule.Required {
		required = " (required)"
	}

	typeStr := string(rule.Type)
	if len(rule.Enum) > 0 {
		typeStr = fmt.Sprintf("enum[%s]", strings.Join(rule.Enum, ", "))
	}

	fmt.Fprintf(out, "%s: %s%s\n", rule.Name, typeStr, required)

	if rule.Description != "" {
		fmt.Fprintf(out, "  # %s\n", rule.Description)
	}
	var constraints []string
	if rule.NonEmpty {
		constraints = append(constraints, "non-empty")
	}
	if rule.Min != nil && rule.Max != nil {
		constraints = append(constraints, fmt.Sprintf("%d..%d", *rule.Min, *rule.Max))
	} else if rule.Min != nil {
		constraints = append(constraints, fmt.Sprintf(">= %d", *rule.Min))
	}
	if rule.Default != nil {
		constraints = append(constraints, fmt.Sprintf("default %v", rule.Default))
	}
	if len(constraints) > 0 {
		fmt.Fprintf(out, "  # %s\n", strings.Join(constraints, ", "))
	}
}
