package util

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cudacourse/coursekit/internal/build"
	"github.com/cudacourse/coursekit/internal/cli/shared"
)

const (
	defaultTermWidth = 80
	boxWidth         = 44
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information (v)",
	Long:    "Display version, commit, build date, and Go version information for coursekit",
	Example: `  # Show version info
  coursekit version

  # Plain output (for scripts)
  coursekit version --plain`,
	Args: shared.Args(cobra.NoArgs),
	Run: func(cmd *cobra.Command, args []string) {
		plain, _ := cmd.Flags().GetBool("plain")
		if plain {
			printPlainVersion(cmd.OutOrStdout())
		} else {
			printPrettyVersion(cmd.OutOrStdout(), terminalWidth())
		}
	},
}

func init() {
	versionCmd.GroupID = shared.GroupConfiguration
	versionCmd.Flags().Bool("plain", false, "Plain output without formatting")
}

type versionField struct {
	label string
	value string
}

func versionFields() []versionField {
	return []versionField{
		{"Version", build.Version},
		{"Commit", truncateCommit(build.Commit)},
		{"Built", build.BuildDate},
		{"Go", runtime.Version()},
		{"Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
	}
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(out io.Writer) {
	if build.IsDevBuild() {
		fmt.Fprintf(out, "coursekit %s (development build)\n", build.Version)
	} else {
		fmt.Fprintf(out, "coursekit %s\n", build.Version)
	}
	fmt.Fprintf(out, "commit: %s\n", build.Commit)
	fmt.Fprintf(out, "built: %s\n", build.BuildDate)
	fmt.Fprintf(out, "go: %s\n", runtime.Version())
	fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// printPrettyVersion prints the version fields in a centered box.
func printPrettyVersion(out io.Writer, termWidth int) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	width := boxWidth
	if termWidth < boxWidth+6 {
		width = termWidth - 6
	}
	if width < 30 {
		width = 30
	}
	contentWidth := width - 4

	margin := 0
	if termWidth > width {
		margin = (termWidth - width) / 2
	}
	pad := strings.Repeat(" ", margin)

	fmt.Fprintln(out)
	title := "coursekit"
	if build.IsDevBuild() {
		title += " (dev)"
	}
	fmt.Fprintln(out, pad+cyan(centerText(title, width)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, pad+"╭"+strings.Repeat("─", width-2)+"╮")
	fmt.Fprintln(out, pad+"│"+strings.Repeat(" ", width-2)+"│")
	for _, f := range versionFields() {
		line := fmt.Sprintf("  %s    %s", yellow(fmt.Sprintf("%10s", f.label)), white(f.value))
		// label width + spacing + value + margin
		if n := 10 + 4 + len(f.value) + 2; n < contentWidth {
			line += strings.Repeat(" ", contentWidth-n)
		}
		fmt.Fprintln(out, pad+"│ "+line+" │")
	}
	fmt.Fprintln(out, pad+"│"+strings.Repeat(" ", width-2)+"│")
	fmt.Fprintln(out, pad+"╰"+strings.Repeat("─", width-2)+"╯")
	fmt.Fprintln(out)
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

func centerText(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}

// truncateCommit shortens commit hash if it's too long
func truncateCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
