package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/cudacourse/coursekit/internal/errors"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":            {err: nil, want: ExitSuccess},
		"exit error":     {err: NewExitError(ExitValidationFailed), want: ExitValidationFailed},
		"argument error": {err: apperrors.NewArgumentError("bad flag"), want: ExitInvalidArguments},
		"config error":   {err: apperrors.NewConfigError("bad config"), want: ExitValidationFailed},
		"plain error":    {err: errors.New("boom"), want: ExitValidationFailed},
		"wrapped exit":   {err: errors.Join(errors.New("ctx"), NewExitError(ExitInvalidArguments)), want: ExitInvalidArguments},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestRootCommandRegistration(t *testing.T) {
	t.Parallel()

	groups := make(map[string]string)
	for _, cmd := range rootCmd.Commands() {
		groups[cmd.Name()] = cmd.GroupID
	}

	tests := map[string]struct {
		group string
	}{
		"validate":    {group: GroupContent},
		"sections":    {group: GroupContent},
		"schema":      {group: GroupContent},
		"stats":       {group: GroupContent},
		"generate":    {group: GroupAuthoring},
		"curriculum":  {group: GroupAuthoring},
		"fix-mermaid": {group: GroupAuthoring},
		"config":      {group: GroupConfiguration},
		"version":     {group: GroupConfiguration},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			group, ok := groups[name]
			assert.True(t, ok, "command %s should be registered", name)
			assert.Equal(t, tt.group, group)
		})
	}
}

// Unknown flags surface as argument errors so main exits with 3.
func TestExecute_UnknownFlag(t *testing.T) {
	var errOut bytes.Buffer
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"sections", "--bogus"})
	defer func() {
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := Execute(context.Background())
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
	assert.Contains(t, errOut.String(), "unknown flag")
}
