package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Run executes colornom with args and returns the process exit code.
// Every error is reported once, here, as "Error: <message>" on stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...Option) int {
	cmd := NewRootCmd(opts...)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	if errors.Is(err, ErrUsage) {
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
	}
	return ExitCode(err)
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	default:
		return ExitFailure
	}
}
