// Package cli provides the command-line interface for colornom.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/colornom/internal/colour"
	"github.com/jmylchreest/colornom/internal/colourapi"
	"github.com/jmylchreest/colornom/internal/output"
	"github.com/jmylchreest/colornom/internal/security"
	"github.com/jmylchreest/colornom/internal/version"
)

const (
	flagHex     = "hex"
	flagRGB     = "rgb"
	flagAPIURL  = "api-url"
	flagTimeout = "timeout"
	flagVerbose = "verbose"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ErrUsage means the command line itself is wrong.
var ErrUsage = errors.New("usage error")

// Resolver maps a colour to its display name.
type Resolver interface {
	Lookup(ctx context.Context, rgb colour.RGB) (colourapi.Result, error)
}

// Option overrides a collaborator of the root command.
type Option func(*collaborators)

type collaborators struct {
	resolver  Resolver
	clipboard output.Clipboard
}

// WithResolver replaces the naming service client.
func WithResolver(r Resolver) Option {
	return func(c *collaborators) {
		c.resolver = r
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(cb output.Clipboard) Option {
	return func(c *collaborators) {
		c.clipboard = cb
	}
}

type options struct {
	hex     string
	rgb     string
	apiURL  string
	timeout time.Duration
	verbose bool
}

// NewRootCmd builds the colornom command.
func NewRootCmd(opts ...Option) *cobra.Command {
	collab := &collaborators{clipboard: output.SystemClipboard{}}
	for _, opt := range opts {
		opt(collab)
	}

	o := &options{}
	cmd := &cobra.Command{
		Use:   "colornom (--hex <value> | --rgb <value>)",
		Short: "Name a colour",
		Long: `colornom is a colour nomenclature tool: it reports the name of a colour using
The Color API (https://www.thecolorapi.com/) and copies the name to the clipboard.

Give the colour in exactly one of two forms:
  --hex '#ff8000'   (the '#' is optional, 3-digit shorthand is accepted)
  --rgb 'rgb(255, 128, 0)'`,
		Example: `  colornom --hex '#cc5500'
  colornom --hex f80
  colornom --rgb 'rgb(204, 85, 0)'`,
		Version:       version.Short(),
		Args:          noPositionalArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, o, collab)
		},
	}

	registerFlags(cmd.Flags(), o)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})
	cmd.SetVersionTemplate(version.String() + "\n")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// registerFlags declares the root command's flags on fs.
func registerFlags(fs *pflag.FlagSet, o *options) {
	fs.SortFlags = false
	fs.StringVar(&o.hex, flagHex, "", "color in hexadecimal form, e.g. '#ff8000' or 'f80'")
	fs.StringVar(&o.rgb, flagRGB, "", "color in rgb() form, e.g. 'rgb(255,128,0)'")
	fs.StringVar(&o.apiURL, flagAPIURL, colourapi.DefaultBaseURL, "base URL of the colour naming service")
	fs.DurationVar(&o.timeout, flagTimeout, 0, "HTTP timeout, e.g. '10s' (0 means no timeout)")
	fs.BoolVarP(&o.verbose, flagVerbose, "v", false, "enable verbose output")
}

func noPositionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: unexpected argument %q for %q", ErrUsage, args[0], cmd.CommandPath())
	}
	return nil
}

// selectInput returns the notation and text of the single colour flag given.
func selectInput(fs *pflag.FlagSet, o *options) (colour.Notation, string, error) {
	hexSet, rgbSet := fs.Changed(flagHex), fs.Changed(flagRGB)

	switch {
	case hexSet && rgbSet:
		return "", "", fmt.Errorf("%w: --%s and --%s are mutually exclusive", ErrUsage, flagHex, flagRGB)
	case hexSet:
		return colour.NotationHex, o.hex, nil
	case rgbSet:
		return colour.NotationRGB, o.rgb, nil
	default:
		return "", "", fmt.Errorf("%w: one of --%s or --%s is required", ErrUsage, flagHex, flagRGB)
	}
}

// validateOptions checks the service flags.
func validateOptions(o *options) error {
	if err := security.ValidateServiceURL(o.apiURL); err != nil {
		return fmt.Errorf("%w: --%s: %v", ErrUsage, flagAPIURL, err)
	}
	if o.timeout < 0 {
		return fmt.Errorf("%w: --%s must not be negative", ErrUsage, flagTimeout)
	}
	return nil
}

// newLogger returns a debug logger on w when verbose, and a silent one otherwise.
func newLogger(w io.Writer, verbose bool) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "colornom",
			Output: w,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colornom",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// run parses the colour, resolves its name and reports it.
func run(cmd *cobra.Command, o *options, collab *collaborators) error {
	notation, value, err := selectInput(cmd.Flags(), o)
	if err != nil {
		return err
	}
	if err := validateOptions(o); err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), o.verbose)

	rgb, err := colour.Parse(notation, value)
	if err != nil {
		return err
	}
	logger.Debug("parsed colour", "notation", notation, "input", value, "rgb", rgb.String(), "hex", rgb.Hex())

	resolver := collab.resolver
	if resolver == nil {
		resolver = colourapi.NewClient(
			colourapi.WithBaseURL(o.apiURL),
			colourapi.WithTimeout(o.timeout),
			colourapi.WithLogger(logger.Named("colourapi")),
		)
	}

	result, err := resolver.Lookup(cmd.Context(), rgb)
	if err != nil {
		return fmt.Errorf("failed to resolve name for %s: %w", rgb.Hex(), err)
	}

	sink := output.NewSink(cmd.OutOrStdout(), cmd.ErrOrStderr(), collab.clipboard, logger.Named("output"))
	return sink.Emit(result.Name)
}

// newVersionCmd returns the command that prints detailed build information.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  noPositionalArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
