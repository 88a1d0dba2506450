// Package cli implements the rut command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rutkit/pkg/logger"
)

// ErrInvalidInput is returned by commands that found at least one input they
// could not handle. The process exits with status 1.
var ErrInvalidInput = errors.New("one or more inputs are invalid")

type app struct {
	log       *slog.Logger
	logLevel  string
	logFormat string
}

// NewRoot builds the rut command tree. Logs go to the command's error stream.
func NewRoot() *cobra.Command {
	a := &app{log: logger.Noop()}

	root := &cobra.Command{
		Use:           "rut",
		Short:         "Validate, format and generate Chilean RUTs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogger(cmd.ErrOrStderr())
		},
	}
	a.registerFlags(root)

	root.AddCommand(
		newParseCommand(),
		newFormatCommand(),
		newValidateCommand(),
		newRandomCommand(),
		newStreamCommand(a),
		newServeCommand(a),
	)
	return root
}

func (a *app) registerFlags(root *cobra.Command) {
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "Log format: text|json")
}

func (a *app) setupLogger(w io.Writer) error {
	format := logger.Format(a.logFormat)
	if format != logger.FormatText && format != logger.FormatJSON {
		return fmt.Errorf("invalid --log-format %q: want text or json", a.logFormat)
	}
	a.log = logger.New(
		logger.WithOutput(w),
		logger.WithFormat(format),
		logger.WithLevelName(a.logLevel),
	)
	return nil
}
