// Package cli wires the toybox commands: the dashboard TUI, chart export
// and the metadata printer.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"toybox/internal/config"
	tblog "toybox/internal/log"
	"toybox/internal/telemetry"
)

var (
	ErrLogHandlerFailed = errors.New("log handler failed")
	ErrInvalidArgument  = errors.New("invalid argument")
)

// annotationTUI marks commands that take over the terminal. Their logs go to
// --log_file instead of stderr.
const annotationTUI = "toybox/tui"

const shutdownTimeout = 5 * time.Second

// NewRootCmd returns the toybox command tree. Without a subcommand it runs the dashboard.
func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	return newRootCmd(NewRootArgs(), name, shortDesc, longDesc)
}

func newRootCmd(args *RootArgs, name, shortDesc, longDesc string) *cobra.Command {
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", defaults.Logging.Level, "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", defaults.Logging.Format, "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().StringVar(args.logFile, "log_file", "", "Write logs to this file (the dashboard discards logs otherwise)")
	must(cmd.MarkPersistentFlagFilename("log_file"))

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) (err error) {
		// The log file and tracer provider may already be open when a later step fails.
		defer func() {
			if err != nil {
				err = args.closeOnError(err)
			}
		}()

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		flags := cc.Flags()
		if flags.Changed("log_level") {
			cfg.Logging.Level = args.GetLogLevel()
		}
		if flags.Changed("log_format") {
			cfg.Logging.Format = args.GetLogFormat()
		}
		if flags.Changed("log_file") {
			cfg.Logging.File = args.GetLogFile()
		}
		args.cfg = cfg

		w, err := args.logWriter(cc)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}
		h, err := tblog.CreateHandler(w, cfg.Logging.Level, cfg.Logging.Format)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}
		args.logger = slog.New(h)
		slog.SetDefault(args.logger)

		args.telemetry, err = telemetry.Setup(cc.Context(), cfg.Telemetry)
		if err != nil {
			return err
		}

		slog.Debug("ready to go", slog.Bool("tracing", args.telemetry.Enabled()))

		return nil
	}

	cmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return args.Close(ctx)
	}

	run := NewRunCmd(args)
	cmd.AddCommand(run)
	cmd.AddCommand(NewExportCmd(args))
	cmd.AddCommand(NewMetaCmd(args))

	// cobra skips PersistentPostRunE when RunE fails.
	for _, sub := range cmd.Commands() {
		if sub.RunE != nil {
			sub.RunE = args.teardownOnError(sub.RunE)
		}
	}

	cmd.Flags().AddFlagSet(run.Flags())
	cmd.Annotations = run.Annotations
	cmd.RunE = run.RunE

	return cmd
}

// teardownOnError releases the log file and tracer provider when run fails.
func (a *RootArgs) teardownOnError(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cc *cobra.Command, pArgs []string) error {
		if err := run(cc, pArgs); err != nil {
			return a.closeOnError(err)
		}
		return nil
	}
}

func (a *RootArgs) closeOnError(err error) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if cerr := a.Close(ctx); cerr != nil {
		return errors.Join(err, cerr)
	}
	return err
}

// logWriter picks stderr for plain commands and the log file, or nothing, for the TUI.
func (a *RootArgs) logWriter(cc *cobra.Command) (io.Writer, error) {
	file := a.Config().Logging.File
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.logCloser = f
		return f, nil
	}
	if cc.Annotations[annotationTUI] != "" {
		return io.Discard, nil
	}
	return cc.ErrOrStderr(), nil
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
