package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/averycrespi/mathline/internal/calc"
	"github.com/averycrespi/mathline/internal/config"
	"github.com/averycrespi/mathline/internal/repl"
	"github.com/averycrespi/mathline/internal/server"
	"github.com/averycrespi/mathline/internal/vars"
	"github.com/averycrespi/mathline/pkg/project"
	"github.com/averycrespi/mathline/pkg/types"

	"github.com/spf13/cobra"
)

// errLineFailed makes eval exit non-zero after it has printed the error line
var errLineFailed = errors.New("line could not be calculated")

type options struct {
	configFile   string
	logLevel     string
	solveTimeout time.Duration
	memeMode     bool
	color        string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errLineFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   project.Name,
		Short: "A calculator for arithmetic, fractions and single-variable equations",
		Long: `mathline evaluates free-form math such as "2 1/2 + 1/4", "9 squared" or
"sqrt of 16", stores variables with "x=5" and solves equations such as
"2x+4=10".

Without a subcommand it starts the interactive shell.`,
		Version:       project.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Path to a YAML configuration file")
	flags.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	flags.DurationVar(&opts.solveTimeout, "solve-timeout", config.DefaultSolveTimeout, "Maximum time spent solving one equation")
	flags.BoolVar(&opts.memeMode, "meme", false, "Start with meme mode on")
	flags.StringVar(&opts.color, "color", config.ColorAuto, "Color output (auto, always, never)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "repl",
			Short: "Start the interactive shell",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runRepl(cmd, opts)
			},
		},
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the calculator as MCP tools over stdio",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd, opts)
			},
		},
		&cobra.Command{
			Use:     "eval <line...>",
			Short:   "Calculate one line and print the result",
			Example: `  mathline eval "2x+4=10"` + "\n" + `  mathline eval 1/2 + 1/3`,
			Args:    cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runEval(cmd, opts, strings.Join(args, " "))
			},
		},
	)

	return rootCmd
}

// setup loads the configuration, applies flag overrides, installs the
// logger and builds an engine with the preset variables loaded.
func setup(cmd *cobra.Command, opts *options) (*types.Config, *calc.Engine, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("solve-timeout") {
		cfg.SolveTimeout = opts.solveTimeout
	}
	if flags.Changed("meme") {
		cfg.MemeMode = opts.memeMode
	}
	if flags.Changed("color") {
		cfg.Color = opts.color
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, err
	}

	slog.SetDefault(config.NewLogger(cmd.ErrOrStderr(), cfg))

	store := vars.NewStore()
	if err := store.Load(cfg.Variables); err != nil {
		return nil, nil, fmt.Errorf("failed to load preset variables: %w", err)
	}
	slog.Debug("Loaded configuration",
		"config_file", opts.configFile,
		"log_level", cfg.LogLevel,
		"solve_timeout", cfg.SolveTimeout,
		"variables", store.Len())

	return cfg, calc.New(store, cfg.SolveTimeout), nil
}

func runRepl(cmd *cobra.Command, opts *options) error {
	cfg, engine, err := setup(cmd, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	shell := repl.New(engine, cmd.InOrStdin(), out, repl.Options{
		Prompt:   cfg.Prompt,
		MemeMode: cfg.MemeMode,
		Styles:   repl.StylesFor(out, cfg.Color),
	})
	return shell.Run(cmd.Context())
}

func runServe(cmd *cobra.Command, opts *options) error {
	cfg, engine, err := setup(cmd, opts)
	if err != nil {
		return err
	}

	var srv types.Server = server.NewMathServer(engine, cfg)
	if err := srv.Serve(cmd.Context()); err != nil {
		return err
	}
	slog.Info("MCP server stopped")
	return nil
}

func runEval(cmd *cobra.Command, opts *options, line string) error {
	_, engine, err := setup(cmd, opts)
	if err != nil {
		return err
	}

	out := engine.Process(cmd.Context(), line)
	w := cmd.OutOrStdout()
	if out.Kind == types.OutcomeError {
		w = cmd.ErrOrStderr()
	}
	if _, err := io.WriteString(w, out.Text+"\n"); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	if out.Kind == types.OutcomeError {
		return errLineFailed
	}
	return nil
}
