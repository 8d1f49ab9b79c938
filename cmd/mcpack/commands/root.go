// Package commands implements the CLI commands for mcpack.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"mcpack/internal/config"
	mcpackerrors "mcpack/internal/errors"
	"mcpack/internal/logging"
	"mcpack/internal/registry"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
var version = "0.1.0"

// Persistent flag values.
var (
	verbosity int
	quiet     bool
	logFormat string
	logFile   string
)

// cfg holds the loaded configuration; configLoadErr any error from loading it.
var (
	cfg           *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("mcpack version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "mcpack",
	Short: "Install curated MCP server packs into the host CLI",
	Long: `mcpack resolves named capability patterns (curated groups of MCP
servers) into the concrete server set they imply, checks the local
environment for the tools those servers need, and registers exactly the
servers that are missing with the host CLI.

Patterns overlap freely; resolution deduplicates. Installation is
idempotent: the installed set is re-read from the host tool on every
run, and only the delta is applied.`,
	Example: `  # Install the base development pack
  mcpack add core

  # Combine packs; shared servers are installed once
  mcpack add aws iac

  # See what a pack contains
  mcpack list aws

  # Remove a pack's servers
  mcpack remove k8s

  # Diagnose the environment
  mcpack doctor`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		if configLoadErr != nil {
			return mcpackerrors.NewConfigError(configLoadErr)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return mcpackerrors.NewUserError(
			errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv("MCPACK_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 1
				case "2":
					v = 2
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return mcpackerrors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(ctx)

	return nil
}

// loadRegistry builds the registry with the custom pattern overlay
// applied. Overlay problems are warnings; the built-in tables always
// remain usable.
func loadRegistry() *registry.Registry {
	reg := registry.New()

	if cfg == nil || cfg.PatternsFile == "" {
		return reg
	}

	overlay, err := registry.LoadOverlayFile(cfg.PatternsFile)
	if err != nil {
		slog.Warn("ignoring custom patterns file", "error", err)
		return reg
	}
	if err := reg.ApplyOverlay(overlay); err != nil {
		slog.Warn("some custom pattern entries were skipped", "error", err)
	}

	return reg
}

// resolveScope returns the effective registration scope: the --scope
// flag when given, otherwise the configured default.
func resolveScope(flagValue string) (string, error) {
	if flagValue == "" {
		return cfg.Scope, nil
	}
	if !config.ValidScope(flagValue) {
		return "", mcpackerrors.NewUserError(
			errors.Newf("invalid --scope %q", flagValue),
			"valid scopes: local, user, project")
	}
	return flagValue, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
