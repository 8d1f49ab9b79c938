package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	mcpackerrors "mcpack/internal/errors"
	"mcpack/internal/reconcile"
	"mcpack/internal/report"
	"mcpack/internal/resolve"
)

// Flag values for the add command.
var (
	addScope  string
	addDryRun bool
)

func init() {
	addCmd.Flags().StringVar(&addScope, "scope", "",
		"registration scope: local, user, project (default from config)")
	addCmd.Flags().BoolVar(&addDryRun, "dry-run", false,
		"show the resolved server set without invoking anything")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:     "add [pattern...]",
	Aliases: []string{"install"},
	Short:   "Install the servers of one or more patterns",
	Long: `Resolve the named patterns into their combined server set, check the
environment for the tools those servers need, and register every server
that is not already registered with the host CLI.

Pattern names are case-insensitive. Overlapping patterns are fine; each
shared server is installed once, ordered by the first pattern that
mentions it.

Missing hard prerequisites (node, uv, terraform, the host CLI itself)
abort the operation before anything is installed. A missing or stopped
docker runtime only skips the docker-dependent servers.

When called without arguments on a terminal, opens an interactive
pattern picker.`,
	Example: `  # Install the base pack
  mcpack add core

  # Patterns dedupe against each other
  mcpack add aws iac

  # Preview without touching anything
  mcpack add k8s --dry-run

  # Register into the current project instead of the user scope
  mcpack add core --scope project

  See Also:
    mcpack list      - Show available patterns
    mcpack remove    - Remove a pattern's servers`,
	Args: cobra.ArbitraryArgs,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	return runAddWithWriter(cmd.Context(), args, os.Stdout)
}

// runAddWithWriter allows injecting a writer for testing.
func runAddWithWriter(ctx context.Context, args []string, w io.Writer) error {
	reg := loadRegistry()

	if len(args) == 0 {
		picked, err := pickPatterns(reg)
		if err != nil {
			return err
		}
		if len(picked) == 0 {
			fmt.Fprintln(w, "No patterns selected.")
			return nil
		}
		args = picked
	}

	names := resolve.NormalizeAll(args)
	if err := resolve.Validate(reg, names); err != nil {
		return mcpackerrors.NewUserError(err, "Run 'mcpack list' to see available patterns")
	}

	resolved, err := resolve.Resolve(reg, names)
	if err != nil {
		return err
	}

	if addDryRun {
		fmt.Fprintf(w, "Would ensure %d server(s) are installed:\n", len(resolved))
		for _, name := range resolved {
			srv, err := reg.Server(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  %s - %s\n", name, srv.Description)
		}
		return nil
	}

	check, err := checkPrereqs(ctx, reg, cfg.HostBinary, resolved)
	if err != nil {
		return err
	}

	if len(check.HardMissing) > 0 {
		details := make([]string, len(check.HardMissing))
		for i, m := range check.HardMissing {
			details[i] = fmt.Sprintf("%s (%s)", m.Tool, m.Hint)
		}
		return mcpackerrors.NewSystemError(
			errors.Wrapf(mcpackerrors.ErrMissingPrerequisite, "%s", strings.Join(details, "; ")),
			"install the listed tools and try again")
	}

	if check.Degraded() {
		fmt.Fprintf(w, "Warning: docker unavailable, skipping: %s\n",
			strings.Join(check.SoftSkipped, ", "))
	}

	scope, err := resolveScope(addScope)
	if err != nil {
		return err
	}

	client := newHostClient(cfg.HostBinary, scope, slog.Default())
	installed := client.ListNames(ctx)

	outcome, err := reconcile.Add(ctx, client, reg, check.WorkingSet, installed, w, slog.Default())
	if err != nil {
		return err
	}

	fmt.Fprintln(w, report.AddSummary(outcome, len(check.SoftSkipped)))

	if outcome.AnyFailed() {
		return mcpackerrors.NewSystemError(
			errors.Wrapf(mcpackerrors.ErrInstallFailed, "%d of %d",
				len(outcome.Failed), len(check.WorkingSet)),
			"re-run with -v for details")
	}

	return nil
}
