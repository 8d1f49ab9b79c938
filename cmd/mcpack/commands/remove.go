package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	mcpackerrors "mcpack/internal/errors"
	"mcpack/internal/reconcile"
	"mcpack/internal/report"
	"mcpack/internal/resolve"
)

// Flag values for the remove command.
var (
	removeScope  string
	removeDryRun bool
)

func init() {
	removeCmd.Flags().StringVar(&removeScope, "scope", "",
		"registration scope: local, user, project (default from config)")
	removeCmd.Flags().BoolVar(&removeDryRun, "dry-run", false,
		"show the resolved server set without invoking anything")
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove <pattern>...",
	Aliases: []string{"uninstall", "rm"},
	Short:   "Remove the servers of one or more patterns",
	Long: `Resolve the named patterns and ask the host CLI to unregister every
server in the combined set.

Removal is attempted unconditionally and is permissive: a server that
was never registered is reported as a warning count, not a failure.
No prerequisite checks run for removal.`,
	Example: `  # Remove the kubernetes pack
  mcpack remove k8s

  # Removing something absent is fine
  mcpack remove containers

  See Also:
    mcpack add       - Install a pattern's servers
    mcpack list      - Show available patterns`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	return runRemoveWithWriter(cmd.Context(), args, os.Stdout)
}

// runRemoveWithWriter allows injecting a writer for testing.
func runRemoveWithWriter(ctx context.Context, args []string, w io.Writer) error {
	reg := loadRegistry()

	names := resolve.NormalizeAll(args)
	if err := resolve.Validate(reg, names); err != nil {
		return mcpackerrors.NewUserError(err, "Run 'mcpack list' to see available patterns")
	}

	resolved, err := resolve.Resolve(reg, names)
	if err != nil {
		return err
	}

	if removeDryRun {
		fmt.Fprintf(w, "Would remove %d server(s):\n", len(resolved))
		for _, name := range resolved {
			fmt.Fprintf(w, "  %s\n", name)
		}
		return nil
	}

	scope, err := resolveScope(removeScope)
	if err != nil {
		return err
	}

	client := newHostClient(cfg.HostBinary, scope, slog.Default())
	outcome := reconcile.Remove(ctx, client, resolved, w, slog.Default())

	fmt.Fprintln(w, report.RemoveSummary(outcome))

	// Per-server outcomes never fail a removal.
	return nil
}
