package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"mcpack/internal/doctor"
	mcpackerrors "mcpack/internal/errors"
)

// Flag values for the doctor command.
var doctorJSON bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the local environment",
	Long: `Run diagnostic checks against the local environment: the host CLI,
each prerequisite tool class, the docker daemon, and the custom
patterns file.

Exit codes:
  0 - No errors (warnings are allowed)
  2 - At least one check reported an error`,
	Example: `  mcpack doctor
  mcpack doctor --json`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

// doctorChecks is swappable for tests.
var doctorChecks = func() []doctor.Check {
	return doctor.DefaultChecks(loadRegistry(), cfg.HostBinary, cfg.PatternsFile)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	return runDoctorWithWriter(cmd.Context(), os.Stdout)
}

// runDoctorWithWriter allows injecting a writer for testing.
func runDoctorWithWriter(ctx context.Context, w io.Writer) error {
	report := doctor.Run(ctx, doctorChecks())

	if doctorJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return errors.Wrap(err, "encoding doctor report")
		}
	} else {
		printDoctorText(w, report)
	}

	if report.HasErrors() {
		return mcpackerrors.NewSystemError(
			errors.Newf("%d check(s) failed", report.Summary.Errors),
			"fix the issues marked ✗ above")
	}
	return nil
}

func printDoctorText(w io.Writer, report *doctor.Report) {
	for _, r := range report.Results {
		fmt.Fprintf(w, "%s %s: %s\n", statusIcon(r.Status), r.Name, r.Message)
		if r.FixHint != "" && r.Status != doctor.SeverityPass {
			fmt.Fprintf(w, "  hint: %s\n", r.FixHint)
		}
	}

	fmt.Fprintf(w, "\nSummary: %d passed, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return "✓"
	case doctor.SeverityWarning:
		return "⚠"
	case doctor.SeverityError:
		return "✗"
	default:
		return "?"
	}
}
