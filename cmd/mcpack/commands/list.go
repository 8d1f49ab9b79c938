package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mcpackerrors "mcpack/internal/errors"
	"mcpack/internal/registry"
	"mcpack/internal/resolve"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// Flag values for the list command.
var (
	listJSON bool
	listYAML bool
)

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output in YAML format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List available patterns, or the servers of one pattern",
	Long: `Without arguments, list every available pattern with its server count.
With a pattern name, list that pattern's servers with their prerequisite
and description.

Listing is pure presentation over the registry: it never queries the
host tool, never probes prerequisites, and never invokes anything.`,
	Example: `  # All patterns
  mcpack list

  # One pattern's servers
  mcpack list aws

  # Machine-readable
  mcpack list --json
  mcpack list aws --yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

// patternEntry is one row of the all-patterns listing.
type patternEntry struct {
	Pattern     string `json:"pattern" yaml:"pattern"`
	Servers     int    `json:"servers" yaml:"servers"`
	Description string `json:"description" yaml:"description"`
}

// serverEntry is one row of the single-pattern listing.
type serverEntry struct {
	Server       string `json:"server" yaml:"server"`
	Prerequisite string `json:"prerequisite" yaml:"prerequisite"`
	Description  string `json:"description" yaml:"description"`
}

func runList(_ *cobra.Command, args []string) error {
	return runListWithWriter(args, os.Stdout)
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(args []string, w io.Writer) error {
	if listJSON && listYAML {
		return mcpackerrors.NewUserError(
			errors.New("cannot use --json and --yaml together"), "")
	}

	reg := loadRegistry()

	if len(args) == 0 {
		return listAll(reg, w)
	}
	return listPattern(reg, resolve.Normalize(args[0]), w)
}

// listAll presents every registered pattern.
func listAll(reg *registry.Registry, w io.Writer) error {
	entries := make([]patternEntry, 0, len(reg.PatternNames()))
	for _, name := range reg.PatternNames() {
		p, err := reg.Pattern(name)
		if err != nil {
			return err
		}
		entries = append(entries, patternEntry{
			Pattern:     p.Name,
			Servers:     len(p.Servers),
			Description: p.Description,
		})
	}

	if listJSON {
		return encodeJSON(w, entries)
	}
	if listYAML {
		return encodeYAML(w, entries)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sPATTERN%s\t%sSERVERS%s\t%sDESCRIPTION%s\n",
		colorBold, colorReset, colorBold, colorReset, colorBold, colorReset)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s%s%s\t%d\t%s\n",
			colorCyan, e.Pattern, colorReset, e.Servers, e.Description)
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "flushing tabwriter")
	}

	fmt.Fprintf(w, "\n%sRun 'mcpack list <pattern>' to see a pattern's servers%s\n",
		colorGray, colorReset)
	return nil
}

// listPattern presents the servers of a single pattern.
// Raises the registry's not-found error for unrecognized names.
func listPattern(reg *registry.Registry, name string, w io.Writer) error {
	servers, err := reg.PatternServers(name)
	if err != nil {
		return mcpackerrors.NewUserError(err, "Run 'mcpack list' to see available patterns")
	}

	entries := make([]serverEntry, 0, len(servers))
	for _, s := range servers {
		srv, err := reg.Server(s)
		if err != nil {
			return err
		}
		entries = append(entries, serverEntry{
			Server:       srv.Name,
			Prerequisite: string(srv.Prerequisite),
			Description:  srv.Description,
		})
	}

	if listJSON {
		return encodeJSON(w, entries)
	}
	if listYAML {
		return encodeYAML(w, entries)
	}

	p, _ := reg.Pattern(name)
	fmt.Fprintf(w, "%sPattern: %s%s - %s\n\n", colorCyan+colorBold, p.Name, colorReset, p.Description)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  %sSERVER%s\t%sPREREQUISITE%s\t%sDESCRIPTION%s\n",
		colorBold, colorReset, colorBold, colorReset, colorBold, colorReset)
	for _, e := range entries {
		fmt.Fprintf(tw, "  %s%s%s\t%s\t%s\n",
			colorGreen, e.Server, colorReset, e.Prerequisite, e.Description)
	}
	return errors.Wrap(tw.Flush(), "flushing tabwriter")
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "encoding JSON listing")
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return errors.Wrap(enc.Encode(v), "encoding YAML listing")
}
