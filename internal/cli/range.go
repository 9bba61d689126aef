package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sternrassler/pagewindow/pkg/pagination"
)

func newRangeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Print the page indicators for the active page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := pagination.New(configFromFlags(cmd)).Snapshot()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(state)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), formatRange(state))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full state as JSON")
	return cmd
}

// formatRange renders the range with the active page in brackets,
// e.g. "1 ... 4 [5] 6 ... 10".
func formatRange(state pagination.State) string {
	parts := make([]string, len(state.Range))
	for i, e := range state.Range {
		if p, ok := e.Page(); ok && p == state.Active {
			parts[i] = "[" + e.String() + "]"
			continue
		}
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// printState writes one line per state; used by walk.
func printState(w io.Writer, label string, state pagination.State) error {
	_, err := fmt.Fprintf(w, "%-6s %s\n", label, formatRange(state))
	return err
}
