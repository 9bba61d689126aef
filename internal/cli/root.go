// Package cli implements the pagectl command line tool.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Sternrassler/pagewindow/pkg/logging"
	"github.com/Sternrassler/pagewindow/pkg/pagination"
)

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Set once in PersistentPreRun

// NewRootCmd creates the root Cobra command for pagectl.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pagectl",
		Short:   "Inspect pagination ranges and navigation",
		Long:    "pagectl computes the page indicators of a pagination control and replays navigation against it",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cfg := logging.DefaultConfig()
			cfg.Pretty = true
			cfg.Output = cmd.ErrOrStderr()
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				cfg.Level = logging.LevelDebug
			} else {
				cfg.Level = logging.LevelWarn
			}
			logging.Setup(cfg)
			logger = logging.NewLogger("cli")
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Int("total", 1, "total number of pages")
	cmd.PersistentFlags().Int("page", 1, "active page")
	cmd.PersistentFlags().Int("siblings", pagination.DefaultSiblings, "pages shown on each side of the active page")
	cmd.PersistentFlags().Int("boundaries", pagination.DefaultBoundaries, "pages always shown at each edge")
	cmd.AddCommand(newRangeCmd(), newWalkCmd())

	return cmd
}

const rootCmdExample = `  # Show the range for page 5 of 20
  pagectl range --total 20 --page 5

  # Hide boundary pages
  pagectl range --total 20 --page 5 --boundaries 0

  # Replay navigation from page 1
  pagectl walk --total 10 next next last prev 4 first`

// configFromFlags reads the shared pagination flags.
func configFromFlags(cmd *cobra.Command) pagination.Config {
	flags := cmd.Flags()
	total, _ := flags.GetInt("total")
	page, _ := flags.GetInt("page")
	siblings, _ := flags.GetInt("siblings")
	boundaries, _ := flags.GetInt("boundaries")

	return pagination.Config{
		Page:       page,
		Total:      total,
		Siblings:   siblings,
		Boundaries: boundaries,
		Logger:     &logger,
	}
}
