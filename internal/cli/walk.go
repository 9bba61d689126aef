package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Sternrassler/pagewindow/pkg/pagination"
)

// ErrInvalidStep is returned for a walk step that is neither an
// operation name nor a page number.
var ErrInvalidStep = errors.New("invalid walk step")

func newWalkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "walk STEP...",
		Short: "Replay navigation steps and print the range after each",
		Long: `Replay navigation steps against a controller, printing the range after each.

A step is one of next, prev, first, last or a page number to jump to.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := parseSteps(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cfg := configFromFlags(cmd)
			cfg.OnChange = pagination.ObserverFunc(func(page int) {
				logger.Debug().Int("page", page).Msg("Page changed")
			})
			ctrl := pagination.New(cfg)

			if err := printState(out, "start", ctrl.Snapshot()); err != nil {
				return err
			}
			for i, step := range steps {
				if err := ctrl.Apply(step.op, step.page); err != nil {
					return err
				}
				if err := printState(out, args[i], ctrl.Snapshot()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

type step struct {
	op   pagination.Op
	page int
}

func parseSteps(args []string) ([]step, error) {
	steps := make([]step, 0, len(args))
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			steps = append(steps, step{op: pagination.OpSet, page: n})
			continue
		}
		op, err := pagination.ParseOp(arg)
		if err != nil || op == pagination.OpSet {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStep, arg)
		}
		steps = append(steps, step{op: op})
	}
	return steps, nil
}
