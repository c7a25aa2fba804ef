package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewResetCommand zeroes the daily or weekly rolling counters. The engine
// does no scheduling of its own; whatever runs bloom decides when a day or
// week rolls over.
func NewResetCommand(rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "reset <daily|weekly>",
		Short:         "Zero the daily or weekly rolling counters",
		Args:          cobra.ExactArgs(1),
		ValidArgs:     []string{"daily", "weekly"},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			a.engine.Initialize(ctx)

			switch args[0] {
			case "daily":
				a.engine.ResetDailyCounters(ctx)
			case "weekly":
				a.engine.ResetWeeklyCounters(ctx)
			default:
				return fmt.Errorf("unknown window %q", args[0])
			}

			fmt.Printf("Reset %s counters.\n", args[0])
			return nil
		},
	}
}
