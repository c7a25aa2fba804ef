package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/warmlittlelight/bloom/internal/achievements"
)

// NewListCommand lists every achievement with its lock state
func NewListCommand(rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List achievements and their lock state",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			a.engine.Initialize(cmd.Context())

			unlockedAt := make(map[string]time.Time)
			for _, record := range a.engine.UnlockedRecords() {
				unlockedAt[record.AchievementID] = record.UnlockedAt
			}

			for _, category := range achievements.AllCategories {
				defs := a.engine.Catalog().ByCategory(category)
				if len(defs) == 0 {
					continue
				}
				fmt.Printf("\n%s\n", strings.ToUpper(string(category)))
				for _, def := range defs {
					at, unlocked := unlockedAt[def.ID]
					switch {
					case unlocked:
						fmt.Printf("  [x] %s %s: %s (unlocked %s)\n", def.Icon, def.Name, def.Description, humanize.Time(at))
					case def.HiddenUntilUnlocked:
						fmt.Println("  [ ] ???")
					default:
						progress := a.engine.GetProgress(def.ID)
						fmt.Printf("  [ ] %s %s: %s (%.0f%%)\n", def.Icon, def.Name, def.Description, progress.PercentComplete)
					}
				}
			}
			return nil
		},
	}
}

// NewProgressCommand shows progress for one achievement or per category
func NewProgressCommand(rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "progress [id]",
		Short:         "Show unlock progress, overall or for one achievement",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			a.engine.Initialize(cmd.Context())

			if len(args) == 1 {
				progress := a.engine.GetProgress(args[0])
				if progress == nil {
					return fmt.Errorf("unknown achievement %q", args[0])
				}
				fmt.Printf("%s: %d/%d (%.0f%%)\n", args[0], progress.CurrentValue, progress.TargetValue, progress.PercentComplete)
				return nil
			}

			for _, category := range achievements.AllCategories {
				progress := a.engine.GetProgressByCategory(category)
				if progress.Total == 0 {
					continue
				}
				fmt.Printf("%-16s %d/%d (%.0f%%)\n", category, progress.Unlocked, progress.Total, progress.Percentage)
			}
			return nil
		},
	}
}

// NewStatsCommand dumps the tracked counters
func NewStatsCommand(rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "stats",
		Short:         "Show the tracked counters",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			a.engine.Initialize(cmd.Context())
			stats := a.engine.Stats()

			fmt.Printf("Tasks completed:   %d (today %d, this week %d)\n", stats.TasksCompleted, stats.Day.TasksCompleted, stats.Week.TasksCompleted)
			fmt.Printf("Tasks shrunk:      %d (consecutive %d)\n", stats.TasksShrunk, stats.ConsecutiveShrinks)
			fmt.Printf("Tasks stopped:     %d\n", stats.TasksStopped)
			fmt.Printf("Focus sessions:    %d (today %d, this week %d)\n", stats.TimerSessions, stats.Day.TimerSessions, stats.Week.TimerSessions)
			fmt.Printf("Focus minutes:     %d (today %d, this week %d)\n", stats.FocusMinutes, stats.Day.FocusMinutes, stats.Week.FocusMinutes)
			fmt.Printf("Breaks taken:      %d (today %d, this week %d)\n", stats.BreaksTaken, stats.Day.BreaksTaken, stats.Week.BreaksTaken)
			fmt.Printf("App opens:         %d\n", stats.AppOpens)
			fmt.Printf("Notes added:       %d\n", stats.NotesAdded)
			fmt.Printf("Donations:         %d\n", stats.Donations)
			fmt.Printf("Quiet-hours days:  %d\n", stats.QuietHoursDays)
			fmt.Printf("Streak:            %d days (longest %d)\n", stats.StreakDays, stats.LongestStreak)
			if categories := stats.CategoriesUsed.Values(); len(categories) > 0 {
				fmt.Printf("Categories used:   %s\n", strings.Join(categories, ", "))
			}
			if !stats.LastActive.IsZero() {
				fmt.Printf("Last active:       %s\n", humanize.Time(stats.LastActive))
			}
			return nil
		},
	}
}

// NewUnseenCommand lists unlocks the user has not acknowledged yet
func NewUnseenCommand(rootOpts *rootOptions) *cobra.Command {
	var ack bool

	cmd := &cobra.Command{
		Use:           "unseen",
		Short:         "Show unlocked achievements you haven't seen yet",
		Args:          cobra.NoArgs,
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

			defs := a.engine.GetUnseenAchievements()
			if len(defs) == 0 {
				fmt.Println("Nothing new.")
				return nil
			}
			for _, def := range defs {
				fmt.Printf("%s %s: %s\n", def.Icon, def.Name, def.Reward)
				if ack {
					a.engine.MarkAsSeen(ctx, def.ID)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&ack, "ack", false, "mark the listed achievements as seen")

	return cmd
}
