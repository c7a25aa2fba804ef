package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/warmlittlelight/bloom/internal/achievements"
)

// trackEvents lists the event names the track command accepts
var trackEvents = []string{
	"task-completed",
	"task-shrunk",
	"task-stopped",
	"timer-session",
	"focus",
	"break",
	"app-opened",
	"note",
	"streak",
	"donation",
	"quiet-hours",
}

// NewTrackCommand records one user-action event and prints what it unlocked
func NewTrackCommand(rootOpts *rootOptions) *cobra.Command {
	var (
		category string
		minutes  int
		days     int
	)

	cmd := &cobra.Command{
		Use:           "track <event>",
		Short:         "Record a user-action event",
		Long:          "Record one user-action event and print any achievements it unlocked.\n\nEvents: " + strings.Join(trackEvents, ", "),
		Args:          cobra.ExactArgs(1),
		ValidArgs:     trackEvents,
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

			unsubscribe := a.engine.Subscribe(func(event achievements.Event) {
				if event.Type == achievements.EventProgress && event.Progress != nil {
					fmt.Printf("Almost there: %s %s (%.0f%%)\n", event.Achievement.Icon, event.Achievement.Name, event.Progress.PercentComplete)
				}
			})
			defer unsubscribe()

			var newlyUnlocked []achievements.AchievementDefinition
			switch args[0] {
			case "task-completed":
				newlyUnlocked = a.engine.TrackTaskCompleted(ctx, category)
			case "task-shrunk":
				newlyUnlocked = a.engine.TrackTaskShrunk(ctx)
			case "task-stopped":
				newlyUnlocked = a.engine.TrackTaskStopped(ctx)
			case "timer-session":
				newlyUnlocked = a.engine.TrackTimerSession(ctx, minutes)
			case "focus":
				newlyUnlocked = a.engine.TrackFocusMinutes(ctx, minutes)
			case "break":
				newlyUnlocked = a.engine.TrackBreakTaken(ctx)
			case "app-opened":
				newlyUnlocked = a.engine.TrackAppOpened(ctx)
			case "note":
				newlyUnlocked = a.engine.TrackNoteAdded(ctx)
			case "streak":
				newlyUnlocked = a.engine.TrackStreakUpdate(ctx, days)
			case "donation":
				newlyUnlocked = a.engine.TrackDonation(ctx)
			case "quiet-hours":
				newlyUnlocked = a.engine.TrackQuietHoursRespected(ctx)
			default:
				return fmt.Errorf("unknown event %q", args[0])
			}

			if len(newlyUnlocked) == 0 {
				fmt.Println("Recorded.")
				return nil
			}
			for _, def := range newlyUnlocked {
				fmt.Printf("Unlocked: %s %s: %s\n", def.Icon, def.Name, def.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "task category (task-completed)")
	cmd.Flags().IntVar(&minutes, "minutes", 25, "minutes of focus (timer-session, focus)")
	cmd.Flags().IntVar(&days, "days", 0, "current streak in days (streak)")

	return cmd
}
