package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/bloomwell/bloom/internal/app/wellness"
	"github.com/bloomwell/bloom/internal/daemon"
	"github.com/bloomwell/bloom/internal/domain"
)

func init() {
	moodCmd.Flags().StringSliceVar(&moodTags, "tags", nil, "Activity tags for this mood (e.g. exercise,social)")
	logCmd.AddCommand(moodCmd)
	logCmd.AddCommand(journalCmd)
	exerciseCmd.Flags().BoolVar(&exerciseSkipped, "skipped", false, "Mark the session as not completed")
	logCmd.AddCommand(exerciseCmd)
	rootCmd.AddCommand(logCmd)
}

var (
	moodTags        []string
	exerciseSkipped bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log an activity (mood, journal, or exercise)",
}

var moodCmd = &cobra.Command{
	Use:   "mood <score 1-5>",
	Short: "Log a mood check-in",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogMood,
}

var journalCmd = &cobra.Command{
	Use:   "journal <text>",
	Short: "Log a journal entry",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLogJournal,
}

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Log an exercise session",
	RunE:  runLogExercise,
}

func runLogMood(cmd *cobra.Command, args []string) error {
	score, err := strconv.Atoi(args[0])
	if err != nil {
		return domain.ErrInvalidMoodScore
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	result, err := d.Wellness.LogMood(score, moodTags, time.Now())
	if err != nil {
		return err
	}
	printLogResult(result)
	return nil
}

func runLogJournal(cmd *cobra.Command, args []string) error {
	text := args[0]
	for _, a := range args[1:] {
		text += " " + a
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	result, err := d.Wellness.LogJournal(text, time.Now())
	if err != nil {
		return err
	}
	printLogResult(result)
	return nil
}

func runLogExercise(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	result, err := d.Wellness.LogExercise(!exerciseSkipped, time.Now())
	if err != nil {
		return err
	}
	printLogResult(result)
	return nil
}

func printLogResult(r wellness.LogResult) {
	fmt.Printf("Logged %s.\n", r.Record.Kind)
	if r.Streak.CurrentStreak > 1 {
		fmt.Printf("%s streak: %d days\n", r.Record.Kind, r.Streak.CurrentStreak)
	}
	for _, award := range r.NewBadges {
		fmt.Printf("Badge earned: %s\n", award.BadgeID)
	}
}
