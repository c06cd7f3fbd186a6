package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bloomwell/bloom/internal/daemon"
)

func init() {
	checkinCmd.AddCommand(dismissCmd)
	rootCmd.AddCommand(checkinCmd)
}

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Show proactive check-in suggestions",
	RunE:  runCheckin,
}

var dismissCmd = &cobra.Command{
	Use:   "dismiss <trigger-id>",
	Short: "Dismiss a check-in suggestion so it does not reappear",
	Args:  cobra.ExactArgs(1),
	RunE:  runDismiss,
}

func runCheckin(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	triggers, err := d.Wellness.ActiveTriggers()
	if err != nil {
		return err
	}
	if len(triggers) == 0 {
		fmt.Println("Nothing needs your attention right now.")
		return nil
	}

	for _, t := range triggers {
		fmt.Printf("[%s] %s\n  %s\n  (id: %s)\n", t.Priority, t.Title, t.Message, t.ID)
	}
	return nil
}

func runDismiss(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Wellness.Triggers().Dismiss(args[0]); err != nil {
		return err
	}
	fmt.Println("Dismissed.")
	return nil
}
