package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bloomwell/bloom/internal/daemon"
)

func init() {
	useCmd.Flags().StringVar(&protectReason, "reason", "", "Why the protection was used")
	protectCmd.AddCommand(useCmd)
	rootCmd.AddCommand(protectCmd)
}

var protectReason string

var protectCmd = &cobra.Command{
	Use:   "protect",
	Short: "Show remaining streak protection tokens this month",
	RunE:  runProtect,
}

var useCmd = &cobra.Command{
	Use:   "use",
	Short: "Spend a streak protection token to forgive a missed day",
	RunE:  runProtectUse,
}

func runProtect(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	remaining, err := d.Wellness.Protection().RemainingThisMonth()
	if err != nil {
		return err
	}
	fmt.Printf("Streak protections remaining this month: %d of %d\n",
		remaining, d.Wellness.Protection().Cap())
	return nil
}

func runProtectUse(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	ok, err := d.Wellness.Protection().Consume(protectReason)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("No protections left this month — they reset on the 1st.")
		return nil
	}

	remaining, err := d.Wellness.Protection().RemainingThisMonth()
	if err != nil {
		return err
	}
	fmt.Printf("Protection used. %d remaining this month.\n", remaining)
	return nil
}
