package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bloomwell/bloom/internal/daemon"
)

func init() {
	badgesCmd.Flags().BoolVar(&badgesAll, "all", false, "Include badges not yet earned, with progress")
	rootCmd.AddCommand(badgesCmd)
}

var badgesAll bool

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show earned badges",
	RunE:  runBadges,
}

func runBadges(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	awards, err := d.Wellness.Badges().Awards()
	if err != nil {
		return err
	}
	earned := make(map[string]bool, len(awards))
	earnedAt := make(map[string]string, len(awards))
	for _, a := range awards {
		earned[a.BadgeID] = true
		earnedAt[a.BadgeID] = a.EarnedAt.Format("2006-01-02")
	}

	if !badgesAll && len(awards) == 0 {
		fmt.Println("No badges earned yet. Keep logging!")
		return nil
	}

	snapshot, err := d.Wellness.Stats().Snapshot()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BADGE\tNAME\tSTATUS")
	for _, def := range d.Wellness.Badges().Definitions() {
		switch {
		case earned[def.ID]:
			fmt.Fprintf(w, "%s\t%s\tearned %s\n", def.Icon, def.Name, earnedAt[def.ID])
		case badgesAll:
			progress, err := d.Wellness.Badges().ProgressTowards(def.ID, snapshot)
			if err != nil {
				progress = 0
			}
			fmt.Fprintf(w, "%s\t%s\t%d%%\n", def.Icon, def.Name, progress)
		}
	}
	return w.Flush()
}
