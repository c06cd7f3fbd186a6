package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bloomwell/bloom/internal/daemon"
)

func init() {
	rootCmd.AddCommand(streaksCmd)
}

var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Show current and longest streaks per activity kind",
	RunE:  runStreaks,
}

func runStreaks(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	streaks, err := d.Wellness.Streaks().All()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tCURRENT\tLONGEST\tLAST ACTIVITY")
	for _, s := range streaks {
		last := "-"
		if !s.LastActivityDate.IsZero() {
			last = s.LastActivityDate.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", s.Kind, s.CurrentStreak, s.LongestStreak, last)
	}
	return w.Flush()
}
