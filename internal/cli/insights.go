package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bloomwell/bloom/internal/daemon"
)

func init() {
	rootCmd.AddCommand(insightsCmd)
}

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show mood pattern insights",
	RunE:  runInsights,
}

func runInsights(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	insights, err := d.Wellness.Insights()
	if err != nil {
		return err
	}
	if len(insights) == 0 {
		fmt.Println("Not enough data yet — log a few more moods and check back.")
		return nil
	}

	for _, in := range insights {
		fmt.Printf("• %s\n  %s\n", in.Title, in.Description)
	}
	return nil
}
