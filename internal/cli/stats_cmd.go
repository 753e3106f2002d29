package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/freshtrackhq/freshtrack/internal/remote"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show waste statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := remote.NewClient(app.Config.Remote.BaseURL)
			stats, err := client.WasteStats(context.Background())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wasted this week: %s (%s vs last week)\n", stats.Summary.Total, stats.Summary.Delta)
			fmt.Fprintf(out, "Saved %s / wasted %s\n\n", stats.Summary.SavedValueFormatted, stats.Summary.WastedValueFormatted)

			fmt.Fprintln(out, "Last 7 days:")
			for _, p := range stats.Trend {
				fmt.Fprintf(out, "  %s  %d\n", p.Label, p.Value)
			}

			if len(stats.CategoryBreakdown) == 0 {
				return nil
			}

			fmt.Fprintln(out)
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tWASTED\tSAVED")
			for _, c := range stats.CategoryBreakdown {
				fmt.Fprintf(w, "%s\t%d\t%d\n", c.Category, c.WastedCount, c.SavedCount)
			}
			return w.Flush()
		},
	}
}
