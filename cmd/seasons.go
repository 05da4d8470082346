package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fbrfetch/fbrfetch/fbrapi"
)

// seasonsCmd represents the seasons command
var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "List seasons for a league",
	Long: `Fetch the seasons on record for a league and print a preview of the
flattened rows.

League ids come from the leagues command; the Premier League is
league id 9.`,
	RunE: runSeasons,
}

func init() {
	rootCmd.AddCommand(seasonsCmd)

	seasonsCmd.Flags().IntVarP(&leagueID, "league-id", "l", 0, "league id (e.g. 9 for the Premier League)")
	seasonsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to the flattened rows")
	seasonsCmd.MarkFlagRequired("league-id")
}

func runSeasons(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	payload, err := client.GetSeasons(ctx, leagueID)
	if err != nil {
		return err
	}

	rows := fbrapi.FlattenSeasons(payload)
	logger.Debug().Int("rows", len(rows)).Msg("Flattened seasons payload")

	rows, err = applyFilter(rows)
	if err != nil {
		return err
	}

	printPreview(rows)
	return nil
}
