package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fbrfetch/fbrfetch/fbrapi"
)

// leaguesCmd represents the leagues command
var leaguesCmd = &cobra.Command{
	Use:   "leagues",
	Short: "List leagues for a country",
	Long: `Fetch the leagues available for a country and print a preview of the
flattened rows. Only men's competitions are returned.

Rows can be narrowed with an expression, for example to look up a
league id:

  fbrfetch leagues --country ENG --filter 'competition_name == "Premier League"'`,
	RunE: runLeagues,
}

func init() {
	rootCmd.AddCommand(leaguesCmd)

	leaguesCmd.Flags().StringVarP(&countryCode, "country", "c", "", "three-letter country code (e.g. ENG)")
	leaguesCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to the flattened rows")
	leaguesCmd.MarkFlagRequired("country")
}

func runLeagues(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	payload, err := client.GetLeagues(ctx, countryCode)
	if err != nil {
		return err
	}

	rows := fbrapi.FlattenLeagues(payload)
	logger.Debug().Int("rows", len(rows)).Msg("Flattened leagues payload")

	rows, err = applyFilter(rows)
	if err != nil {
		return err
	}

	printPreview(rows)
	return nil
}
