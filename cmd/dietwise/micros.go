package dietwise

import (
	"fmt"

	"github.com/aravindcleaerr/DietWise/internal/ledger"
	"github.com/aravindcleaerr/DietWise/internal/micros"
	"github.com/spf13/cobra"
)

var microsDate string

var microsCmd = &cobra.Command{
	Use:   "micros",
	Short: "Show micronutrient intake for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(microsDate)
		if err != nil {
			return err
		}
		return withStore(func(store *ledger.Store) error {
			day := store.Day(date)
			totals := micros.DailyTotals(day)
			pcts := micros.Percentages(totals)
			consumed := []float64{totals.VitaminB12Mcg, totals.IronMg, totals.CalciumMg, totals.VitaminDIU, totals.Omega3G}

			fmt.Fprintf(cmd.OutOrStdout(), "Micronutrients for %s\n", date)
			for i, n := range micros.Nutrients {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %.1f %s (%d%%)\n", n.Label, consumed[i], n.Unit, pcts[i])
			}
			for _, a := range micros.Alerts(totals) {
				fmt.Fprintf(cmd.OutOrStdout(), "Low %s: %s\n", a.Nutrient.Label, a.Nutrient.Tip)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(microsCmd)
	microsCmd.Flags().StringVar(&microsDate, "date", "", "Date YYYY-MM-DD (default today)")
}
