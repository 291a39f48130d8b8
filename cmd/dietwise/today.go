package dietwise

import (
	"fmt"

	"github.com/aravindcleaerr/DietWise/internal/ledger"
	"github.com/aravindcleaerr/DietWise/internal/micros"
	"github.com/aravindcleaerr/DietWise/internal/targets"
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day's dashboard: intake vs targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(todayDate)
		if err != nil {
			return err
		}
		return withStore(func(store *ledger.Store) error {
			day := store.Day(date)
			t := store.DailyTargets()
			c := day.TotalNutrition

			fmt.Fprintf(cmd.OutOrStdout(), "Dashboard for %s\n\n", date)
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %.0f / %d kcal (%d%%)\n", c.Calories, t.Calories, targets.Progress(c.Calories, float64(t.Calories), false))
			fmt.Fprintf(cmd.OutOrStdout(), "Protein:  %.1f / %d g (%d%%)\n", c.ProteinG, t.ProteinG, targets.Progress(c.ProteinG, float64(t.ProteinG), false))
			fmt.Fprintf(cmd.OutOrStdout(), "Carbs:    %.1f / %d g (%d%%)\n", c.CarbsG, t.CarbsG, targets.Progress(c.CarbsG, float64(t.CarbsG), false))
			fmt.Fprintf(cmd.OutOrStdout(), "Fat:      %.1f / %d g (%d%%)\n", c.FatG, t.FatG, targets.Progress(c.FatG, float64(t.FatG), false))
			fmt.Fprintf(cmd.OutOrStdout(), "Fiber:    %.1f / %d g (%d%%)\n", c.FiberG, t.FiberG, targets.Progress(c.FiberG, float64(t.FiberG), false))
			fmt.Fprintf(cmd.OutOrStdout(), "Water:    %d / %d ml (%d%%)\n", day.WaterMl, t.WaterMl, targets.Progress(float64(day.WaterMl), float64(t.WaterMl), false))

			if burned := store.ExerciseCaloriesOn(date); burned > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Exercise: %d kcal burned, net intake %.0f kcal\n", burned, c.Calories-float64(burned))
			}

			if alerts := micros.Alerts(micros.DailyTotals(day)); len(alerts) > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
				for _, a := range alerts {
					fmt.Fprintf(cmd.OutOrStdout(), "Low %s (%d%%): %s\n", a.Nutrient.Label, a.Percent, a.Nutrient.Tip)
				}
			}

			streak := store.Streak()
			if streak.CurrentStreak > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\nStreak: %d day(s), longest %d\n", streak.CurrentStreak, streak.LongestStreak)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
