package dietwise

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aravindcleaerr/DietWise/internal/caldate"
	"github.com/aravindcleaerr/DietWise/internal/ledger"
	"github.com/aravindcleaerr/DietWise/internal/targets"
	"github.com/spf13/cobra"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track daily water intake",
}

var waterDate string

var waterAddCmd = &cobra.Command{
	Use:   "add <ml>",
	Short: "Add water in ml to the day's total",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ml, err := parseMl(args[0])
		if err != nil {
			return err
		}
		date, err := parseDateOrToday(waterDate)
		if err != nil {
			return err
		}
		return withStore(func(store *ledger.Store) error {
			store.AddWater(date, ml)
			printWater(cmd, store, date)
			return nil
		})
	},
}

var waterSetCmd = &cobra.Command{
	Use:   "set <ml>",
	Short: "Set the day's water total in ml",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ml, err := parseMl(args[0])
		if err != nil {
			return err
		}
		date, err := parseDateOrToday(waterDate)
		if err != nil {
			return err
		}
		return withStore(func(store *ledger.Store) error {
			store.SetWater(date, ml)
			printWater(cmd, store, date)
			return nil
		})
	},
}

var waterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the day's water total against target",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(waterDate)
		if err != nil {
			return err
		}
		return withStore(func(store *ledger.Store) error {
			printWater(cmd, store, date)
			return nil
		})
	},
}

func parseMl(value string) (int, error) {
	ml, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid ml %q", value)
	}
	return ml, nil
}

func printWater(cmd *cobra.Command, store *ledger.Store, date caldate.Date) {
	day := store.Day(date)
	target := store.DailyTargets().WaterMl
	pct := targets.Progress(float64(day.WaterMl), float64(target), false)
	fmt.Fprintf(cmd.OutOrStdout(), "Water on %s: %d / %d ml (%d%%)\n", day.Date, day.WaterMl, target, pct)
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterAddCmd, waterSetCmd, waterShowCmd)
	waterCmd.PersistentFlags().StringVar(&waterDate, "date", "", "Date YYYY-MM-DD (default today)")
}
