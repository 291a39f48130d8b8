package dietwise

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aravindcleaerr/DietWise/internal/ledger"
	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track weight over time",
}

var weightDate string

var weightAddCmd = &cobra.Command{
	Use:   "add <kg>",
	Short: "Record weight for a date, replacing any earlier entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kg, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
		if err != nil || kg <= 0 {
			return fmt.Errorf("invalid weight %q", args[0])
		}
		date, err := parseDateOrToday(weightDate)
		if err != nil {
			return err
		}
		return withStore(func(store *ledger.Store) error {
			store.UpsertWeight(date, kg)
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %.1f kg on %s\n", kg, date)
			return nil
		})
	},
}

var weightHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show weight history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *ledger.Store) error {
			history := store.WeightHistory()
			if len(history) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No weight entries")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tKG")
			for _, e := range history {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\n", e.Date, e.WeightKg)
			}
			first, last := history[0], history[len(history)-1]
			if len(history) > 1 {
				fmt.Fprintf(cmd.OutOrStdout(), "Change: %+.1f kg since %s\n", last.WeightKg-first.WeightKg, first.Date)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightAddCmd, weightHistoryCmd)
	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "Date YYYY-MM-DD (default today)")
}
