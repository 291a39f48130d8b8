package dietwise

import (
	"fmt"

	"github.com/aravindcleaerr/DietWise/internal/ledger"
	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show your logging streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *ledger.Store) error {
			s := store.Streak()
			if s.LastLoggedDate == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No foods logged yet")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Current streak: %d day(s)\nLongest streak: %d day(s)\nLast logged: %s\n", s.CurrentStreak, s.LongestStreak, s.LastLoggedDate)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
}
