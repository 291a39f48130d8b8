package dietwise

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "dietwise",
	Short: "dietwise tracks Indian vegetarian nutrition from your terminal",
	Long:  "dietwise is a local-first nutrition tracking CLI for Indian vegetarian diets with daily targets, meal logging, water, weight, exercise, micronutrients, and streaks.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
