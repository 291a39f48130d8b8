package dietwise

import (
	"fmt"
	"strings"

	"github.com/aravindcleaerr/DietWise/internal/catalog"
	"github.com/aravindcleaerr/DietWise/internal/model"
	"github.com/aravindcleaerr/DietWise/internal/search"
	"github.com/spf13/cobra"
)

var (
	searchLimit    int
	searchCategory string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the food catalog by text or category",
	RunE: func(cmd *cobra.Command, args []string) error {
		var results []model.FoodItem
		query := strings.Join(args, " ")
		switch {
		case searchCategory != "":
			results = catalog.FoodsByCategory(searchCategory)
			if len(results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No foods in category %q\n", searchCategory)
				return nil
			}
		case strings.TrimSpace(query) == "":
			return fmt.Errorf("a query or --category is required")
		default:
			results = search.Foods(query)
		}
		if len(results) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No foods match %q\n", query)
			return nil
		}
		if searchLimit > 0 && len(results) > searchLimit {
			results = results[:searchLimit]
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tKCAL\tSERVING")
		for _, f := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f\t%s\n", f.ID, f.Name, f.Nutrition.Calories, f.ServingUnit)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "Maximum results to show")
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "List foods in a category instead of searching")
}
