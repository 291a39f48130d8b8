package dietwise

import (
	"fmt"

	"github.com/aravindcleaerr/DietWise/internal/catalog"
	"github.com/aravindcleaerr/DietWise/internal/ledger"
	"github.com/aravindcleaerr/DietWise/internal/model"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log foods against meal slots",
}

var (
	logDate     string
	logMeal     string
	logServings float64
)

var logAddCmd = &cobra.Command{
	Use:   "add <food-id>",
	Short: "Log a catalog food to a meal slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		food, ok := catalog.FoodByID(args[0])
		if !ok {
			return fmt.Errorf("unknown food %q (try: dietwise search)", args[0])
		}
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		mealType := model.MealType(logMeal)

		return withStore(func(store *ledger.Store) error {
			logged := model.LoggedFood{
				FoodID:      food.ID,
				FoodName:    food.Name,
				Servings:    logServings,
				ServingUnit: food.ServingUnit,
				Nutrition:   food.Nutrition.Scale(logServings),
			}
			if err := store.AddFood(date, mealType, logged); err != nil {
				return err
			}
			store.MarkRecent(food.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.1fx %s to %s on %s (%.0f kcal)\n", logServings, food.Name, mealType.Label(), date, logged.Nutrition.Calories)
			return nil
		})
	},
}

var logRemoveCmd = &cobra.Command{
	Use:   "remove <entry-id>",
	Short: "Remove a logged food from a meal slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		return withStore(func(store *ledger.Store) error {
			store.RemoveFood(date, model.MealType(logMeal), args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s on %s\n", args[0], logMeal, date)
			return nil
		})
	},
}

var logServingsCmd = &cobra.Command{
	Use:   "servings <entry-id>",
	Short: "Change the servings of a logged food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		mealType := model.MealType(logMeal)
		return withStore(func(store *ledger.Store) error {
			entry, ok := store.Food(date, mealType, args[0])
			if !ok {
				return fmt.Errorf("no logged food %q in %s on %s", args[0], logMeal, date)
			}
			food, ok := catalog.FoodByID(entry.FoodID)
			if !ok {
				return fmt.Errorf("food %q is no longer in the catalog", entry.FoodID)
			}
			if err := store.UpdateServings(date, mealType, args[0], logServings, food.Nutrition); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s to %.1f servings of %s\n", args[0], logServings, food.Name)
			return nil
		})
	},
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show everything logged for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		return withStore(func(store *ledger.Store) error {
			day := store.Day(date)
			if len(day.Meals) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing logged on %s\n", date)
				return nil
			}
			for _, meal := range day.Meals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%.0f kcal)\n", meal.MealType.Label(), meal.TotalNutrition.Calories)
				for _, f := range meal.Foods {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%.1fx %s\t%.0f kcal\t%s\n", f.ID, f.Servings, f.FoodName, f.Nutrition.Calories, f.ServingUnit)
				}
			}
			t := day.TotalNutrition
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %.0f kcal, P %.1fg, C %.1fg, F %.1fg, fiber %.1fg\n", t.Calories, t.ProteinG, t.CarbsG, t.FatG, t.FiberG)
			return nil
		})
	},
}

var logFavoriteCmd = &cobra.Command{
	Use:   "favorite <food-id>",
	Short: "Toggle a food on the favorites list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := catalog.FoodByID(args[0]); !ok {
			return fmt.Errorf("unknown food %q", args[0])
		}
		return withStore(func(store *ledger.Store) error {
			store.ToggleFavorite(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Toggled favorite %s\n", args[0])
			return nil
		})
	},
}

var logRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recently logged foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *ledger.Store) error {
			ids := store.RecentFoodIDs()
			if len(ids) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recent foods")
				return nil
			}
			for _, id := range ids {
				if food, ok := catalog.FoodByID(id); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", food.ID, food.Name)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd, logRemoveCmd, logServingsCmd, logListCmd, logFavoriteCmd, logRecentCmd)

	logCmd.PersistentFlags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")

	logAddCmd.Flags().StringVar(&logMeal, "meal", "", "Meal slot: pre_breakfast, breakfast, mid_morning, lunch, evening_snack, dinner, post_dinner")
	logAddCmd.Flags().Float64Var(&logServings, "servings", 1, "Number of servings")
	_ = logAddCmd.MarkFlagRequired("meal")

	logRemoveCmd.Flags().StringVar(&logMeal, "meal", "", "Meal slot the entry was logged under")
	_ = logRemoveCmd.MarkFlagRequired("meal")

	logServingsCmd.Flags().StringVar(&logMeal, "meal", "", "Meal slot the entry was logged under")
	logServingsCmd.Flags().Float64Var(&logServings, "servings", 0, "New servings count")
	_ = logServingsCmd.MarkFlagRequired("meal")
	_ = logServingsCmd.MarkFlagRequired("servings")
}
