package dietwise

import (
	"fmt"

	"github.com/aravindcleaerr/DietWise/internal/catalog"
	"github.com/aravindcleaerr/DietWise/internal/ledger"
	"github.com/aravindcleaerr/DietWise/internal/model"
	"github.com/spf13/cobra"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Log exercise from the built-in library",
}

var (
	exerciseDate     string
	exerciseDuration int
	exerciseSets     int
	exerciseReps     int
	exerciseNotes    string
	exerciseName     string
	exerciseCalories int
	exerciseCategory string
)

var exerciseAddCmd = &cobra.Command{
	Use:   "add [exercise-id]",
	Short: "Log an exercise session from the library, or free-form with --name",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(exerciseDate)
		if err != nil {
			return err
		}

		var entry model.ExerciseEntry
		var name string
		if len(args) == 1 {
			item, ok := catalog.ExerciseByID(args[0])
			if !ok {
				return fmt.Errorf("unknown exercise %q (try: dietwise exercise library)", args[0])
			}
			duration := exerciseDuration
			if duration <= 0 {
				duration = item.DefaultDuration
			}
			name = item.Name
			entry = model.ExerciseEntry{
				Date:            date.String(),
				Category:        item.Category,
				Name:            item.Name,
				DurationMinutes: duration,
				CaloriesBurned:  catalog.BurnForDuration(item, duration),
				Intensity:       item.Intensity,
				Notes:           exerciseNotes,
			}
		} else {
			if exerciseName == "" {
				return fmt.Errorf("an exercise id or --name is required")
			}
			if exerciseDuration <= 0 {
				return fmt.Errorf("--duration is required for free-form exercise")
			}
			if exerciseCalories <= 0 {
				return fmt.Errorf("--calories is required for free-form exercise")
			}
			category := exerciseCategory
			if category == "" {
				category = model.ExerciseCardio
			}
			name = exerciseName
			entry = model.ExerciseEntry{
				Date:            date.String(),
				Category:        category,
				Name:            exerciseName,
				DurationMinutes: exerciseDuration,
				CaloriesBurned:  exerciseCalories,
				Intensity:       "medium",
				Notes:           exerciseNotes,
			}
		}
		if exerciseSets > 0 {
			sets := exerciseSets
			entry.Sets = &sets
		}
		if exerciseReps > 0 {
			reps := exerciseReps
			entry.Reps = &reps
		}

		return withStore(func(store *ledger.Store) error {
			id, err := store.AddExercise(entry)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s for %d min (%d kcal) [%s]\n", name, entry.DurationMinutes, entry.CaloriesBurned, id)
			return nil
		})
	},
}

var exerciseRemoveCmd = &cobra.Command{
	Use:   "remove <entry-id>",
	Short: "Remove a logged exercise session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(exerciseDate)
		if err != nil {
			return err
		}
		return withStore(func(store *ledger.Store) error {
			store.RemoveExercise(date, args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s on %s\n", args[0], date)
			return nil
		})
	},
}

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show exercise logged for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(exerciseDate)
		if err != nil {
			return err
		}
		return withStore(func(store *ledger.Store) error {
			entries := store.ExercisesOn(date)
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No exercise logged on %s\n", date)
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d min\t%d kcal\n", e.ID, e.Name, e.DurationMinutes, e.CaloriesBurned)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total burned: %d kcal\n", store.ExerciseCaloriesOn(date))
			return nil
		})
	},
}

var exerciseLibraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Show the built-in exercise library",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tCATEGORY\tKCAL/30MIN\tINTENSITY")
		for _, item := range catalog.Exercises {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%s\n", item.ID, item.Name, item.Category, item.CaloriesPer30Min, item.Intensity)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exerciseCmd)
	exerciseCmd.AddCommand(exerciseAddCmd, exerciseRemoveCmd, exerciseListCmd, exerciseLibraryCmd)

	exerciseCmd.PersistentFlags().StringVar(&exerciseDate, "date", "", "Date YYYY-MM-DD (default today)")
	exerciseAddCmd.Flags().IntVar(&exerciseDuration, "duration", 0, "Duration in minutes (default from library)")
	exerciseAddCmd.Flags().IntVar(&exerciseSets, "sets", 0, "Sets, for strength work")
	exerciseAddCmd.Flags().IntVar(&exerciseReps, "reps", 0, "Reps per set")
	exerciseAddCmd.Flags().StringVar(&exerciseNotes, "notes", "", "Free-form notes")
	exerciseAddCmd.Flags().StringVar(&exerciseName, "name", "", "Name for a free-form exercise")
	exerciseAddCmd.Flags().IntVar(&exerciseCalories, "calories", 0, "Calories burned, for free-form exercise")
	exerciseAddCmd.Flags().StringVar(&exerciseCategory, "category", "", "Category: cardio, strength, flexibility, balance")
}
