package dietwise

import (
	"fmt"

	"github.com/aravindcleaerr/DietWise/internal/ledger"
	"github.com/aravindcleaerr/DietWise/internal/model"
	"github.com/aravindcleaerr/DietWise/internal/targets"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile and derived daily targets",
}

var (
	profileName         string
	profileAge          int
	profileGender       string
	profileHeight       float64
	profileWeight       float64
	profileActivity     string
	profileGoal         string
	profileTargetWeight float64
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set your profile and recompute daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileAge <= 0 {
			return fmt.Errorf("age must be > 0")
		}
		if profileHeight <= 0 || profileWeight <= 0 {
			return fmt.Errorf("height and weight must be > 0")
		}
		switch profileGender {
		case model.GenderMale, model.GenderFemale, model.GenderOther:
		default:
			return fmt.Errorf("invalid gender %q (male, female, other)", profileGender)
		}
		switch profileActivity {
		case model.ActivitySedentary, model.ActivityLight, model.ActivityModerate, model.ActivityActive, model.ActivityVeryActive:
		default:
			return fmt.Errorf("invalid activity level %q", profileActivity)
		}
		switch profileGoal {
		case model.GoalWeightLoss, model.GoalWeightGain, model.GoalMaintenance:
		default:
			return fmt.Errorf("invalid goal %q (weight_loss, weight_gain, maintenance)", profileGoal)
		}

		return withStore(func(store *ledger.Store) error {
			store.SetProfile(model.UserProfile{
				Name:              profileName,
				Age:               profileAge,
				Gender:            profileGender,
				HeightCm:          profileHeight,
				WeightKg:          profileWeight,
				ActivityLevel:     profileActivity,
				GoalType:          profileGoal,
				TargetWeightKg:    profileTargetWeight,
				DietaryPreference: "vegetarian",
				IsOnboarded:       true,
			})
			t := store.DailyTargets()
			fmt.Fprintf(cmd.OutOrStdout(), "Profile saved. Daily targets:\n")
			printTargets(cmd, t)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *ledger.Store) error {
			p, ok := store.Profile()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile set. Run: dietwise profile set")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\nAge: %d\nGender: %s\nHeight: %.1f cm\nWeight: %.1f kg\nActivity: %s\nGoal: %s\n", p.Name, p.Age, p.Gender, p.HeightCm, p.WeightKg, p.ActivityLevel, p.GoalType)
			if p.TargetWeightKg > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Target weight: %.1f kg\n", p.TargetWeightKg)
			}
			return nil
		})
	},
}

var profileTargetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Show current daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *ledger.Store) error {
			printTargets(cmd, store.DailyTargets())
			return nil
		})
	},
}

var profileBMICmd = &cobra.Command{
	Use:   "bmi",
	Short: "Show BMI with Asian-population cutoffs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *ledger.Store) error {
			p, ok := store.Profile()
			if !ok {
				return fmt.Errorf("no profile set")
			}
			bmi := targets.ComputeBMI(p.WeightKg, p.HeightCm)
			fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.1f (%s)\n", bmi, targets.BMICategory(bmi))
			return nil
		})
	},
}

var profileGoalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show goal projection: deficit, weekly change, weeks to target",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *ledger.Store) error {
			p, ok := store.Profile()
			if !ok {
				return fmt.Errorf("no profile set")
			}
			info := targets.ComputeDeficitInfo(p)
			switch {
			case info.DailyDeficit > 0:
				fmt.Fprintf(cmd.OutOrStdout(), "Daily deficit: %d kcal\n", info.DailyDeficit)
			case info.DailyDeficit < 0:
				fmt.Fprintf(cmd.OutOrStdout(), "Daily surplus: %d kcal\n", -info.DailyDeficit)
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "Maintenance: no deficit or surplus")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Projected weekly change: %.2f kg\n", info.WeeklyWeightChange)
			if p.TargetWeightKg > 0 {
				weeks := targets.WeeksToGoal(p.WeightKg, p.TargetWeightKg, info.WeeklyWeightChange)
				fmt.Fprintf(cmd.OutOrStdout(), "Weeks to %.1f kg: %d\n", p.TargetWeightKg, weeks)
			}
			return nil
		})
	},
}

func printTargets(cmd *cobra.Command, t model.DailyTargets) {
	fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d kcal\nProtein: %d g\nCarbs: %d g\nFat: %d g\nFiber: %d g\nWater: %d ml\n", t.Calories, t.ProteinG, t.CarbsG, t.FatG, t.FiberG, t.WaterMl)
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd, profileTargetsCmd, profileBMICmd, profileGoalCmd)

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender: male, female, other")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "Activity level: sedentary, light, moderate, active, very_active")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "Goal: weight_loss, weight_gain, maintenance")
	profileSetCmd.Flags().Float64Var(&profileTargetWeight, "target-weight", 0, "Target weight in kg")
	_ = profileSetCmd.MarkFlagRequired("age")
	_ = profileSetCmd.MarkFlagRequired("gender")
	_ = profileSetCmd.MarkFlagRequired("height")
	_ = profileSetCmd.MarkFlagRequired("weight")
	_ = profileSetCmd.MarkFlagRequired("activity")
	_ = profileSetCmd.MarkFlagRequired("goal")
}
