package dietwise

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aravindcleaerr/DietWise/internal/reminder"
	"github.com/aravindcleaerr/DietWise/internal/storage"
	"github.com/spf13/cobra"
)

const reminderConfigKey = "reminder_config"

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Configure and check meal and water reminders",
}

var (
	remindEnable        bool
	remindDisable       bool
	remindMealTimes     string
	remindWaterInterval int
)

var remindConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change reminder settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			cfg, err := loadReminderConfig(sqldb)
			if err != nil {
				return err
			}
			if remindEnable && remindDisable {
				return fmt.Errorf("--enable and --disable are mutually exclusive")
			}
			if remindEnable {
				cfg.Enabled = true
			}
			if remindDisable {
				cfg.Enabled = false
			}
			if remindMealTimes != "" {
				times := strings.Split(remindMealTimes, ",")
				for i, tm := range times {
					tm = strings.TrimSpace(tm)
					if _, err := time.Parse("15:04", tm); err != nil {
						return fmt.Errorf("invalid meal time %q (expected HH:MM)", tm)
					}
					times[i] = tm
				}
				cfg.MealTimes = times
			}
			if remindWaterInterval > 0 {
				cfg.WaterIntervalMinutes = remindWaterInterval
			}

			raw, err := json.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encode reminder config: %w", err)
			}
			if err := storage.SetConfig(sqldb, reminderConfigKey, string(raw)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Enabled: %v\nMeal reminders: %v at %s\nWater reminders: %v every %d min\n", cfg.Enabled, cfg.MealReminders, strings.Join(cfg.MealTimes, ", "), cfg.WaterReminders, cfg.WaterIntervalMinutes)
			return nil
		})
	},
}

var remindCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Show reminders due right now",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			cfg, err := loadReminderConfig(sqldb)
			if err != nil {
				return err
			}
			now := time.Now()
			due := false
			if msg, ok := cfg.MealReminderAt(now); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", msg.Title, msg.Body)
				due = true
			}
			if msg, ok := cfg.WaterReminderDue(now); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", msg.Title, msg.Body)
				due = true
			}
			if !due {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing due")
			}
			return nil
		})
	},
}

func loadReminderConfig(sqldb *sql.DB) (reminder.Config, error) {
	value, ok, err := storage.GetConfig(sqldb, reminderConfigKey)
	if err != nil {
		return reminder.Config{}, err
	}
	if !ok {
		return reminder.DefaultConfig(), nil
	}
	return reminder.ParseConfig([]byte(value))
}

func init() {
	rootCmd.AddCommand(remindCmd)
	remindCmd.AddCommand(remindConfigCmd, remindCheckCmd)

	remindConfigCmd.Flags().BoolVar(&remindEnable, "enable", false, "Turn reminders on")
	remindConfigCmd.Flags().BoolVar(&remindDisable, "disable", false, "Turn reminders off")
	remindConfigCmd.Flags().StringVar(&remindMealTimes, "meal-times", "", "Comma-separated HH:MM meal reminder times")
	remindConfigCmd.Flags().IntVar(&remindWaterInterval, "water-interval", 0, "Water reminder interval in minutes")
}
