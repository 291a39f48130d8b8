package dietwise

import (
	"fmt"
	"os"
	"time"

	"github.com/aravindcleaerr/DietWise/internal/backup"
	"github.com/aravindcleaerr/DietWise/internal/ledger"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export and import full-state backups",
}

var backupOut string

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a backup JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *ledger.Store) error {
			now := time.Now()
			raw, err := backup.Export(store.Snapshot(), now)
			if err != nil {
				return err
			}
			out := backupOut
			if out == "" {
				out = backup.FileName(now)
			}
			if err := os.WriteFile(out, raw, 0o644); err != nil {
				return fmt.Errorf("write backup file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported backup to %s\n", out)
			return nil
		})
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore state from a backup JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read backup file: %w", err)
		}
		state, err := backup.Parse(raw)
		if err != nil {
			return err
		}
		return withStore(func(store *ledger.Store) error {
			store.Restore(state)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported backup from %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupExportCmd, backupImportCmd)
	backupExportCmd.Flags().StringVar(&backupOut, "out", "", "Output file (default dietwise-backup-YYYY-MM-DD.json)")
}
