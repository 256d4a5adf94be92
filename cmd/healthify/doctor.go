package healthify

import (
	"database/sql"
	"fmt"

	"github.com/healthifylite/healthify/internal/service"
	"github.com/spf13/cobra"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.RunDoctor(sqldb, doctorFix, entryID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unreadable blobs: %d\n", report.UnreadableBlobs)
			fmt.Fprintf(cmd.OutOrStdout(), "Invalid day keys: %d\n", report.InvalidDayKeys)
			fmt.Fprintf(cmd.OutOrStdout(), "Malformed days: %d\n", report.MalformedDays)
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate entry ids: %d\n", report.DuplicateEntryIDs)
			if doctorFix {
				fmt.Fprintf(cmd.OutOrStdout(), "Fixed blobs: %d\n", report.FixedBlobs)
				// Re-check after fixes so exit status reflects final state.
				report, err = service.RunDoctor(sqldb, false, entryID)
				if err != nil {
					return err
				}
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Attempt safe auto-fixes")
}
