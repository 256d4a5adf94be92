package healthify

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/healthifylite/healthify/internal/app"
	"github.com/spf13/cobra"
)

var (
	dbPath   string
	logLevel string
	logger   = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "healthify",
	Short: "healthify tracks food, workouts, and calorie goals from your terminal",
	Long:  "healthify is a local-first health tracker: log foods and workouts per day, see totals against a BMR-based calorie target, and get simple coaching tips.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := app.LoadEnv(); err != nil {
			return err
		}
		l, err := app.NewLogger(logLevel)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (default $HEALTHIFY_DB or user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default $HEALTHIFY_LOG_LEVEL or warn)")
}
