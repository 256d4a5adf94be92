package healthify

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/healthifylite/healthify/internal/service"
	"github.com/spf13/cobra"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Get coaching suggestions and chat with the coach",
}

var coachDate string

var coachSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Show the coaching suggestion for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(_ *sql.DB, t *service.Tracker) error {
			key, err := t.ResolveKey(coachDate)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Suggest(key))
			return nil
		})
	},
}

var coachAskCmd = &cobra.Command{
	Use:   "ask <message...>",
	Short: "Ask the coach a question; the exchange is kept in chat history",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(_ *sql.DB, t *service.Tracker) error {
			reply, err := t.SendChat(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply.Content)
			return nil
		})
	},
}

var coachHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show chat history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(_ *sql.DB, t *service.Tracker) error {
			history := t.ChatHistory()
			if len(history) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No messages yet")
				return nil
			}
			for _, m := range history {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", m.Role, m.Content)
			}
			return nil
		})
	},
}

var coachTipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Show general coaching tips",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, tip := range service.CoachTips {
			fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", tip)
		}
		return nil
	},
}

var coachClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear chat history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(_ *sql.DB, t *service.Tracker) error {
			t.ClearChat()
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared chat history")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(coachCmd)
	coachCmd.AddCommand(coachSuggestCmd, coachAskCmd, coachHistoryCmd, coachTipsCmd, coachClearCmd)
	coachSuggestCmd.Flags().StringVar(&coachDate, "date", "", "Date YYYY-MM-DD (default today)")
}
