package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flashmd/flashmd/internal/config"
	"github.com/flashmd/flashmd/internal/history"
)

func newHistoryCommand() *cobra.Command {
	historyCommand := &cobra.Command{
		Use:   "history",
		Short: "Inspect the review event log",
	}

	historyCommand.AddCommand(newHistoryRecentCommand())

	return historyCommand
}

func newHistoryRecentCommand() *cobra.Command {
	var limit int
	command := &cobra.Command{
		Use:   "recent",
		Short: "List the most recent review events",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.History.DatabasePath == "" {
				return fmt.Errorf("review history is disabled: set history.database_path in the configuration")
			}

			db, err := history.Open(cfg.History.DatabasePath)
			if err != nil {
				return fmt.Errorf("history.Open(%s) > %w", cfg.History.DatabasePath, err)
			}
			defer func() {
				_ = db.Close()
			}()

			reviews, err := history.NewDBRepository(db).FindRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(reviews) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No review events recorded yet.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%-20s  %-20s  %-8s  %s\n", "Recorded", "Question", "Outcome", "Session")
			for _, review := range reviews {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s  %-20s  %-8s  %s\n",
					review.RecordedAt.Format("2006-01-02 15:04:05"),
					review.CardID,
					review.Outcome,
					review.SessionID,
				)
			}
			return nil
		},
	}
	command.Flags().IntVar(&limit, "limit", 20, "maximum number of events to list")

	return command
}
