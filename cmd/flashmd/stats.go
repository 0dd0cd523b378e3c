package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flashmd/flashmd/internal/cli"
	"github.com/flashmd/flashmd/internal/config"
	"github.com/flashmd/flashmd/internal/progress"
)

func newStatsCommand() *cobra.Command {
	statsCommand := &cobra.Command{
		Use:   "stats",
		Short: "Report per-card grading statistics",
	}

	statsCommand.AddCommand(newStatsShowCommand())
	statsCommand.AddCommand(newStatsExportCommand())

	return statsCommand
}

func newStatsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [deck file]",
		Short: "Show grading counters and draw weights per card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			parsedDeck, err := parseDeckFile(args[0])
			if err != nil {
				return err
			}

			ledger := progress.NewStore(progress.PathForDeck(args[0], cfg.Decks.ProgressFilename)).Load()
			cli.WriteStatsReport(cmd.OutOrStdout(), parsedDeck, ledger)
			return nil
		},
	}
}

func newStatsExportCommand() *cobra.Command {
	var outputPath string
	command := &cobra.Command{
		Use:   "export [deck file]",
		Short: "Export per-card statistics as a YAML snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			parsedDeck, err := parseDeckFile(args[0])
			if err != nil {
				return err
			}

			ledger := progress.NewStore(progress.PathForDeck(args[0], cfg.Decks.ProgressFilename)).Load()
			snapshot := cli.NewStatsSnapshot(args[0], parsedDeck, ledger)
			if err := cli.WriteStatsSnapshot(outputPath, snapshot); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported statistics for %d cards to %s\n", parsedDeck.Size(), outputPath)
			return nil
		},
	}
	command.Flags().StringVarP(&outputPath, "output", "o", "flashmd_stats.yml", "output file path")

	return command
}
