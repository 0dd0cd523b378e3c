package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/flashmd/flashmd/internal/cli"
	"github.com/flashmd/flashmd/internal/config"
	"github.com/flashmd/flashmd/internal/history"
	"github.com/flashmd/flashmd/internal/session"
)

func newStudyCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "study [deck file]",
		Short: "Start an interactive study session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			deckPath, err := resolveDeckPath(cfg, args)
			if err != nil {
				return err
			}

			sessionOptions := []session.Option{
				session.WithProgressFilename(cfg.Decks.ProgressFilename),
			}
			if cfg.History.DatabasePath != "" {
				db, err := history.Open(cfg.History.DatabasePath)
				if err != nil {
					return fmt.Errorf("history.Open(%s) > %w", cfg.History.DatabasePath, err)
				}
				defer func() {
					_ = db.Close()
				}()
				sessionOptions = append(sessionOptions,
					session.WithRecorder(history.NewLogger(history.NewDBRepository(db))))
			}

			studySession, err := session.New(deckPath, sessionOptions...)
			if err != nil {
				return err
			}

			// Remember the deck for the next `study` without arguments.
			cfg.Decks.LastPath = deckPath
			if err := config.Save(configFile, cfg); err != nil {
				slog.Warn("failed to remember the last deck", "error", err)
			}

			if duplicates := studySession.Deck().DuplicateIDs(); len(duplicates) > 0 {
				fmt.Printf("Warning: duplicate question labels share progress history: %v\n", duplicates)
			}

			fmt.Printf("Studying %s (%d cards)\n\n", deckPath, studySession.Deck().Size())
			return cli.NewStudyCLI(studySession).Run(context.Background())
		},
	}

	return command
}

// resolveDeckPath picks the deck from the argument or the remembered last path.
func resolveDeckPath(cfg *config.Config, args []string) (string, error) {
	deckPath := cfg.Decks.LastPath
	if len(args) > 0 {
		deckPath = args[0]
	}
	if deckPath == "" {
		return "", fmt.Errorf("no deck file given and no previous deck remembered")
	}
	if _, err := os.Stat(deckPath); err != nil {
		return "", fmt.Errorf("deck file not found: %s", deckPath)
	}
	return deckPath, nil
}
