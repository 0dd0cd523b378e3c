package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flashmd/flashmd/internal/cli"
	"github.com/flashmd/flashmd/internal/deck"
)

func newDeckCommand() *cobra.Command {
	deckCommand := &cobra.Command{
		Use:   "deck",
		Short: "Inspect markdown deck files",
	}

	deckCommand.AddCommand(newDeckListCommand())
	deckCommand.AddCommand(newDeckValidateCommand())

	return deckCommand
}

func newDeckListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [deck file]",
		Short: "List all cards parsed from a deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedDeck, err := parseDeckFile(args[0])
			if err != nil {
				return err
			}
			cli.WriteDeckReport(cmd.OutOrStdout(), parsedDeck)
			return nil
		},
	}
}

func newDeckValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [deck file]",
		Short: "Check that a deck parses and report duplicate labels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedDeck, err := parseDeckFile(args[0])
			if err != nil {
				if errors.Is(err, deck.ErrNoQuestionsFound) {
					return fmt.Errorf("%s: %w", args[0], deck.ErrNoQuestionsFound)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d cards\n", parsedDeck.Size())
			for _, id := range parsedDeck.DuplicateIDs() {
				fmt.Fprintf(cmd.OutOrStdout(), "Warning: question label %q appears more than once and shares progress history\n", id)
			}
			return nil
		},
	}
}

func parseDeckFile(path string) (deck.Deck, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return deck.Deck{}, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	cards, err := deck.Parse(string(contents))
	if err != nil {
		return deck.Deck{}, fmt.Errorf("deck.Parse(%s) > %w", path, err)
	}
	return deck.NewDeck(cards), nil
}
