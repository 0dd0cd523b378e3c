// Package cli implements the interactive study session and report rendering.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/flashmd/flashmd/internal/deck"
	"github.com/flashmd/flashmd/internal/session"
)

var errEnd = errors.New("end")

// StudyCLI manages the interactive study session in the terminal.
// Enter reveals the answer, y/n grades the card, q ends the session.
type StudyCLI struct {
	session      *session.Session
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	faint        *color.Color
}

// NewStudyCLI creates a study CLI reading from stdin and writing to stdout.
func NewStudyCLI(studySession *session.Session) *StudyCLI {
	return &StudyCLI{
		session:      studySession,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		faint:        color.New(color.Faint),
	}
}

// Run presents cards until the user quits or interrupts the session.
func (c *StudyCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := c.playRound(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(c.stdoutWriter, "\nReceived interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// playRound shows one card, reveals its answer, and records the grade.
func (c *StudyCLI) playRound(ctx context.Context) error {
	card, err := c.session.Next()
	if err != nil {
		return fmt.Errorf("session.Next() > %w", err)
	}

	_, _ = c.bold.Fprintf(c.stdoutWriter, "Question %s\n", card.ID)
	fmt.Fprintln(c.stdoutWriter, card.Question)
	_, _ = c.faint.Fprint(c.stdoutWriter, "Press Enter to show the answer (q to quit): ")

	input, err := c.readLine()
	if err != nil {
		return err
	}
	if input == "q" {
		return errEnd
	}

	c.printAnswer(card)

	graded, err := c.readGrade(ctx, card)
	if err != nil {
		return err
	}
	if graded {
		c.printStatus(card)
	}
	fmt.Fprintln(c.stdoutWriter)
	return nil
}

// readGrade prompts until the user grades the card or quits.
// Returns false when the session ends without grading.
func (c *StudyCLI) readGrade(ctx context.Context, card deck.Card) (bool, error) {
	for {
		_, _ = c.faint.Fprint(c.stdoutWriter, "Did you know it? [y/n, q to quit]: ")
		input, err := c.readLine()
		if err != nil {
			return false, err
		}

		switch input {
		case "y":
			if err := c.session.Grade(ctx, card.ID, session.OutcomeCorrect); err != nil {
				return false, fmt.Errorf("session.Grade(%s) > %w", card.ID, err)
			}
			fmt.Fprint(c.stdoutWriter, "✅ ")
			color.Green("Marked correct.")
			return true, nil
		case "n":
			if err := c.session.Grade(ctx, card.ID, session.OutcomeWrong); err != nil {
				return false, fmt.Errorf("session.Grade(%s) > %w", card.ID, err)
			}
			fmt.Fprint(c.stdoutWriter, "❌ ")
			color.Red("Marked wrong.")
			return true, nil
		case "q":
			return false, errEnd
		}
	}
}

func (c *StudyCLI) printAnswer(card deck.Card) {
	_, _ = c.bold.Fprintln(c.stdoutWriter, "Answer")
	fmt.Fprintln(c.stdoutWriter, card.Answer)
}

func (c *StudyCLI) printStatus(card deck.Card) {
	stats := c.session.StatsFor(card.ID)
	fmt.Fprintf(c.stdoutWriter, "Correct: %d | Wrong: %d\n", stats.Correct, stats.Incorrect)
}

// readLine reads one trimmed input line, mapping EOF to the end of the session.
func (c *StudyCLI) readLine() (string, error) {
	input, err := c.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", errEnd
		}
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(input), nil
}
