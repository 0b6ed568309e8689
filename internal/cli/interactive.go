// Package cli implements the interactive study loops: flashcard paging and
// multiple-choice quiz rounds over a word pool.
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
)

// InteractiveCLI carries the terminal plumbing shared by the interactive
// study sessions.
type InteractiveCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

// NewInteractiveCLI returns a CLI reading from stdin and writing to stdout.
func NewInteractiveCLI() *InteractiveCLI {
	return &InteractiveCLI{
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

//go:generate mockgen -source=interactive.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session

// Session is one interactive step. Returning errEnd ends the loop cleanly.
type Session interface {
	Session(ctx context.Context) error
}

var errEnd = errors.New("end")

// Run drives session steps until the session ends, fails, or the user
// interrupts.
func (cli *InteractiveCLI) Run(ctx context.Context, session Session) error {
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

			if err := session.Session(ctx); err != nil {
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
		fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// Confirm asks a yes/no question. Anything but y/yes counts as no.
func (cli *InteractiveCLI) Confirm(prompt string) (bool, error) {
	if _, err := fmt.Fprintf(cli.stdoutWriter, "%s [y/N]: ", prompt); err != nil {
		return false, fmt.Errorf("failed to write to stdout: %w", err)
	}
	answer, err := cli.readLine()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes"), nil
}

// Prompt asks for one line of free-form input.
func (cli *InteractiveCLI) Prompt(label string) (string, error) {
	if _, err := fmt.Fprintf(cli.stdoutWriter, "%s: ", label); err != nil {
		return "", fmt.Errorf("failed to write to stdout: %w", err)
	}
	return cli.readLine()
}

// readLine reads one line of input and trims surrounding whitespace.
func (cli *InteractiveCLI) readLine() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
