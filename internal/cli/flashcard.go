package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/scanvocab/scanvocab/internal/review"
	"github.com/scanvocab/scanvocab/internal/session"
)

// FlashcardCLI pages through a deck one card at a time: the english side
// first, the answer on demand, then a self-graded outcome that feeds the
// scheduler. Progress is checkpointed after every card so the session can
// resume where it left off.
type FlashcardCLI struct {
	*InteractiveCLI
	key        session.Key
	list       *session.List
	index      int
	reconciler *session.Reconciler
	updater    *review.StatusUpdater
}

// NewFlashcardCLI creates a flashcard session over a resolved word order.
func NewFlashcardCLI(
	base *InteractiveCLI,
	key session.Key,
	resolution session.Resolution,
	reconciler *session.Reconciler,
	updater *review.StatusUpdater,
) *FlashcardCLI {
	return &FlashcardCLI{
		InteractiveCLI: base,
		key:            key,
		list:           session.NewList(resolution.Words),
		index:          resolution.Index,
		reconciler:     reconciler,
		updater:        updater,
	}
}

// List exposes the session order so a background refresher can merge newly
// synced words into it.
func (r *FlashcardCLI) List() *session.List {
	return r.list
}

// Remaining returns the number of cards left in the session.
func (r *FlashcardCLI) Remaining() int {
	remaining := r.list.Len() - r.index
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (r *FlashcardCLI) Session(ctx context.Context) error {
	word, ok := r.list.At(r.index)
	if !ok {
		if _, err := fmt.Fprintln(r.stdoutWriter, "No more cards to practice!"); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return errEnd
	}

	// Front side.
	if _, err := fmt.Fprintf(r.stdoutWriter, "\n[%d/%d] ", r.index+1, r.list.Len()); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	_, _ = r.bold.Fprintf(r.stdoutWriter, "%s\n", word.English)
	if word.ExampleSentence != "" {
		_, _ = r.italic.Fprintf(r.stdoutWriter, "  %s\n", word.ExampleSentence)
	}

	if _, err := fmt.Fprint(r.stdoutWriter, "Press enter to show the answer: "); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	if _, err := r.readLine(); err != nil {
		return err
	}

	// Back side.
	_, _ = r.bold.Fprintf(r.stdoutWriter, "%s\n", word.Japanese)
	if word.ExampleSentenceJa != "" {
		_, _ = r.italic.Fprintf(r.stdoutWriter, "  %s\n", word.ExampleSentenceJa)
	}

	knew, err := r.Confirm("Did you remember it?")
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	if knew {
		if _, err := fmt.Fprint(r.stdoutWriter, "✅ "); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		_, _ = green.Fprintln(r.stdoutWriter, "Marked as remembered.")
	} else {
		if _, err := fmt.Fprint(r.stdoutWriter, "❌ "); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		_, _ = red.Fprintln(r.stdoutWriter, "Marked as missed.")
	}

	result := r.updater.Apply(ctx, word, knew)
	if result.Err != nil {
		// A failed status write is reported but never stops the session.
		if _, err := fmt.Fprintf(r.stdoutWriter, "Failed to save the status update: %v\n", result.Err); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	} else if result.Changed() {
		if _, err := fmt.Fprintf(r.stdoutWriter, "Status: %s -> %s\n", result.From, result.To); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}

	r.index++
	r.reconciler.Save(r.key, r.list.Words(), r.index)
	return nil
}
