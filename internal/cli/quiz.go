package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"github.com/scanvocab/scanvocab/internal/quiz"
	"github.com/scanvocab/scanvocab/internal/review"
	"github.com/scanvocab/scanvocab/internal/vocab"
)

// QuizMode selects which generator builds the question set.
type QuizMode string

const (
	QuizModeTranslation QuizMode = "translation"
	QuizModeSentence    QuizMode = "sentence"
)

// QuizCLI runs multiple-choice rounds over a word pool. When a round ends
// it offers another one, regenerated from the same pool with fresh
// shuffles.
type QuizCLI struct {
	*InteractiveCLI
	mode      QuizMode
	generator *quiz.Generator
	pool      []vocab.Word
	size      int
	updater   *review.StatusUpdater

	questions    []quiz.Question
	index        int
	correctCount int
}

// NewQuizCLI creates a quiz session and generates the first round.
func NewQuizCLI(
	base *InteractiveCLI,
	mode QuizMode,
	generator *quiz.Generator,
	pool []vocab.Word,
	size int,
	updater *review.StatusUpdater,
) (*QuizCLI, error) {
	r := &QuizCLI{
		InteractiveCLI: base,
		mode:           mode,
		generator:      generator,
		pool:           pool,
		size:           size,
		updater:        updater,
	}
	if err := r.regenerate(); err != nil {
		return nil, err
	}
	return r, nil
}

// QuestionCount returns the size of the current round.
func (r *QuizCLI) QuestionCount() int {
	return len(r.questions)
}

// regenerate builds a fresh round over the same pool: a new selection
// shuffle and new option orders, never a replay.
func (r *QuizCLI) regenerate() error {
	var questions []quiz.Question
	var err error
	switch r.mode {
	case QuizModeSentence:
		questions, err = r.generator.GenerateSentence(r.pool)
	default:
		questions, err = r.generator.Generate(r.pool, r.size)
	}
	if err != nil {
		return fmt.Errorf("generator > %w", err)
	}
	r.questions = questions
	r.index = 0
	r.correctCount = 0
	return nil
}

func (r *QuizCLI) Session(ctx context.Context) error {
	if r.index >= len(r.questions) {
		return r.finish()
	}
	question := r.questions[r.index]

	if _, err := fmt.Fprintf(r.stdoutWriter, "\nQ%d. ", r.index+1); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	label := fmt.Sprintf("What is the Japanese for '%s'?", r.bold.Sprintf("%s", question.Prompt))
	if r.mode == QuizModeSentence {
		label = fmt.Sprintf("Fill in the blank: %s", r.bold.Sprintf("%s", question.Prompt))
	}
	if _, err := fmt.Fprintln(r.stdoutWriter, label); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	for i, option := range question.Options {
		if _, err := fmt.Fprintf(r.stdoutWriter, "  %d. %s\n", i+1, option); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}
	if _, err := fmt.Fprintf(r.stdoutWriter, "Answer [1-%d]: ", len(question.Options)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}

	input, err := r.readLine()
	if err != nil {
		return err
	}
	choice, err := strconv.Atoi(input)
	if err != nil || choice < 1 || choice > len(question.Options) {
		// Ask the same question again on the next step.
		if _, err := fmt.Fprintf(r.stdoutWriter, "Please answer with a number between 1 and %d.\n", len(question.Options)); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	}

	correct := question.Correct(choice - 1)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	if correct {
		r.correctCount++
		if _, err := fmt.Fprint(r.stdoutWriter, "✅ "); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		_, _ = green.Fprintln(r.stdoutWriter, "It's correct.")
	} else {
		if _, err := fmt.Fprint(r.stdoutWriter, "❌ "); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		_, _ = red.Fprintf(r.stdoutWriter, "It's wrong. The answer is \"%s\"\n",
			r.italic.Sprintf("%s", question.Options[question.CorrectIndex]),
		)
	}

	result := r.updater.Apply(ctx, question.Word, correct)
	if result.Err != nil {
		// A failed status write is reported but never stops the round.
		if _, err := fmt.Fprintf(r.stdoutWriter, "Failed to save the status update: %v\n", result.Err); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	} else if result.Changed() {
		if _, err := fmt.Fprintf(r.stdoutWriter, "Status: %s -> %s\n", result.From, result.To); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}

	r.index++
	return nil
}

func (r *QuizCLI) finish() error {
	if _, err := fmt.Fprintf(r.stdoutWriter, "\nYou got %d out of %d correct.\n", r.correctCount, len(r.questions)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	again, err := r.Confirm("Try another round?")
	if err != nil {
		return err
	}
	if !again {
		return errEnd
	}
	return r.regenerate()
}
