package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/scanvocab/scanvocab/internal/cli"
	"github.com/scanvocab/scanvocab/internal/quiz"
)

type ModeFlag string

// Set implements pflag.Value.
func (m *ModeFlag) Set(v string) error {
	switch v {
	case string(ModeTranslation):
		*m = ModeTranslation
	case string(ModeSentence):
		*m = ModeSentence
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, ModeTranslation, ModeSentence)
	}
	return nil
}

// String implements pflag.Value.
func (m *ModeFlag) String() string {
	if m == nil {
		return ""
	}
	return string(*m)
}

// Type implements pflag.Value.
func (m *ModeFlag) Type() string {
	return "ModeFlag"
}

var (
	_ pflag.Value = (*ModeFlag)(nil)
)

const (
	ModeTranslation ModeFlag = "translation"
	ModeSentence    ModeFlag = "sentence"
)

func newQuizCommand() *cobra.Command {
	var projectID string
	var favoritesOnly bool
	var count int
	modeFlag := ModeTranslation

	command := &cobra.Command{
		Use:   "quiz",
		Short: "Take a multiple-choice quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			repository, _, err := resolveRepository(ctx, cfg, newRegistry(ctx, cfg))
			if err != nil {
				return err
			}

			words, err := loadPool(ctx, repository, cfg.Account.UserID, projectID, favoritesOnly)
			if err != nil {
				return err
			}

			mode := cli.QuizModeTranslation
			if modeFlag == ModeSentence {
				mode = cli.QuizModeSentence
			}
			generator := quiz.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
			interactive := cli.NewInteractiveCLI()
			quizCLI, err := cli.NewQuizCLI(interactive, mode, generator, words, count, newStatusUpdater(cfg, repository))
			if err != nil {
				if errors.Is(err, quiz.ErrEmptyPool) {
					fmt.Println("Not enough words for this quiz yet. Scan a photo or import a deck first.")
					return nil
				}
				return fmt.Errorf("cli.NewQuizCLI() > %w", err)
			}

			fmt.Printf("Starting a quiz with %d questions\n", quizCLI.QuestionCount())
			return interactive.Run(ctx, quizCLI)
		},
	}

	command.Flags().StringVar(&projectID, "project", "", "Limit the quiz to one deck")
	command.Flags().BoolVar(&favoritesOnly, "favorites", false, "Limit the quiz to favorite words")
	command.Flags().IntVar(&count, "count", 10, "Number of questions per round")
	command.Flags().Var(&modeFlag, "mode", "Question style. Options: translation, sentence")
	return command
}
