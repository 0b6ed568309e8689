package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/scanvocab/scanvocab/internal/cli"
	"github.com/scanvocab/scanvocab/internal/extraction"
	"github.com/scanvocab/scanvocab/internal/extraction/openai"
	"github.com/scanvocab/scanvocab/internal/vocab"
)

// scanWords runs the extraction and keeps only the words complete enough
// to become deck entries.
func scanWords(ctx context.Context, client extraction.Client, image []byte, mode, level string) ([]extraction.ExtractedWord, error) {
	extracted, err := client.Extract(ctx, extraction.Request{
		Image: image,
		Mode:  mode,
		Level: level,
	})
	if err != nil {
		return nil, fmt.Errorf("client.Extract() > %w", err)
	}
	words, err := extraction.FilterValid(extracted)
	if err != nil {
		return nil, fmt.Errorf("extraction.FilterValid() > %w", err)
	}
	return words, nil
}

func newScanCommand() *cobra.Command {
	var mode string
	var level string
	var title string

	command := &cobra.Command{
		Use:   "scan <image file>",
		Short: "Extract vocabulary from a photo and save it as a new deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.Extraction.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY environment variable is required")
			}

			image, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("os.ReadFile(%s) > %w", args[0], err)
			}

			fmt.Printf("Using OpenAI provider (model: %s)\n", cfg.Extraction.Model)
			client := openai.NewClient(cfg.Extraction.APIKey, cfg.Extraction.Model, cfg.Extraction.MaxRetryAttempts)
			defer func() {
				_ = client.Close()
			}()

			words, err := scanWords(ctx, client, image, mode, level)
			if err != nil {
				return err
			}

			fmt.Printf("Extracted %d words:\n\n", len(words))
			for i, word := range words {
				fmt.Printf("%3d. %s - %s\n", i+1, word.English, word.Japanese)
			}
			fmt.Println()

			interactive := cli.NewInteractiveCLI()
			if title == "" {
				title, err = interactive.Prompt("Deck title")
				if err != nil {
					return fmt.Errorf("interactive.Prompt() > %w", err)
				}
				if title == "" {
					title = fmt.Sprintf("Scan %s", time.Now().Format("2006-01-02"))
				}
			}
			confirmed, err := interactive.Confirm(fmt.Sprintf("Create deck %q with %d words?", title, len(words)))
			if err != nil {
				return fmt.Errorf("interactive.Confirm() > %w", err)
			}
			if !confirmed {
				fmt.Println("Aborted.")
				return nil
			}

			repository, _, err := resolveRepository(ctx, cfg, newRegistry(ctx, cfg))
			if err != nil {
				return err
			}
			project, err := repository.CreateProject(ctx, cfg.Account.UserID, title)
			if err != nil {
				return fmt.Errorf("repository.CreateProject() > %w", err)
			}
			inputs := lo.Map(words, func(word extraction.ExtractedWord, _ int) vocab.WordInput {
				return vocab.WordInput{
					English:           word.English,
					Japanese:          word.Japanese,
					Distractors:       word.Distractors,
					ExampleSentence:   word.ExampleSentence,
					ExampleSentenceJa: word.ExampleSentenceJa,
				}
			})
			created, err := repository.CreateWords(ctx, project.ID, inputs)
			if err != nil {
				return fmt.Errorf("repository.CreateWords() > %w", err)
			}

			fmt.Printf("Created deck %q (%s) with %d words.\n", project.Title, project.ID, len(created))
			return nil
		},
	}

	command.Flags().StringVar(&mode, "mode", "", "What to extract, e.g. nouns, phrases")
	command.Flags().StringVar(&level, "level", "", "Target learner level, e.g. beginner, N2")
	command.Flags().StringVar(&title, "title", "", "Deck title (prompted for when omitted)")
	return command
}
