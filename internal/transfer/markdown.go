package transfer

import (
	"fmt"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/scanvocab/scanvocab/internal/assets"
	"github.com/scanvocab/scanvocab/internal/vocab"
)

// ExportMarkdown renders the deck through the deck-export template. A
// readable template file at templatePath overrides the embedded one.
func ExportMarkdown(path, templatePath string, project vocab.Project, words []vocab.Word, exportedAt time.Time) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer file.Close()

	templateData := assets.DeckTemplate{
		Title:      project.Title,
		ExportedAt: exportedAt,
		Words: lo.Map(words, func(word vocab.Word, _ int) assets.DeckWord {
			return assets.DeckWord{
				English:           word.English,
				Japanese:          word.Japanese,
				Distractors:       word.Distractors,
				ExampleSentence:   word.ExampleSentence,
				ExampleSentenceJa: word.ExampleSentenceJa,
				Status:            string(word.Status),
				IsFavorite:        word.IsFavorite,
			}
		}),
	}
	if err := assets.WriteDeckExport(file, templatePath, templateData); err != nil {
		return fmt.Errorf("assets.WriteDeckExport() > %w", err)
	}
	return nil
}
