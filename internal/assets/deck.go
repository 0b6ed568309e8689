package assets

import (
	"fmt"
	"io"
	"time"
)

// DeckTemplate is the top-level data structure for deck export templates
type DeckTemplate struct {
	Title      string
	ExportedAt time.Time
	Words      []DeckWord
}

// DeckWord represents a vocabulary word for template rendering
type DeckWord struct {
	English           string
	Japanese          string
	Distractors       []string
	ExampleSentence   string
	ExampleSentenceJa string
	Status            string
	IsFavorite        bool
}

func WriteDeckExport(output io.Writer, templatePath string, templateData DeckTemplate) error {
	tmpl, err := ParseDeckExportTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseDeckExportTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
