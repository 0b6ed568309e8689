// Package transfer moves decks in and out of the app as files: xlsx for
// spreadsheet round trips and markdown for read-only exports.
package transfer

import (
	"fmt"
	"strings"

	"github.com/scanvocab/scanvocab/internal/vocab"
	"github.com/xuri/excelize/v2"
)

// WordsSheet is the sheet deck exports are written to. Imports fall back
// to the first sheet when a workbook from another tool lacks it.
const WordsSheet = "Words"

var xlsxHeader = []any{
	"english",
	"japanese",
	"distractor 1",
	"distractor 2",
	"distractor 3",
	"example sentence",
	"example sentence (ja)",
}

// ExportXLSX writes one row per word under a header row.
func ExportXLSX(path string, words []vocab.Word) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), WordsSheet)
	if err := f.SetSheetRow(WordsSheet, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("f.SetSheetRow() > %w", err)
	}

	for i, word := range words {
		row := make([]any, 0, len(xlsxHeader))
		row = append(row, word.English, word.Japanese)
		for d := 0; d < vocab.DistractorCount; d++ {
			if d < len(word.Distractors) {
				row = append(row, word.Distractors[d])
			} else {
				row = append(row, "")
			}
		}
		row = append(row, word.ExampleSentence, word.ExampleSentenceJa)

		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(WordsSheet, cell, &row); err != nil {
			return fmt.Errorf("f.SetSheetRow(%s) > %w", cell, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("f.SaveAs(%s) > %w", path, err)
	}
	return nil
}

// ImportResult reports what an import did, row by row.
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

// ImportXLSX reads word inputs back from a workbook written by ExportXLSX.
// Rows that fail validation are reported in the result and skipped; they
// never abort the rows around them.
func ImportXLSX(path string) ([]vocab.WordInput, *ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("excelize.OpenFile(%s) > %w", path, err)
	}
	defer f.Close()

	sheet := WordsSheet
	if f.GetSheetIndex(sheet) == -1 {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("f.GetRows(%s) > %w", sheet, err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	inputs := make([]vocab.WordInput, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeaderRow(row) {
			continue
		}
		if isEmptyRow(row) {
			continue
		}
		result.TotalProcessed++

		input := vocab.WordInput{
			English:  cellAt(row, 0),
			Japanese: cellAt(row, 1),
			Distractors: []string{
				cellAt(row, 2),
				cellAt(row, 3),
				cellAt(row, 4),
			},
			ExampleSentence:   cellAt(row, 5),
			ExampleSentenceJa: cellAt(row, 6),
		}
		if err := input.Validate(); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		inputs = append(inputs, input)
		result.Imported++
	}

	return inputs, result, nil
}

func isHeaderRow(row []string) bool {
	return strings.EqualFold(cellAt(row, 0), "english")
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cellAt(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
