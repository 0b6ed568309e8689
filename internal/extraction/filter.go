package extraction

import (
	"errors"
	"strings"

	"github.com/samber/lo"
	"github.com/scanvocab/scanvocab/internal/vocab"
)

// ErrNoValidWords reports that nothing usable survived filtering.
// Callers surface it to the user instead of creating an empty deck.
var ErrNoValidWords = errors.New("no valid words in the extraction result")

// FilterValid keeps the words that can become deck entries: an english
// term, a japanese translation and exactly three distractors.
func FilterValid(words []ExtractedWord) ([]ExtractedWord, error) {
	valid := lo.Filter(words, func(word ExtractedWord, _ int) bool {
		if strings.TrimSpace(word.English) == "" || strings.TrimSpace(word.Japanese) == "" {
			return false
		}
		return len(word.Distractors) == vocab.DistractorCount
	})
	if len(valid) == 0 {
		return nil, ErrNoValidWords
	}
	return valid, nil
}
