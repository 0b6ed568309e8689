package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"

	"github.com/samber/lo"

	"github.com/scanvocab/scanvocab/internal/vocab"
)

// ErrEmptyPool is returned when no words qualify for the requested quiz.
var ErrEmptyPool = errors.New("no words available for a quiz")

const blankPlaceholder = "____"

// Generator builds question sets. The random source is injected so tests
// can fix the shuffles.
type Generator struct {
	rand *rand.Rand
}

// NewGenerator returns a generator drawing from r.
func NewGenerator(r *rand.Rand) *Generator {
	return &Generator{rand: r}
}

// Generate builds a translation quiz of n questions, asking for the
// japanese translation of an english term. n is clamped to 1..len(pool).
// Words not yet mastered are queued ahead of mastered ones before the
// selection shuffle. Generating again over the same pool produces a fresh
// shuffle and fresh option orders, never a replay.
func (g *Generator) Generate(pool []vocab.Word, n int) ([]Question, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("translation quiz: %w", ErrEmptyPool)
	}
	if n < 1 {
		n = 1
	}
	if n > len(pool) {
		n = len(pool)
	}

	notMastered := lo.Filter(pool, func(word vocab.Word, _ int) bool {
		return word.Status != vocab.StatusMastered
	})
	mastered := lo.Filter(pool, func(word vocab.Word, _ int) bool {
		return word.Status == vocab.StatusMastered
	})
	candidates := append(notMastered, mastered...)
	g.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	questions := make([]Question, 0, n)
	for _, word := range candidates[:n] {
		questions = append(questions, g.translationQuestion(word))
	}
	return questions, nil
}

// GenerateSentence builds a fill-in-the-blank quiz of exactly
// SentenceQuizSize questions from the words carrying example sentences:
// one shuffle pass, a cyclic fill up to the fixed size, then a reshuffle
// of the assembled list. A word repeated by the fill still gets its
// options shuffled independently per question.
func (g *Generator) GenerateSentence(pool []vocab.Word) ([]Question, error) {
	withExamples := lo.Filter(pool, func(word vocab.Word, _ int) bool {
		return word.ExampleSentence != ""
	})
	// One other word is the minimum to offer wrong options from.
	if len(withExamples) < 2 {
		return nil, fmt.Errorf("sentence quiz needs two or more words with example sentences: %w", ErrEmptyPool)
	}

	candidates := make([]vocab.Word, len(withExamples))
	copy(candidates, withExamples)
	g.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for len(candidates) < SentenceQuizSize {
		candidates = append(candidates, candidates[len(candidates)%len(withExamples)])
	}
	candidates = candidates[:SentenceQuizSize]
	g.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	questions := make([]Question, 0, SentenceQuizSize)
	for _, word := range candidates {
		questions = append(questions, g.sentenceQuestion(word, withExamples))
	}
	return questions, nil
}

func (g *Generator) translationQuestion(word vocab.Word) Question {
	options := append([]string{word.Japanese}, word.Distractors...)
	correct := g.shuffleOptions(options, word.Japanese)
	return Question{
		Word:         word,
		Prompt:       word.English,
		Options:      options,
		CorrectIndex: correct,
	}
}

func (g *Generator) sentenceQuestion(word vocab.Word, pool []vocab.Word) Question {
	wrongTerms := lo.Uniq(lo.FilterMap(pool, func(other vocab.Word, _ int) (string, bool) {
		return other.English, other.ID != word.ID && other.English != word.English
	}))
	g.rand.Shuffle(len(wrongTerms), func(i, j int) {
		wrongTerms[i], wrongTerms[j] = wrongTerms[j], wrongTerms[i]
	})

	// Pools with fewer than four distinct terms repeat a wrong option
	// rather than shrink the options list.
	options := []string{word.English}
	for i := 0; len(options) < vocab.DistractorCount+1; i++ {
		options = append(options, wrongTerms[i%len(wrongTerms)])
	}
	correct := g.shuffleOptions(options, word.English)

	return Question{
		Word:         word,
		Prompt:       blankTerm(word.ExampleSentence, word.English),
		Options:      options,
		CorrectIndex: correct,
	}
}

// shuffleOptions shuffles options in place and returns where answer
// landed.
func (g *Generator) shuffleOptions(options []string, answer string) int {
	g.rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	for i, option := range options {
		if option == answer {
			return i
		}
	}
	return 0
}

// blankTerm masks every occurrence of term in sentence, ignoring case.
func blankTerm(sentence, term string) string {
	if term == "" {
		return sentence
	}
	pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
	return pattern.ReplaceAllString(sentence, blankPlaceholder)
}
