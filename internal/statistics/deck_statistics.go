// Package statistics aggregates study progress across decks.
package statistics

import (
	"time"

	"github.com/samber/lo"

	"github.com/scanvocab/scanvocab/internal/review"
	"github.com/scanvocab/scanvocab/internal/vocab"
)

// DeckStatistics holds the study counters for one deck.
type DeckStatistics struct {
	ProjectID     string
	Title         string
	TotalWords    int
	NewCount      int
	ReviewCount   int
	MasteredCount int
	FavoriteCount int
	DueCount      int // Words whose next review is at or before the reference time
}

// AggregateStatistics holds totals across every deck.
type AggregateStatistics struct {
	TotalWords    int
	NewCount      int
	ReviewCount   int
	MasteredCount int
	FavoriteCount int
	DueCount      int
}

// Result holds both per-deck and aggregate statistics.
type Result struct {
	Decks     []DeckStatistics
	Aggregate AggregateStatistics
}

// Calculate builds study statistics for the given decks. Decks keep their
// input order; due counts are evaluated against now.
func Calculate(projects []vocab.Project, wordsByProject map[string][]vocab.Word, now time.Time) Result {
	result := Result{
		Decks: make([]DeckStatistics, 0, len(projects)),
	}
	for _, project := range projects {
		words := wordsByProject[project.ID]
		counts := lo.CountValues(lo.Map(words, func(word vocab.Word, _ int) vocab.Status {
			return word.Status
		}))
		deck := DeckStatistics{
			ProjectID:     project.ID,
			Title:         project.Title,
			TotalWords:    len(words),
			NewCount:      counts[vocab.StatusNew],
			ReviewCount:   counts[vocab.StatusReview],
			MasteredCount: counts[vocab.StatusMastered],
			FavoriteCount: lo.CountBy(words, func(word vocab.Word) bool {
				return word.IsFavorite
			}),
			DueCount: len(review.DueWords(words, now)),
		}
		result.Decks = append(result.Decks, deck)

		result.Aggregate.TotalWords += deck.TotalWords
		result.Aggregate.NewCount += deck.NewCount
		result.Aggregate.ReviewCount += deck.ReviewCount
		result.Aggregate.MasteredCount += deck.MasteredCount
		result.Aggregate.FavoriteCount += deck.FavoriteCount
		result.Aggregate.DueCount += deck.DueCount
	}
	return result
}
