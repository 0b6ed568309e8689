package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/scanvocab/scanvocab/internal/testutil"
	"github.com/scanvocab/scanvocab/internal/vocab"
)

func TestCalculate(t *testing.T) {
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name              string
		projects          []vocab.Project
		wordsByProject    map[string][]vocab.Word
		expectedDecks     []DeckStatistics
		expectedAggregate AggregateStatistics
	}{
		{
			name: "counts statuses, favorites and due words per deck",
			projects: []vocab.Project{
				testutil.NewProject("project-1", "Airport signs"),
			},
			wordsByProject: map[string][]vocab.Word{
				"project-1": {
					testutil.NewWord("project-1", 0),
					testutil.NewWord("project-1", 1, testutil.WithStatus(vocab.StatusReview), testutil.WithFavorite()),
					testutil.NewWord("project-1", 2, testutil.WithStatus(vocab.StatusMastered), testutil.WithSchedule(2.5, 6, 3, now.Add(24*time.Hour))),
				},
			},
			expectedDecks: []DeckStatistics{
				{
					ProjectID:     "project-1",
					Title:         "Airport signs",
					TotalWords:    3,
					NewCount:      1,
					ReviewCount:   1,
					MasteredCount: 1,
					FavoriteCount: 1,
					// An unscheduled word is always due; the mastered one is
					// scheduled for tomorrow.
					DueCount: 2,
				},
			},
			expectedAggregate: AggregateStatistics{
				TotalWords:    3,
				NewCount:      1,
				ReviewCount:   1,
				MasteredCount: 1,
				FavoriteCount: 1,
				DueCount:      2,
			},
		},
		{
			name: "keeps deck order and totals across decks",
			projects: []vocab.Project{
				testutil.NewProject("project-2", "Menus"),
				testutil.NewProject("project-1", "Airport signs"),
			},
			wordsByProject: map[string][]vocab.Word{
				"project-1": {
					testutil.NewWord("project-1", 0),
				},
				"project-2": {
					testutil.NewWord("project-2", 0, testutil.WithStatus(vocab.StatusReview)),
					testutil.NewWord("project-2", 1, testutil.WithFavorite()),
				},
			},
			expectedDecks: []DeckStatistics{
				{
					ProjectID:     "project-2",
					Title:         "Menus",
					TotalWords:    2,
					NewCount:      1,
					ReviewCount:   1,
					FavoriteCount: 1,
					DueCount:      2,
				},
				{
					ProjectID:  "project-1",
					Title:      "Airport signs",
					TotalWords: 1,
					NewCount:   1,
					DueCount:   1,
				},
			},
			expectedAggregate: AggregateStatistics{
				TotalWords:    3,
				NewCount:      2,
				ReviewCount:   1,
				FavoriteCount: 1,
				DueCount:      3,
			},
		},
		{
			name: "deck without words gets a zero row",
			projects: []vocab.Project{
				testutil.NewProject("project-1", "Empty"),
			},
			wordsByProject: map[string][]vocab.Word{},
			expectedDecks: []DeckStatistics{
				{
					ProjectID: "project-1",
					Title:     "Empty",
				},
			},
			expectedAggregate: AggregateStatistics{},
		},
		{
			name:              "no decks",
			projects:          nil,
			wordsByProject:    nil,
			expectedDecks:     []DeckStatistics{},
			expectedAggregate: AggregateStatistics{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Calculate(tt.projects, tt.wordsByProject, now)
			assert.Equal(t, tt.expectedDecks, result.Decks)
			assert.Equal(t, tt.expectedAggregate, result.Aggregate)
		})
	}
}
