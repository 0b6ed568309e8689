package extraction

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/extraction/mock_client.go -package=mock_extraction

// Client interface defines the methods for AI word extraction from photos
type Client interface {
	Extract(ctx context.Context, request Request) ([]ExtractedWord, error)
}

// Request holds one image payload plus optional extraction hints
type Request struct {
	Image []byte `json:"-"`
	Mode  string `json:"mode,omitempty"`  // Optional: what to pick up, e.g. "nouns", "phrases"
	Level string `json:"level,omitempty"` // Optional: target learner level, e.g. "beginner", "N2"
}

// ExtractedWord is a single deck candidate as the model returned it, before validation
type ExtractedWord struct {
	English           string   `json:"english"`
	Japanese          string   `json:"japanese"`
	Distractors       []string `json:"distractors"`
	ExampleSentence   string   `json:"example_sentence,omitempty"`
	ExampleSentenceJa string   `json:"example_sentence_ja,omitempty"`
}

const (
	DefaultMaxRetryAttempts = 3
)
