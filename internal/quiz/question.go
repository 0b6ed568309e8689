// Package quiz builds multiple-choice question sets from a word pool.
package quiz

import "github.com/scanvocab/scanvocab/internal/vocab"

// SentenceQuizSize is the fixed question count of a fill-in-the-blank
// quiz. Smaller pools are repeated through a cyclic fill to reach it.
const SentenceQuizSize = 15

// Question is a transient projection of one word. Questions are rebuilt
// for every session and never cached, so option orders differ each time.
type Question struct {
	Word         vocab.Word
	Prompt       string
	Options      []string
	CorrectIndex int
}

// Correct reports whether the option at index answers the question.
func (q Question) Correct(index int) bool {
	return index == q.CorrectIndex
}
