// Package review advances word mastery after quiz and flashcard answers
// and keeps the wrong-answer ledger that feeds the weak-words queue.
package review

import "github.com/scanvocab/scanvocab/internal/vocab"

// Advance returns the status a word moves to after one answer:
//
//	new      + correct -> review      new      + wrong -> new
//	review   + correct -> mastered    review   + wrong -> new
//	mastered + correct -> mastered    mastered + wrong -> review
//
// Mastery is only ever reached through two consecutive correct answers,
// and a single wrong answer on a mastered word demotes one step, not two.
func Advance(current vocab.Status, correct bool) vocab.Status {
	switch current {
	case vocab.StatusReview:
		if correct {
			return vocab.StatusMastered
		}
		return vocab.StatusNew
	case vocab.StatusMastered:
		if correct {
			return vocab.StatusMastered
		}
		return vocab.StatusReview
	default:
		// Unrecognized statuses restart at the bottom of the ladder.
		if correct {
			return vocab.StatusReview
		}
		return vocab.StatusNew
	}
}
