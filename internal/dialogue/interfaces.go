package dialogue

import (
	"context"

	"github.com/pradnya8113/expenses/internal/domain"
)

// Extractor converts one utterance into a partial expense candidate.
// referenceDate is today's date (YYYY-MM-DD) for resolving phrases like
// "yesterday". Implementations must leave unclear fields at their zero
// value rather than guessing; a malformed model response must decode to
// an empty candidate, not an error. Errors are reserved for transport
// failures, which the controller downgrades to "nothing learned".
type Extractor interface {
	Extract(ctx context.Context, utterance, referenceDate string) (domain.Candidate, error)
}

// RecordStore persists confirmed expense records in insertion order.
type RecordStore interface {
	Append(ctx context.Context, rec domain.ExpenseRecord) error
}
