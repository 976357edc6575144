// Package dialogue implements the slot-filling state machine that turns
// a multi-turn conversation into one confirmed expense record. The
// controller collects fields across turns, asks clarifying questions in
// a fixed priority order, and gates every write behind an explicit
// yes/no confirmation.
package dialogue

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pradnya8113/expenses/internal/category"
	"github.com/pradnya8113/expenses/internal/domain"
	"github.com/pradnya8113/expenses/internal/logger"
)

type phase int

const (
	phaseCollecting phase = iota
	phaseAwaitingConfirmation
)

const (
	questionAmount      = "❓ How much did you spend?"
	questionDescription = "❓ What did you spend this money on?"
	questionCategoryFmt = "❓ Which category should I put this under? (Options: %s)"
	questionDate        = "❓ On which date did you spend this money? (say 'today' if it was today)"
	confirmFmt          = "✅ Okay, I'll log ₹%s for %s (%s) on %s. Confirm? (yes/no)"
	loggedFmt           = "✅ Logged: %s spent on %s (%s) on %s."
	msgCancelled        = "❌ Expense logging cancelled."
)

// affirmatives are the only replies that commit a pending expense.
// Anything else while a confirmation is pending cancels the session.
var affirmatives = map[string]bool{
	"yes": true, "y": true, "confirm": true, "ok": true, "okay": true,
}

// Controller owns the state of one logging session. It is not safe for
// concurrent use; callers must serialize utterances, which matches the
// one-turn-at-a-time shape of a conversation.
type Controller struct {
	extractor  Extractor
	store      RecordStore
	categories *category.Registry

	phase   phase
	pending domain.PendingExpense

	now   func() time.Time
	newID func() string
}

// NewController creates a controller with an empty session.
func NewController(extractor Extractor, store RecordStore, categories *category.Registry) *Controller {
	return &Controller{
		extractor:  extractor,
		store:      store,
		categories: categories,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Handle processes one utterance and returns the reply. Every utterance
// maps to exactly one transition: while collecting it either asks the
// next clarifying question or the confirmation question; while a
// confirmation is pending it either commits or cancels. The only error
// Handle can return is a failed store write, in which case the session
// stays pending so the user can confirm again.
func (c *Controller) Handle(ctx context.Context, utterance string) (string, error) {
	if c.phase == phaseAwaitingConfirmation {
		return c.handleConfirmation(ctx, utterance)
	}
	return c.handleCollecting(ctx, utterance)
}

func (c *Controller) handleConfirmation(ctx context.Context, utterance string) (string, error) {
	if !affirmatives[strings.ToLower(strings.TrimSpace(utterance))] {
		log := logger.FromContext(ctx)
		log.Info().Msg("confirmation declined, discarding pending expense")
		c.reset()
		return msgCancelled, nil
	}

	rec := c.pending.Complete(c.newID(), c.now().Format(domain.LoggedAtLayout))
	if err := c.store.Append(ctx, rec); err != nil {
		return "", fmt.Errorf("Controller.Handle: append record: %w", err)
	}

	log := logger.FromContext(ctx)
	log.Info().
		Str("id", rec.ID).
		Float64("amount", rec.Amount).
		Str("category", rec.Category).
		Msg("expense logged")

	c.reset()
	return fmt.Sprintf(loggedFmt, formatAmount(rec.Amount), rec.Description, rec.Category, rec.Date), nil
}

func (c *Controller) handleCollecting(ctx context.Context, utterance string) (string, error) {
	cand, err := c.extractor.Extract(ctx, utterance, c.now().Format(domain.DateLayout))
	if err != nil {
		// Extraction trouble is never fatal: this turn simply taught
		// us nothing and the next question repeats.
		log := logger.FromContext(ctx)
		log.Warn().Err(err).Msg("extraction failed, nothing learned this turn")
		cand = domain.Candidate{}
	}

	c.pending.Merge(cand)

	if q, ok := c.nextQuestion(); ok {
		return q, nil
	}

	// All four mandatory fields check out: stamp the record now so its
	// identity and completion time are fixed before the user confirms.
	c.pending.Complete(c.newID(), c.now().Format(domain.LoggedAtLayout))
	c.phase = phaseAwaitingConfirmation

	return fmt.Sprintf(confirmFmt,
		formatAmount(c.pending.Amount), c.pending.Description, c.pending.Category, c.pending.Date), nil
}

// nextQuestion returns the clarifying question for the first mandatory
// field that fails its check. The order is fixed: amount, description,
// category, date. Only one question is asked per turn.
func (c *Controller) nextQuestion() (string, bool) {
	if c.pending.Amount <= 0 {
		return questionAmount, true
	}
	if c.pending.Description == "" {
		return questionDescription, true
	}
	if c.pending.Category == "" || !c.categories.Contains(c.pending.Category) {
		return fmt.Sprintf(questionCategoryFmt, c.categories.List()), true
	}
	if c.pending.Date == "" {
		return questionDate, true
	}
	return "", false
}

func (c *Controller) reset() {
	c.pending = domain.PendingExpense{}
	c.phase = phaseCollecting
}

// formatAmount prints amounts without a forced decimal tail: 250, 12.5.
func formatAmount(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}
