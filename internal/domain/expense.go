package domain

// Candidate is one turn's worth of extracted expense data.
// Zero values are the "unknown" markers: the extraction layer returns
// 0 / "" for anything the utterance did not clearly state, and the
// merge rule below treats those as "nothing learned for this field".
type Candidate struct {
	Category    string  // one of the registry labels, or ""
	Amount      float64 // 0 when the utterance gave no amount
	Date        string  // "YYYY-MM-DD", or ""
	Description string  // short phrase, or ""
}

// IsZero reports whether the candidate carries no information at all.
func (c Candidate) IsZero() bool {
	return c.Category == "" && c.Amount == 0 && c.Date == "" && c.Description == ""
}

// PendingExpense is the in-progress record for the active logging
// session. It accumulates fields across turns until all four mandatory
// ones (amount, description, category, date) are filled. ID and
// LoggedAt stay empty until the record is complete; once set they are
// never changed for the session.
type PendingExpense struct {
	Category    string
	Amount      float64
	Date        string
	Description string

	ID       string
	LoggedAt string
}

// Merge folds a candidate into the pending expense. A field is updated
// only when the candidate actually has a value for it (non-zero amount,
// non-empty string), so a turn that doesn't mention a field never
// erases what an earlier turn established, while a turn that does
// mention it overrides the old value.
func (p *PendingExpense) Merge(c Candidate) {
	if c.Category != "" {
		p.Category = c.Category
	}
	if c.Amount != 0 {
		p.Amount = c.Amount
	}
	if c.Date != "" {
		p.Date = c.Date
	}
	if c.Description != "" {
		p.Description = c.Description
	}
}

// Complete stamps the pending expense with its identity and completion
// time and returns the immutable record to persist. Repeated calls keep
// the stamps from the first one.
func (p *PendingExpense) Complete(id, loggedAt string) ExpenseRecord {
	if p.ID == "" {
		p.ID = id
	}
	if p.LoggedAt == "" {
		p.LoggedAt = loggedAt
	}
	return ExpenseRecord{
		ID:          p.ID,
		Amount:      p.Amount,
		Category:    p.Category,
		Description: p.Description,
		Date:        p.Date,
		LoggedAt:    p.LoggedAt,
	}
}

// ExpenseRecord is the persisted shape of a confirmed expense. The JSON
// field names are the on-disk contract of the record store.
type ExpenseRecord struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	LoggedAt    string  `json:"logged_at"`
}

// LoggedAtLayout is the timestamp layout used for ExpenseRecord.LoggedAt.
const LoggedAtLayout = "2006-01-02 15:04:05"

// DateLayout is the calendar-date layout used throughout (extraction
// prompt, record dates, the reference date handed to the extractor).
const DateLayout = "2006-01-02"
