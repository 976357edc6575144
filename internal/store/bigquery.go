package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"

	"github.com/pradnya8113/expenses/internal/domain"
	"github.com/pradnya8113/expenses/internal/logger"
)

// expenseRow maps an ExpenseRecord onto the expenses table schema.
type expenseRow struct {
	ExpenseID   string            `bigquery:"expense_id"`  // REQUIRED
	Amount      float64           `bigquery:"amount"`      // REQUIRED
	Category    string            `bigquery:"category"`    // REQUIRED
	Description string            `bigquery:"description"` // REQUIRED
	Date        bigquery.NullDate `bigquery:"expense_date"`
	LoggedTS    time.Time         `bigquery:"logged_ts"` // REQUIRED
}

// BigQueryStore streams confirmed records into a BigQuery table. The
// table is an append-only sink, so the self-healing read path of the
// file and GCS backends has no equivalent here.
type BigQueryStore struct {
	client  *bigquery.Client
	dataset string
	table   string
}

// NewBigQueryStore creates a sink over project.dataset.table.
func NewBigQueryStore(ctx context.Context, projectID, dataset, table string) (*BigQueryStore, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("NewBigQueryStore: bigquery client: %w", err)
	}
	return &BigQueryStore{client: client, dataset: dataset, table: table}, nil
}

// Append streams one record into the table.
func (s *BigQueryStore) Append(ctx context.Context, rec domain.ExpenseRecord) error {
	row := &expenseRow{
		ExpenseID:   rec.ID,
		Amount:      rec.Amount,
		Category:    rec.Category,
		Description: rec.Description,
		Date:        toNullDate(ctx, rec.Date),
		LoggedTS:    toLoggedTS(rec.LoggedAt),
	}

	inserter := s.client.Dataset(s.dataset).Table(s.table).Inserter()
	if err := inserter.Put(ctx, []*expenseRow{row}); err != nil {
		return fmt.Errorf("BigQueryStore.Append: inserting row: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *BigQueryStore) Close() error {
	return s.client.Close()
}

// toNullDate parses the record's YYYY-MM-DD date; an unparseable date
// becomes a NULL column rather than a failed insert.
func toNullDate(ctx context.Context, date string) bigquery.NullDate {
	d, err := civil.ParseDate(date)
	if err != nil {
		log := logger.FromContext(ctx)
		log.Warn().Str("date", date).Msg("unparseable record date, storing NULL")
		return bigquery.NullDate{}
	}
	return bigquery.NullDate{Date: d, Valid: true}
}

func toLoggedTS(loggedAt string) time.Time {
	t, err := time.ParseInLocation(domain.LoggedAtLayout, loggedAt, time.Local)
	if err != nil {
		return time.Now()
	}
	return t
}
