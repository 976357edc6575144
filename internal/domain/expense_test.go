package domain

import "testing"

func TestMergeKeepsEarlierFields(t *testing.T) {
	p := &PendingExpense{}
	p.Merge(Candidate{Amount: 250, Category: "Groceries", Date: "2025-01-14"})
	p.Merge(Candidate{Description: "lunch"})

	if p.Amount != 250 {
		t.Errorf("Amount = %v, want 250", p.Amount)
	}
	if p.Category != "Groceries" {
		t.Errorf("Category = %q, want Groceries", p.Category)
	}
	if p.Date != "2025-01-14" {
		t.Errorf("Date = %q, want 2025-01-14", p.Date)
	}
	if p.Description != "lunch" {
		t.Errorf("Description = %q, want lunch", p.Description)
	}
}

func TestMergeMonotonicity(t *testing.T) {
	// Once set, a field survives any number of turns that omit it.
	p := &PendingExpense{}
	p.Merge(Candidate{Amount: 42, Description: "coffee", Category: "Food", Date: "2025-03-01"})

	for i := 0; i < 5; i++ {
		p.Merge(Candidate{})
	}

	want := PendingExpense{Amount: 42, Description: "coffee", Category: "Food", Date: "2025-03-01"}
	if *p != want {
		t.Errorf("after empty merges: %+v, want %+v", *p, want)
	}
}

func TestMergeOverridesWithNewValue(t *testing.T) {
	p := &PendingExpense{}
	p.Merge(Candidate{Amount: 100, Description: "dinner"})
	p.Merge(Candidate{Amount: 120})

	if p.Amount != 120 {
		t.Errorf("Amount = %v, want corrected value 120", p.Amount)
	}
	if p.Description != "dinner" {
		t.Errorf("Description = %q, want dinner", p.Description)
	}
}

func TestCompleteStampsOnce(t *testing.T) {
	p := &PendingExpense{Amount: 10, Description: "bus", Category: "Travel", Date: "2025-02-02"}

	rec := p.Complete("id-1", "2025-02-02 10:00:00")
	if rec.ID != "id-1" || rec.LoggedAt != "2025-02-02 10:00:00" {
		t.Fatalf("first Complete: id=%q logged_at=%q", rec.ID, rec.LoggedAt)
	}

	rec = p.Complete("id-2", "2025-02-02 11:00:00")
	if rec.ID != "id-1" {
		t.Errorf("second Complete replaced id: %q", rec.ID)
	}
	if rec.LoggedAt != "2025-02-02 10:00:00" {
		t.Errorf("second Complete replaced logged_at: %q", rec.LoggedAt)
	}
}

func TestCandidateIsZero(t *testing.T) {
	if !(Candidate{}).IsZero() {
		t.Error("empty candidate should be zero")
	}
	if (Candidate{Description: "x"}).IsZero() {
		t.Error("candidate with description should not be zero")
	}
	if (Candidate{Amount: 0.01}).IsZero() {
		t.Error("candidate with amount should not be zero")
	}
}
