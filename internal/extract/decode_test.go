package extract

import (
	"strings"
	"testing"

	"github.com/pradnya8113/expenses/internal/category"
	"github.com/pradnya8113/expenses/internal/domain"
)

func TestDecodeCandidate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.Candidate
	}{
		{
			name: "clean object",
			raw:  `{"category": "Groceries", "amount": 250, "date": "2025-01-13", "description": null}`,
			want: domain.Candidate{Category: "Groceries", Amount: 250, Date: "2025-01-13"},
		},
		{
			name: "fenced json block",
			raw:  "```json\n{\"category\": \"Food\", \"amount\": 12.5, \"date\": null, \"description\": \"lunch\"}\n```",
			want: domain.Candidate{Category: "Food", Amount: 12.5, Description: "lunch"},
		},
		{
			name: "prose around the object",
			raw:  "Sure! Here is the result: {\"amount\": 80, \"description\": \"taxi\"} Hope that helps.",
			want: domain.Candidate{Amount: 80, Description: "taxi"},
		},
		{
			name: "amount as numeric string",
			raw:  `{"amount": "250.50", "description": "groceries"}`,
			want: domain.Candidate{Amount: 250.5, Description: "groceries"},
		},
		{
			name: "amount unparseable coerces to zero",
			raw:  `{"amount": "two hundred", "description": "groceries"}`,
			want: domain.Candidate{Description: "groceries"},
		},
		{
			name: "wrong types degrade per field",
			raw:  `{"category": 7, "amount": true, "date": ["2025-01-01"], "description": "ok"}`,
			want: domain.Candidate{Description: "ok"},
		},
		{
			name: "all nulls",
			raw:  `{"category": null, "amount": 0, "date": null, "description": null}`,
			want: domain.Candidate{},
		},
		{
			name: "not json at all",
			raw:  "I couldn't find any expense in that.",
			want: domain.Candidate{},
		},
		{
			name: "empty string",
			raw:  "",
			want: domain.Candidate{},
		},
		{
			name: "whitespace trimmed from strings",
			raw:  `{"category": " Groceries ", "description": "  weekly shop "}`,
			want: domain.Candidate{Category: "Groceries", Description: "weekly shop"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeCandidate(tt.raw)
			if got != tt.want {
				t.Errorf("decodeCandidate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fence without language", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading prose", `result: {"a":1}`, `{"a":1}`},
		{"single line fence", "```{\"a\":1}```", "```{\"a\":1}```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanModelJSON(tt.raw); got != tt.want {
				t.Errorf("cleanModelJSON(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestBuildPromptForbidsDefaults(t *testing.T) {
	reg := category.NewRegistry()
	prompt := buildPrompt("spent 250 on groceries", "2025-01-14", reg.List())

	for _, want := range []string{
		"Do not guess or assign defaults",
		"Today's date: 2025-01-14",
		"Groceries",
		`"spent 250 on groceries"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
