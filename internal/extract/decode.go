package extract

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pradnya8113/expenses/internal/domain"
)

// decodeCandidate turns raw model output into a Candidate. It is
// deliberately lenient: a response that is not valid JSON, or whose
// fields have the wrong type, degrades to the zero value for those
// fields rather than an error. An unusable response therefore reads as
// "nothing learned this turn", which is what the dialogue layer wants.
func decodeCandidate(raw string) domain.Candidate {
	clean := cleanModelJSON(raw)

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(clean), &obj); err != nil {
		return domain.Candidate{}
	}

	return domain.Candidate{
		Category:    stringField(obj, "category"),
		Amount:      amountField(obj, "amount"),
		Date:        stringField(obj, "date"),
		Description: stringField(obj, "description"),
	}
}

// stringField reads a string field, treating null, absence, and
// non-string values as unknown.
func stringField(obj map[string]interface{}, key string) string {
	v, ok := obj[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// amountField reads the amount, accepting a JSON number or a numeric
// string ("250", "250.50"). Anything unparseable coerces to 0, which
// re-triggers the amount question downstream.
func amountField(obj map[string]interface{}, key string) float64 {
	v, ok := obj[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// cleanModelJSON strips Markdown fences and surrounding junk if the
// model ignored the strict-JSON instruction.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Handle ```json ... ``` or ``` ... ``` wrappers.
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	// Extra safety: keep only from the first '{' to the last '}' in
	// case there is still prose around the object.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
