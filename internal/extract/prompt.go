package extract

import "fmt"

// buildPrompt asks the model to pull expense fields out of one
// utterance. The rules mirror the caller's contract: a field the
// utterance does not clearly state must come back as null/0, never as a
// guessed default, so the dialogue layer alone decides what to re-ask.
func buildPrompt(utterance, referenceDate, categoryList string) string {
	prompt :=
		"Extract the following details from the expense statement:\n" +
			"- \"category\": one of " + categoryList + " (if not clear, set null)\n" +
			"- \"amount\": number (if not clear, set 0)\n" +
			"- \"date\": string \"YYYY-MM-DD\" (resolve relative phrases like \"yesterday\" or \"today\" against today's date; if no date is given at all, set null)\n" +
			"- \"description\": short phrase summarizing the expense (if not clear, set null)\n\n" +
			"Rules:\n" +
			"- Do not guess or assign defaults like \"Misc\" or \"General\" for missing fields.\n" +
			"- Always set missing or unclear fields to null (or 0 for amount).\n" +
			"- Output STRICT JSON only: a single object, no comments, no extra text.\n" +
			"- Do NOT wrap the response in code fences or Markdown.\n\n"

	return prompt + fmt.Sprintf("Expense: %q\nToday's date: %s\n", utterance, referenceDate)
}
