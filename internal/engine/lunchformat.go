package engine

import (
	"fmt"
	"regexp"
	"strings"
)

// The lunch reformatting below is cosmetic only. When a fallback answer to
// a lunch or food question carries the expected pieces (a mention of lunch
// and a clock time), it is reshaped into a fixed bullet template; otherwise
// the answer passes through unchanged.

var answerClockRe = regexp.MustCompile(`\d{1,2}:\d{2}(?:\s*(?:AM|PM))?`)

func isLunchQuestion(question string) bool {
	return containsAny(strings.ToLower(question), "lunch", "food", "eat", "menu")
}

func formatLunchAnswer(answer string) string {
	if !strings.Contains(strings.ToLower(answer), "lunch") {
		return answer
	}

	clock := answerClockRe.FindString(answer)
	if clock == "" {
		return answer
	}

	detail := firstSentenceContaining(answer, "lunch")
	if detail == "" {
		return answer
	}

	return fmt.Sprintf("Here are the lunch details:\n- Time: %s\n- Details: %s", clock, detail)
}

func firstSentenceContaining(text, sub string) string {
	for _, sentence := range strings.Split(text, ".") {
		if strings.Contains(strings.ToLower(sentence), sub) {
			return strings.TrimSpace(sentence) + "."
		}
	}
	return ""
}
