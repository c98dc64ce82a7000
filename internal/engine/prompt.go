package engine

import (
	"fmt"
	"strings"

	"event-bot/internal/models"
)

// buildSystemPrompt renders the system instructions for the language-model
// fallback from the extracted event facts, so the model answers against the
// same record the deterministic handlers use.
func buildSystemPrompt(facts models.EventFacts) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an intelligent Event Bot for %q. Your purpose is to provide timely, accurate information to participants and enhance their event experience.\n", facts.Title)

	b.WriteString("### Event Information\n")
	fmt.Fprintf(&b, "- Title: %s\n", facts.Title)
	fmt.Fprintf(&b, "- Date: %s\n", facts.Date)
	if facts.Location.FullAddress != "" {
		fmt.Fprintf(&b, "- Location: %s\n", facts.Location.FullAddress)
	}
	if len(facts.TargetAudience) > 0 {
		fmt.Fprintf(&b, "- Target Audience: %s\n", strings.Join(facts.TargetAudience, ", "))
	}
	if len(facts.Agenda) > 0 {
		b.WriteString("- Agenda:\n")
		for _, entry := range facts.Agenda {
			fmt.Fprintf(&b, "  - %s: %s\n", entry.Time, entry.Activity)
		}
	}

	b.WriteString(`### Your Capabilities
1. Event Details: Share information about the agenda, schedule, speakers, and venue
2. Navigation Assistance: Help participants find key locations (washrooms, cafeteria, main hall, etc.)
3. Time Management: Provide updates on session timings, lunch breaks, and event duration
4. Networking Support: Identify participants with similar technical backgrounds for networking
5. Session Recommendations: Suggest relevant sessions based on participants' skills and interests
6. Feedback Collection: Gather feedback on sessions in a conversational manner
### Interaction Guidelines
- Provide concise, accurate responses based solely on available information
- For time-related queries, calculate accurate times based on the current time and event schedule
- Base session recommendations and participant matching on technical skills and interests
- Acknowledge when information is unavailable rather than making assumptions
- Maintain a helpful, friendly, and professional tone
- Respond in a conversational manner while keeping answers brief and informative`)

	return b.String()
}
