package engine

import "strings"

// Intent classifies a user question into one of the handled categories.
type Intent int

const (
	IntentFallback Intent = iota
	IntentFeedback
	IntentTimeUntilEvent
	IntentTimeUntilLunch
	IntentLocation
	IntentAgenda
	IntentParticipants
	IntentRecommend
)

func (i Intent) String() string {
	switch i {
	case IntentFeedback:
		return "feedback"
	case IntentTimeUntilEvent:
		return "time_until_event"
	case IntentTimeUntilLunch:
		return "time_until_lunch"
	case IntentLocation:
		return "location"
	case IntentAgenda:
		return "agenda"
	case IntentParticipants:
		return "participants"
	case IntentRecommend:
		return "recommend"
	}
	return "fallback"
}

var eventStartPhrases = []string{
	"time left for event",
	"when does the event start",
	"how long until the event",
	"when is the event",
	"time until event starts",
}

// Classify maps a question to the first matching intent. The priority
// order is part of the observable contract: a question with overlapping
// keywords resolves to the earlier intent.
func Classify(question string) Intent {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "feedback") && containsAny(q, "session", "workshop"):
		return IntentFeedback
	case containsAny(q, eventStartPhrases...):
		return IntentTimeUntilEvent
	case strings.Contains(q, "lunch") && containsAny(q, "time", "left", "when"):
		return IntentTimeUntilLunch
	case containsAny(q, "where", "location", "washroom", "toilet", "bathroom"):
		return IntentLocation
	case containsAny(q, "agenda", "schedule", "timetable", "program"):
		return IntentAgenda
	case containsAny(q, "participant", "similar", "other attendees", "who else", "meet"):
		return IntentParticipants
	case containsAny(q, "recommend", "which session", "relevant", "which workshop", "suggest"):
		return IntentRecommend
	}

	return IntentFallback
}

func containsAny(q string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(q, sub) {
			return true
		}
	}
	return false
}
