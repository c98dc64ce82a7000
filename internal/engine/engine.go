// Package engine routes questions about an event to deterministic answer
// handlers, falling back to a language model for anything outside the
// handled intents. Answer never fails to the caller: every internal
// failure degrades to an apologetic string.
package engine

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"event-bot/internal/models"
)

const (
	// lunchDuration is the fixed assumed length of the lunch break.
	lunchDuration = time.Hour

	defaultLunchClock = "13:00"

	fallbackApology = "I apologize, but I'm having trouble answering that right now. Please try again in a moment."

	eventDateFormat = "January 2, 2006"
)

// Completer is the language-model fallback collaborator.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Engine answers questions about one event. It holds the extracted facts
// and participant list read-only; the only mutable state is the
// append-only feedback store.
type Engine struct {
	facts        models.EventFacts
	participants []models.Participant
	llm          Completer
	systemPrompt string
	feedback     map[string][]string
}

// New creates an engine for the given extracted facts and participants.
func New(facts models.EventFacts, participants []models.Participant, llm Completer) *Engine {
	return &Engine{
		facts:        facts,
		participants: participants,
		llm:          llm,
		systemPrompt: buildSystemPrompt(facts),
		feedback:     make(map[string][]string),
	}
}

// Answer answers a question relative to now. It always returns a non-empty
// string.
func (e *Engine) Answer(ctx context.Context, question string, now time.Time) string {
	switch Classify(question) {
	case IntentFeedback:
		return e.collectFeedback(question)
	case IntentTimeUntilEvent:
		return e.timeUntilEvent(now)
	case IntentTimeUntilLunch:
		return e.timeUntilLunch(now)
	case IntentLocation:
		return e.locationInfo(question)
	case IntentAgenda:
		return e.agenda()
	case IntentParticipants:
		return e.findSimilarParticipants(ExtractSkills(question))
	case IntentRecommend:
		return e.recommendSessions(ExtractSkills(question))
	}

	return e.fallbackAnswer(ctx, question)
}

// Feedback returns a copy of the collected per-session feedback.
func (e *Engine) Feedback() map[string][]string {
	out := make(map[string][]string, len(e.feedback))
	for session, notes := range e.feedback {
		out[session] = append([]string(nil), notes...)
	}
	return out
}

// collectFeedback records feedback against the session named in the
// question. When no agenda session matches, it asks the user to name one.
func (e *Engine) collectFeedback(question string) string {
	q := strings.ToLower(question)

	for _, entry := range e.facts.Agenda {
		if strings.Contains(q, strings.ToLower(entry.Activity)) {
			e.feedback[entry.Activity] = append(e.feedback[entry.Activity], question)
			return fmt.Sprintf("Thank you for attending the '%s' session! I'd love to hear your feedback.\n\n"+
				"How would you rate the session on a scale of 1-5? What did you like about it, and is there anything that could be improved? Your feedback is valuable to us!",
				entry.Activity)
		}
	}

	return "I'd be happy to collect your feedback. Could you please specify which session you attended?"
}

func (e *Engine) timeUntilEvent(now time.Time) string {
	if e.facts.EventDate == nil {
		if e.facts.Date == "" {
			return "I'm sorry, but I don't have the event date information."
		}
		return fmt.Sprintf("The event is scheduled for %s. I'm sorry I can't give an exact countdown; please check the event details for more information.", e.facts.Date)
	}

	eventDate := *e.facts.EventDate
	start := earliestStart(e.facts.NormalizedAgenda)

	if !sameDay(eventDate, now) {
		days := daysBetween(now, eventDate)
		switch {
		case days > 1:
			return fmt.Sprintf("The event is %d days away, on %s. It starts at %s.", days, eventDate.Format(eventDateFormat), displayClock(start))
		case days == 1:
			return fmt.Sprintf("The event is tomorrow, %s. It starts at %s.", eventDate.Format(eventDateFormat), displayClock(start))
		default:
			return fmt.Sprintf("The event has already taken place on %s.", eventDate.Format(eventDateFormat))
		}
	}

	startAt, ok := clockOn(now, start)
	if ok && now.Before(startAt) {
		hours, minutes := splitDuration(startAt.Sub(now))
		if hours > 0 {
			return fmt.Sprintf("The event starts today in %d hours and %d minutes, at %s.", hours, minutes, displayClock(start))
		}
		return fmt.Sprintf("The event starts today in %d minutes, at %s.", minutes, displayClock(start))
	}

	if session, ok := currentSession(e.facts.NormalizedAgenda, now); ok {
		return fmt.Sprintf("The event has already started. Current session: %s", session)
	}
	return "The event has already started today."
}

func (e *Engine) timeUntilLunch(now time.Time) string {
	if e.facts.EventDate == nil {
		if e.facts.Date == "" {
			return "I'm sorry, but I don't have the event date information."
		}
		return fmt.Sprintf("The event is scheduled for %s. I'm sorry I can't give an exact countdown; please check the event details for more information.", e.facts.Date)
	}

	lunchClock := e.lunchStart()
	eventDate := *e.facts.EventDate

	if !sameDay(eventDate, now) {
		days := daysBetween(now, eventDate)
		if days > 0 {
			return fmt.Sprintf("The event is %d days away, on %s. Lunch will be at %s.", days, eventDate.Format(eventDateFormat), displayClock(lunchClock))
		}
		return fmt.Sprintf("The event has already taken place on %s.", eventDate.Format(eventDateFormat))
	}

	lunchAt, ok := clockOn(now, lunchClock)
	if !ok {
		return fmt.Sprintf("Lunch is scheduled for %s.", lunchClock)
	}
	lunchEnd := lunchAt.Add(lunchDuration)

	switch {
	case now.Before(lunchAt):
		hours, minutes := splitDuration(lunchAt.Sub(now))
		if hours > 0 {
			return fmt.Sprintf("Lunch will begin in %d hours and %d minutes. It's scheduled for %s.", hours, minutes, displayClock(lunchClock))
		}
		return fmt.Sprintf("Lunch will begin in %d minutes. It's scheduled for %s.", minutes, displayClock(lunchClock))
	case now.Before(lunchEnd):
		hours, minutes := splitDuration(lunchEnd.Sub(now))
		if hours > 0 {
			return fmt.Sprintf("Lunch is currently ongoing! It will end in %d hours and %d minutes.", hours, minutes)
		}
		return fmt.Sprintf("Lunch is currently ongoing! It will end in %d minutes.", minutes)
	default:
		return fmt.Sprintf("Lunch time (%s) has already passed for today.", displayClock(lunchClock))
	}
}

// lunchStart finds the start of the agenda entry describing lunch,
// defaulting when no entry mentions it.
func (e *Engine) lunchStart() string {
	for _, entry := range e.facts.NormalizedAgenda {
		if strings.Contains(strings.ToLower(entry.Activity), "lunch") {
			return entry.Time
		}
	}
	return defaultLunchClock
}

var venuePhrases = []string{"venue", "where is the event", "event location", "where is it held", "address"}

func (e *Engine) locationInfo(question string) string {
	q := strings.ToLower(question)

	if containsAny(q, venuePhrases...) {
		loc := e.facts.Location
		switch {
		case loc.FullAddress == "":
			return "The event location information is not available."
		case loc.Name != "":
			return fmt.Sprintf("The event is being held at %s located at %s", loc.Name, loc.FullAddress)
		default:
			return fmt.Sprintf("The event is being held at %s", loc.FullAddress)
		}
	}

	var key string
	switch {
	case containsAny(q, "washroom", "toilet", "bathroom", "restroom"):
		key = "washroom"
	case containsAny(q, "main hall", "session", "conference"):
		key = "main_hall"
	case containsAny(q, "food", "cafeteria", "eat", "canteen"):
		key = "cafeteria"
	case containsAny(q, "register", "registration", "reception"):
		key = "registration_desk"
	case containsAny(q, "venue", "location", "address", "where"):
		key = "venue"
	}

	if info, ok := e.facts.Locations[key]; ok && key != "" {
		return info
	}

	return "I'm not sure about that location. I can help you find the washroom, main hall, cafeteria, or registration desk. I can also tell you about the venue location. Please ask about one of these locations."
}

func (e *Engine) agenda() string {
	if len(e.facts.Agenda) == 0 {
		return "I'm sorry, but the agenda information is not available."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here's the meeting agenda for %s:\n\n", e.facts.Title)
	for _, entry := range e.facts.Agenda {
		fmt.Fprintf(&b, "- %s: %s\n", entry.Time, entry.Activity)
	}
	return b.String()
}

func (e *Engine) findSimilarParticipants(skills []string) string {
	if len(skills) == 0 {
		return "I need to know what technical areas you're interested in to find similar participants. Could you please mention some of your skills or interests?"
	}

	var matched []models.Participant
	for _, p := range e.participants {
		if participantMatches(p, skills) {
			matched = append(matched, p)
		}
	}

	if len(matched) == 0 {
		return "I couldn't find any participants with the mentioned skills. Try specifying different skills or interests."
	}

	var b strings.Builder
	b.WriteString("Here are participants who've worked on similar technical areas:\n\n")
	for _, p := range matched {
		experience := p.Experience
		if experience == "" {
			experience = "Not specified"
		}
		fmt.Fprintf(&b, "- %s: %s with %s\n", p.Name, strings.Join(p.Skills, ", "), experience)
	}
	return b.String()
}

// participantMatches reports whether any wanted skill substring-matches any
// of the participant's skills or interests.
func participantMatches(p models.Participant, skills []string) bool {
	for _, skill := range skills {
		want := strings.ToLower(skill)
		for _, s := range p.Skills {
			if strings.Contains(strings.ToLower(s), want) {
				return true
			}
		}
		for _, interest := range p.Interests {
			if strings.Contains(strings.ToLower(interest), want) {
				return true
			}
		}
	}
	return false
}

func (e *Engine) recommendSessions(skills []string) string {
	if len(skills) == 0 {
		return "I need to know what technical areas you're interested in to recommend sessions. Could you please mention some of your skills or interests?"
	}

	seen := make(map[string]bool)
	var recommended []models.AgendaEntry
	for _, entry := range e.facts.Agenda {
		if seen[entry.Activity] {
			continue
		}
		if sessionMatches(entry.Activity, skills) {
			seen[entry.Activity] = true
			recommended = append(recommended, entry)
		}
	}

	if len(recommended) == 0 {
		return "Based on the skills you've mentioned, I don't have specific session recommendations. All sessions may be of general interest. Is there a particular topic you're curious about?"
	}

	var b strings.Builder
	b.WriteString("Based on your interests, I recommend these sessions:\n\n")
	for _, entry := range recommended {
		fmt.Fprintf(&b, "- %s: %s\n", entry.Time, entry.Activity)
	}
	return b.String()
}

func sessionMatches(session string, skills []string) bool {
	tags := sessionTags(session)
	for _, skill := range skills {
		want := strings.ToLower(skill)
		for _, tag := range tags {
			if strings.Contains(strings.ToLower(tag), want) {
				return true
			}
		}
	}
	return false
}

// fallbackAnswer delegates an unclassified question to the language model.
// Failures are logged and absorbed into an apology string.
func (e *Engine) fallbackAnswer(ctx context.Context, question string) string {
	prompt := fmt.Sprintf("Based on the event information, please answer the following question:\n%s\n\n"+
		"Please keep your answer concise and to the point. If you don't have enough information to answer the question, please say so.", question)

	answer, err := e.llm.Complete(ctx, e.systemPrompt, prompt)
	if err != nil {
		log.Printf("fallback completion failed: %v", err)
		return fallbackApology
	}
	if strings.TrimSpace(answer) == "" {
		return fallbackApology
	}

	if isLunchQuestion(question) {
		answer = formatLunchAnswer(answer)
	}

	return answer
}
