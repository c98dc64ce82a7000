package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-bot/internal/models"
)

// mockCompleter implements Completer for testing the fallback path.
type mockCompleter struct {
	response   string
	err        error
	calls      int
	lastSystem string
	lastPrompt string
}

func (m *mockCompleter) Complete(_ context.Context, system, prompt string) (string, error) {
	m.calls++
	m.lastSystem = system
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func testFacts() models.EventFacts {
	eventDate := time.Date(2025, 5, 18, 0, 0, 0, 0, time.UTC)
	return models.EventFacts{
		Title:     "Build with AI Workshop",
		Date:      "2025-05-18",
		EventDate: &eventDate,
		Location: models.Location{
			Name:        "ScaleOrange technologies",
			FullAddress: "ScaleOrange technologies, Masthan Nagar, Hyderabad, Telangana 500081, India",
		},
		Agenda: []models.AgendaEntry{
			{Time: "10:00 - 11:00 AM", Activity: "Workshop: Build an Event Bot using RAG"},
			{Time: "11:00 - 12:00 PM", Activity: "Industry Connect Session"},
			{Time: "1:00 - 2:00 PM", Activity: "Lunch (Sponsored by Google)"},
			{Time: "2:00 - 3:00 PM", Activity: "Workshop: Building Multi AI Agents"},
		},
		NormalizedAgenda: []models.AgendaEntry{
			{Time: "10:00", Activity: "Workshop: Build an Event Bot using RAG"},
			{Time: "11:00", Activity: "Industry Connect Session"},
			{Time: "13:00", Activity: "Lunch (Sponsored by Google)"},
			{Time: "14:00", Activity: "Workshop: Building Multi AI Agents"},
		},
		TargetAudience: []string{"Developers & Engineers"},
		Locations: map[string]string{
			"washroom":          "down the corridor to the right",
			"main_hall":         "you are in it",
			"cafeteria":         "ground floor",
			"registration_desk": "at the entrance",
			"venue":             "ScaleOrange technologies, Masthan Nagar, Hyderabad, Telangana 500081, India",
		},
	}
}

func testParticipants() []models.Participant {
	return []models.Participant{
		{Name: "A", Skills: []string{"Python"}, Experience: "3 years"},
		{Name: "B", Interests: []string{"AI"}},
	}
}

// eventDay anchors a clock time on the event date.
func eventDay(hour, minute int) time.Time {
	return time.Date(2025, 5, 18, hour, minute, 0, 0, time.UTC)
}

func newTestEngine(mock *mockCompleter) *Engine {
	return New(testFacts(), testParticipants(), mock)
}

func TestTimeUntilEventFuture(t *testing.T) {
	e := newTestEngine(&mockCompleter{})
	now := time.Date(2025, 5, 15, 9, 0, 0, 0, time.UTC)

	answer := e.Answer(context.Background(), "How long until the event?", now)

	assert.Contains(t, answer, "3 days away")
	assert.Contains(t, answer, "May 18, 2025")
}

func TestTimeUntilEventTomorrow(t *testing.T) {
	e := newTestEngine(&mockCompleter{})
	now := time.Date(2025, 5, 17, 9, 0, 0, 0, time.UTC)

	answer := e.Answer(context.Background(), "when is the event?", now)

	assert.Contains(t, answer, "tomorrow")
}

func TestTimeUntilEventPast(t *testing.T) {
	e := newTestEngine(&mockCompleter{})
	now := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)

	answer := e.Answer(context.Background(), "when does the event start?", now)

	assert.Contains(t, answer, "already taken place")
}

func TestTimeUntilEventTodayBeforeStart(t *testing.T) {
	e := newTestEngine(&mockCompleter{})

	answer := e.Answer(context.Background(), "time left for event?", eventDay(8, 30))

	assert.Contains(t, answer, "1 hours and 30 minutes")
	assert.Contains(t, answer, "10:00 AM")
}

func TestTimeUntilEventTodayInSession(t *testing.T) {
	e := newTestEngine(&mockCompleter{})

	answer := e.Answer(context.Background(), "when is the event?", eventDay(10, 30))

	assert.Contains(t, answer, "Current session: Workshop: Build an Event Bot using RAG")
}

func TestTimeUntilEventTodayNoCurrentSession(t *testing.T) {
	e := newTestEngine(&mockCompleter{})

	// After the last session starts there is no next entry to bound it.
	answer := e.Answer(context.Background(), "when is the event?", eventDay(15, 0))

	assert.Equal(t, "The event has already started today.", answer)
}

func TestTimeUntilEventNoParseableDate(t *testing.T) {
	facts := testFacts()
	facts.EventDate = nil
	facts.Date = "sometime next spring"
	e := New(facts, nil, &mockCompleter{})

	answer := e.Answer(context.Background(), "when is the event?", eventDay(9, 0))

	assert.Contains(t, answer, "sometime next spring")
	assert.Contains(t, answer, "I'm sorry")
}

func TestCurrentSessionBoundary(t *testing.T) {
	normalized := []models.AgendaEntry{
		{Time: "10:00", Activity: "A"},
		{Time: "14:00", Activity: "B"},
	}

	_, ok := currentSession(normalized, eventDay(15, 0))
	assert.False(t, ok, "last entry must never be reported as current")

	session, ok := currentSession(normalized, eventDay(10, 30))
	require.True(t, ok)
	assert.Equal(t, "A", session)
}

func TestLunchOngoing(t *testing.T) {
	e := newTestEngine(&mockCompleter{})

	answer := e.Answer(context.Background(), "how much time is left for lunch?", eventDay(13, 30))

	assert.Contains(t, answer, "Lunch is currently ongoing!")
	assert.Contains(t, answer, "30 minutes")
}

func TestLunchBeforeStart(t *testing.T) {
	e := newTestEngine(&mockCompleter{})

	answer := e.Answer(context.Background(), "when is lunch?", eventDay(11, 15))

	assert.Contains(t, answer, "Lunch will begin in 1 hours and 45 minutes")
	assert.Contains(t, answer, "1:00 PM")
}

func TestLunchPassed(t *testing.T) {
	e := newTestEngine(&mockCompleter{})

	answer := e.Answer(context.Background(), "when is lunch?", eventDay(16, 0))

	assert.Contains(t, answer, "already passed")
}

func TestLunchDefaultClockWhenAgendaSilent(t *testing.T) {
	facts := testFacts()
	facts.Agenda = nil
	facts.NormalizedAgenda = nil
	e := New(facts, nil, &mockCompleter{})

	answer := e.Answer(context.Background(), "when is lunch?", eventDay(12, 0))

	assert.Contains(t, answer, "Lunch will begin in 1 hours and 0 minutes")
}

func TestVenueQuestion(t *testing.T) {
	e := newTestEngine(&mockCompleter{})

	answer := e.Answer(context.Background(), "Where is the event held?", eventDay(9, 0))

	assert.Contains(t, answer, "The event is being held at ScaleOrange technologies")
	assert.Contains(t, answer, "Masthan Nagar")
}

func TestWashroomQuestion(t *testing.T) {
	e := newTestEngine(&mockCompleter{})

	answer := e.Answer(context.Background(), "where is the washroom?", eventDay(9, 0))

	assert.Equal(t, "down the corridor to the right", answer)
}

func TestLocationQuestionFallsBackToVenue(t *testing.T) {
	e := newTestEngine(&mockCompleter{})

	answer := e.Answer(context.Background(), "where can I park my bike?", eventDay(9, 0))

	assert.Equal(t, testFacts().Locations["venue"], answer)
}

func TestLocationUnknownAreaMessage(t *testing.T) {
	facts := testFacts()
	facts.Locations = map[string]string{}
	e := New(facts, nil, &mockCompleter{})

	answer := e.Answer(context.Background(), "where is the smoking area?", eventDay(9, 0))

	assert.Contains(t, answer, "I'm not sure about that location")
}

func TestAgendaQuestion(t *testing.T) {
	e := newTestEngine(&mockCompleter{})

	answer := e.Answer(context.Background(), "show me the agenda please", eventDay(9, 0))

	assert.Contains(t, answer, "Here's the meeting agenda for Build with AI Workshop")
	assert.Contains(t, answer, "- 1:00 - 2:00 PM: Lunch (Sponsored by Google)")
}

func TestParticipantMatching(t *testing.T) {
	e := newTestEngine(&mockCompleter{})

	answer := e.findSimilarParticipants(ExtractSkills("anyone into AI?"))

	assert.Contains(t, answer, "B")
	assert.NotContains(t, answer, "- A:")
}

func TestParticipantMatchingViaAnswer(t *testing.T) {
	e := newTestEngine(&mockCompleter{})

	answer := e.Answer(context.Background(), "who else is into AI?", eventDay(9, 0))

	assert.Contains(t, answer, "similar technical areas")
	assert.Contains(t, answer, "B")
}

func TestParticipantMatchingWithoutSkillsAsksForThem(t *testing.T) {
	e := newTestEngine(&mockCompleter{})

	answer := e.Answer(context.Background(), "who else should I meet?", eventDay(9, 0))

	assert.Contains(t, answer, "mention some of your skills or interests")
}

func TestSessionRecommendation(t *testing.T) {
	e := newTestEngine(&mockCompleter{})

	answer := e.Answer(context.Background(), "suggest sessions about python", eventDay(9, 0))

	assert.Contains(t, answer, "I recommend these sessions")
	assert.Contains(t, answer, "Workshop: Build an Event Bot using RAG")
	assert.NotContains(t, answer, "Industry Connect Session")
}

func TestFeedbackNamedSession(t *testing.T) {
	mock := &mockCompleter{}
	e := newTestEngine(mock)

	answer := e.Answer(context.Background(), "I'd like to give feedback on the Industry Connect Session workshop", eventDay(16, 0))

	assert.Contains(t, answer, "Thank you for attending the 'Industry Connect Session' session!")
	require.Len(t, e.Feedback()["Industry Connect Session"], 1)
	assert.Zero(t, mock.calls)
}

func TestFeedbackUnnamedSessionAsks(t *testing.T) {
	e := newTestEngine(&mockCompleter{})

	answer := e.Answer(context.Background(), "can I give feedback on a session?", eventDay(16, 0))

	assert.Contains(t, answer, "specify which session")
}

func TestFeedbackPriorityOverOtherIntents(t *testing.T) {
	mock := &mockCompleter{}
	e := newTestEngine(mock)

	// Mentions lunch and "session", but feedback wins the priority order.
	answer := e.Answer(context.Background(), "Can I give feedback on the lunch session?", eventDay(13, 30))

	assert.NotContains(t, answer, "ongoing")
	assert.Contains(t, answer, "feedback")
	assert.Zero(t, mock.calls)
}

func TestFallbackDelegatesToModel(t *testing.T) {
	mock := &mockCompleter{response: "The dress code is casual."}
	e := newTestEngine(mock)

	answer := e.Answer(context.Background(), "what should I wear?", eventDay(9, 0))

	assert.Equal(t, "The dress code is casual.", answer)
	assert.Equal(t, 1, mock.calls)
	assert.Contains(t, mock.lastSystem, "Build with AI Workshop")
	assert.Contains(t, mock.lastPrompt, "what should I wear?")
}

func TestFallbackFailureReturnsApology(t *testing.T) {
	mock := &mockCompleter{err: errors.New("connection refused")}
	e := newTestEngine(mock)

	answer := e.Answer(context.Background(), "what should I wear?", eventDay(9, 0))

	assert.Equal(t, fallbackApology, answer)
}

func TestFallbackLunchCosmeticFormatting(t *testing.T) {
	mock := &mockCompleter{response: "Lunch will be served at 1:00 PM in the cafeteria. Enjoy the meal!"}
	e := newTestEngine(mock)

	answer := e.Answer(context.Background(), "what's on the lunch menu?", eventDay(9, 0))

	assert.Contains(t, answer, "Here are the lunch details:")
	assert.Contains(t, answer, "- Time: 1:00 PM")
}

func TestFallbackLunchFormattingNoOpWithoutExpectedPieces(t *testing.T) {
	mock := &mockCompleter{response: "I don't have menu information."}
	e := newTestEngine(mock)

	answer := e.Answer(context.Background(), "what's on the lunch menu?", eventDay(9, 0))

	assert.Equal(t, "I don't have menu information.", answer)
}
