package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-bot/internal/models"
)

const sampleDoc = `Title: Build with AI Workshop
Date: May 18, 2025
Location: ScaleOrange technologies, Masthan Nagar, Hyderabad, Telangana, 500081
Description: A hands-on day of building with generative AI.

Agenda:
10:00 - 11:00 AM Workshop: Build an Event Bot using RAG
11:00 - 12:00 PM Industry Connect Session
1:00 - 2:00 PM Lunch (Sponsored by Google)
2:00 - 3:00 PM Workshop: Building Multi AI Agents

Target Audience:
- Developers & Engineers
- Students

Hackathon: Build an AI tool in a day.
Deadline: 11:59 PM
Prizes:
First Prize - A drone
Second Prize - A mechanical keyboard

Locations:
Washroom - down the corridor to the right
Cafeteria - ground floor, next to the reception area
`

func TestExtractLabeledDocument(t *testing.T) {
	facts := New(DefaultConfig()).Extract(sampleDoc)

	assert.Equal(t, "Build with AI Workshop", facts.Title)

	require.NotNil(t, facts.EventDate)
	assert.Equal(t, "2025-05-18", facts.Date)

	assert.Equal(t, "ScaleOrange technologies", facts.Location.Name)
	assert.Equal(t, "Masthan Nagar", facts.Location.Address)
	assert.Equal(t, "Hyderabad", facts.Location.City)
	assert.Equal(t, "Telangana", facts.Location.State)
	assert.Equal(t, "500081", facts.Location.PostalCode)
	assert.Equal(t, "India", facts.Location.Country)
	assert.Equal(t, "ScaleOrange technologies, Masthan Nagar, Hyderabad, Telangana, 500081", facts.Location.FullAddress)

	assert.Equal(t, "A hands-on day of building with generative AI.", facts.Description)

	require.Len(t, facts.Agenda, 4)
	assert.Equal(t, "10:00 - 11:00 AM", facts.Agenda[0].Time)
	assert.Equal(t, "Workshop: Build an Event Bot using RAG", facts.Agenda[0].Activity)
	assert.Equal(t, "1:00 - 2:00 PM", facts.Agenda[2].Time)
	assert.Equal(t, "Lunch (Sponsored by Google)", facts.Agenda[2].Activity)

	require.Len(t, facts.NormalizedAgenda, 4)
	assert.Equal(t, "10:00", facts.NormalizedAgenda[0].Time)
	assert.Equal(t, "13:00", facts.NormalizedAgenda[2].Time)

	assert.Equal(t, []string{"Developers & Engineers", "Students"}, facts.TargetAudience)

	require.NotNil(t, facts.Hackathon)
	assert.Contains(t, facts.Hackathon.Description, "Build an AI tool in a day.")
	assert.Equal(t, "11:59 PM", facts.Hackathon.Deadline)
	require.NotNil(t, facts.Hackathon.Prizes)
	assert.Equal(t, "A drone", facts.Hackathon.Prizes["First"])
	assert.Equal(t, "A mechanical keyboard", facts.Hackathon.Prizes["Second"])

	assert.Equal(t, "down the corridor to the right", facts.Locations["washroom"])
	assert.Equal(t, "ground floor, next to the reception area", facts.Locations["cafeteria"])
	// Areas the document never mentions come from the config.
	assert.Equal(t, DefaultConfig().DefaultLocations["main_hall"], facts.Locations["main_hall"])
	assert.Equal(t, facts.Location.FullAddress, facts.Locations["venue"])
}

func TestExtractUnlabeledTextUsesDefaults(t *testing.T) {
	cfg := DefaultConfig()
	facts := New(cfg).Extract("just some prose about nothing in particular.\nanother line.")

	assert.Equal(t, cfg.DefaultTitle, facts.Title)
	assert.Equal(t, cfg.DefaultDate, facts.Date)
	require.NotNil(t, facts.EventDate)
	assert.Equal(t, cfg.DefaultLocation, facts.Location)
	assert.Len(t, facts.Agenda, len(cfg.DefaultAgenda))
	assert.Equal(t, cfg.DefaultAudience, facts.TargetAudience)
	assert.Nil(t, facts.Hackathon)

	for key, want := range cfg.DefaultLocations {
		assert.Equal(t, want, facts.Locations[key])
	}
	assert.Equal(t, cfg.DefaultLocation.FullAddress, facts.Locations["venue"])
}

func TestExtractUnparseableDateKeepsRawText(t *testing.T) {
	facts := New(DefaultConfig()).Extract("Date: sometime next spring\n")

	assert.Equal(t, "sometime next spring", facts.Date)
	assert.Nil(t, facts.EventDate)
}

func TestExtractLocationWithoutAddressPattern(t *testing.T) {
	facts := New(DefaultConfig()).Extract("Venue: The big tent on the lawn\n")

	assert.Equal(t, "The big tent on the lawn", facts.Location.FullAddress)
	assert.Empty(t, facts.Location.Name)
	assert.Empty(t, facts.Location.City)
}

func TestExtractIsIdempotent(t *testing.T) {
	ex := New(DefaultConfig())

	first := ex.Extract(sampleDoc)
	second := ex.Extract(sampleDoc)

	assert.Equal(t, first, second)
}

func TestExtractAudienceWithoutBullets(t *testing.T) {
	facts := New(DefaultConfig()).Extract("Target Audience: anyone curious about language models\n")

	assert.Equal(t, []string{"anyone curious about language models"}, facts.TargetAudience)
}

func TestExtractAgendaLooserSingleTimePattern(t *testing.T) {
	text := "Schedule:\n9:30 AM doors open and registration\n"
	facts := New(DefaultConfig()).Extract(text)

	require.Len(t, facts.Agenda, 1)
	assert.Equal(t, "9:30 AM", facts.Agenda[0].Time)
	assert.Equal(t, "doors open and registration", facts.Agenda[0].Activity)
	require.Len(t, facts.NormalizedAgenda, 1)
	assert.Equal(t, "09:30", facts.NormalizedAgenda[0].Time)
}

func TestExtractFirstLabelWins(t *testing.T) {
	text := "Title: First Event\nTitle: Second Event\n"
	facts := New(DefaultConfig()).Extract(text)

	assert.Equal(t, "First Event", facts.Title)
}

func TestNormalizeAgenda(t *testing.T) {
	normalized := NormalizeAgenda([]models.AgendaEntry{
		{Time: "10:00 - 11:00 AM", Activity: "Opening"},
		{Time: "1:00 - 2:00 PM", Activity: "Lunch"},
		{Time: "11:59 PM", Activity: "Winner Announcement"},
		{Time: "after lunch", Activity: "Networking"},
	})

	require.Len(t, normalized, 3)
	assert.Equal(t, "10:00", normalized[0].Time)
	assert.Equal(t, "13:00", normalized[1].Time)
	assert.Equal(t, "23:59", normalized[2].Time)
}

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		label string
		want  string
		ok    bool
	}{
		{"10:00 - 11:00 AM", "10:00", true},
		{"1:00 - 2:00 PM", "13:00", true},
		{"11:00 - 12:00 PM", "11:00", true},
		{"12:30 AM", "00:30", true},
		{"12:15 PM", "12:15", true},
		{"14:00", "14:00", true},
		{"no time here", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeClock(tt.label)
		assert.Equal(t, tt.ok, ok, tt.label)
		assert.Equal(t, tt.want, got, tt.label)
	}
}
