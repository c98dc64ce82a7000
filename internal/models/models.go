package models

import "time"

// Location holds the event venue. FullAddress is always populated; the
// structured subfields are only set when the source text decomposed into a
// comma-separated address.
type Location struct {
	Name        string `json:"name,omitempty" yaml:"name"`
	Address     string `json:"address,omitempty" yaml:"address"`
	City        string `json:"city,omitempty" yaml:"city"`
	State       string `json:"state,omitempty" yaml:"state"`
	PostalCode  string `json:"postal_code,omitempty" yaml:"postal_code"`
	Country     string `json:"country,omitempty" yaml:"country"`
	FullAddress string `json:"full_address" yaml:"full_address"`
}

// AgendaEntry is one agenda row. Time is the free-form label as it appeared
// in the document ("10:00" or "1:00 - 2:00 PM"); entries keep document order.
type AgendaEntry struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

// Hackathon describes an optional hackathon block found in the document.
type Hackathon struct {
	Description string            `json:"description"`
	Deadline    string            `json:"deadline,omitempty"`
	Prizes      map[string]string `json:"prizes,omitempty"`
}

// EventFacts is the structured record extracted from the event document.
// Immutable after extraction.
type EventFacts struct {
	Title string `json:"title"`

	// Date is the human-readable date text. EventDate is nil when the
	// source value could not be parsed as a calendar date; time-relative
	// answers must then degrade to static facts.
	Date      string     `json:"date"`
	EventDate *time.Time `json:"-"`

	Location    Location `json:"location"`
	Description string   `json:"description,omitempty"`

	// Agenda keeps document order. NormalizedAgenda is re-keyed by the
	// best-effort 24-hour start time of each entry; entries whose label has
	// no parseable time are dropped.
	Agenda           []AgendaEntry `json:"agenda"`
	NormalizedAgenda []AgendaEntry `json:"normalized_agenda"`

	TargetAudience []string   `json:"target_audience"`
	Hackathon      *Hackathon `json:"hackathon,omitempty"`

	// Locations maps canonical venue-area keys (washroom, main_hall,
	// cafeteria, registration_desk, venue, ...) to directions text.
	Locations map[string]string `json:"locations"`
}

// Participant is one resume found in the participants section of the
// document.
type Participant struct {
	Name       string   `json:"name"`
	Skills     []string `json:"skills,omitempty"`
	Interests  []string `json:"interests,omitempty"`
	Experience string   `json:"experience,omitempty"`
}
