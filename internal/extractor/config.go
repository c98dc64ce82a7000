package extractor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"event-bot/internal/models"
)

// AgendaDefault is one default agenda row in the config file.
type AgendaDefault struct {
	Time     string `yaml:"time"`
	Activity string `yaml:"activity"`
}

// Config collects every fallback value the extractor uses when a labeled
// section is missing or unparseable. Passing it explicitly keeps the field
// matchers free of embedded literals and lets tests run the extractor
// against alternate event setups.
type Config struct {
	DefaultTitle    string          `yaml:"default_title"`
	DefaultDate     string          `yaml:"default_date"`
	DefaultLocation models.Location `yaml:"default_location"`
	DefaultAgenda   []AgendaDefault `yaml:"default_agenda"`
	DefaultAudience []string        `yaml:"default_audience"`

	// DefaultCountry is assumed when a location decomposes into address
	// segments but carries no country of its own.
	DefaultCountry string `yaml:"default_country"`

	// DefaultLocations fills canonical venue-area keys that the document
	// never mentions.
	DefaultLocations map[string]string `yaml:"default_locations"`
}

// DefaultConfig returns the stock "Build with AI" workshop defaults.
func DefaultConfig() Config {
	return Config{
		DefaultTitle: "Build with AI – A Workshop in Collaboration with Google for Developers",
		DefaultDate:  "2025-05-18",
		DefaultLocation: models.Location{
			Name:        "ScaleOrange technologies",
			Address:     "Masthan Nagar, Kavuri Hills, Madhapur",
			City:        "Hyderabad",
			State:       "Telangana",
			PostalCode:  "500081",
			Country:     "India",
			FullAddress: "ScaleOrange technologies, Masthan Nagar, Kavuri Hills, Madhapur, Hyderabad, Telangana 500081, India",
		},
		DefaultAgenda: []AgendaDefault{
			{Time: "10:00", Activity: "11:00 AM: Workshop: Build an Event Bot using RAG"},
			{Time: "11:00", Activity: "12:00 PM: Industry Connect Session - Mr. Ravi Babu, CEO, Apex Cura Healthcare"},
			{Time: "12:00", Activity: "1:00 PM: Session by a Google Speaker (TBA)"},
			{Time: "1:00", Activity: "2:00 PM: Lunch (Sponsored by Google)"},
			{Time: "2:00", Activity: "3:00 PM: Workshop: Automating Payment Processes using Claude & MCP Server"},
			{Time: "3:00", Activity: "4:00 PM: Workshop: Building Multi AI Agents"},
			{Time: "11:59 PM", Activity: "Winner Announcement: Shortly after the deadline"},
		},
		DefaultAudience: []string{
			"Developers & Engineers",
			"Tech Professionals",
			"Students & Recent Graduates",
			"Entrepreneurs & Product Managers",
		},
		DefaultCountry: "India",
		DefaultLocations: map[string]string{
			"washroom":          "Exit the main hall, turn right, and you'll find the washrooms at the end of the corridor.",
			"main_hall":         "You are currently in the main hall where all sessions are being held.",
			"cafeteria":         "The cafeteria is located on the ground floor, next to the reception area.",
			"registration_desk": "The registration desk is at the entrance of the main hall.",
		},
	}
}

// LoadConfig reads a YAML config file on top of the stock defaults, so a
// file only needs to override the fields it cares about.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}
