// Package extractor turns raw event-document text into structured event
// facts. Every field matcher is total: when its labeled section is missing
// or unparseable it falls back to the configured default, so extraction
// never fails.
package extractor

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"event-bot/internal/models"
)

// Extractor parses free-form event text into an EventFacts record.
type Extractor struct {
	cfg Config
}

// New creates an extractor with the given fallback configuration.
func New(cfg Config) *Extractor {
	return &Extractor{cfg: cfg}
}

var (
	titleRe       = regexp.MustCompile(`(?:Title|Event):\s*(.*)`)
	dateRe        = regexp.MustCompile(`(?:Date|When):\s*(.*)`)
	locationRe    = regexp.MustCompile(`(?:Location|Venue|Where):\s*(.*)`)
	addressRe     = regexp.MustCompile(`([^,]+),\s*([^,]+),\s*([^,]+),\s*([^,]+)(?:,\s*([^,]+))?`)
	descriptionRe = regexp.MustCompile(`(?:Description|About):`)
	agendaRe      = regexp.MustCompile(`(?:Agenda|Schedule|Timetable|Program):`)
	audienceRe    = regexp.MustCompile(`(?:Target Audience|Who Should Attend|Intended For):`)
	hackathonRe   = regexp.MustCompile(`(?:Hackathon|Challenge|Competition):`)
	deadlineRe    = regexp.MustCompile(`(?:Deadline|Due Date|Submission):\s*(.*)`)
	prizesRe      = regexp.MustCompile(`(?:Prizes|Awards|Rewards):`)
	locationsRe   = regexp.MustCompile(`(?:Locations|Facilities|Amenities|Venue Map):`)

	// Agenda entry heads. The activity text runs from the end of the head
	// to the next entry boundary (digit-leading line, blank line, or new
	// capitalized section).
	timeRangeRe  = regexp.MustCompile(`(\d{1,2}:\d{2}(?:\s*(?:AM|PM))?\s*-\s*\d{1,2}:\d{2}(?:\s*(?:AM|PM))?)(?:\s*[-:]\s*|\s+)`)
	singleTimeRe = regexp.MustCompile(`(\d{1,2}:\d{2}(?:\s*(?:AM|PM))?)(?:\s*[-:]\s*|\s+)`)

	prizeRe        = regexp.MustCompile(`(First|Second|Third|1st|2nd|3rd|Winner|Runner[- ]up)(?:\s+Prize)?(?:\s*[-:]\s*|\s+)`)
	venueAreaRe    = regexp.MustCompile(`(Washroom|Restroom|Bathroom|Main Hall|Cafeteria|Registration|Reception)(?:\s*[-:]\s*|\s+)`)
	clockRe        = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	bulletPrefixRe = regexp.MustCompile(`^[-•*]\s*`)
)

// Extract parses raw text into an EventFacts record. Each field matcher is
// independent; a later field never depends on an earlier match succeeding.
func (e *Extractor) Extract(text string) models.EventFacts {
	facts := models.EventFacts{}

	facts.Title = e.extractTitle(text)
	facts.Date, facts.EventDate = e.extractDate(text)
	facts.Location = e.extractLocation(text)
	facts.Description = extractDescription(text)
	facts.Agenda = e.extractAgenda(text)
	facts.NormalizedAgenda = NormalizeAgenda(facts.Agenda)
	facts.TargetAudience = e.extractAudience(text)
	facts.Hackathon = extractHackathon(text)
	facts.Locations = e.extractVenueAreas(text, facts.Location)

	return facts
}

func (e *Extractor) extractTitle(text string) string {
	if m := titleRe.FindStringSubmatch(text); m != nil {
		if title := strings.TrimSpace(m[1]); title != "" {
			return title
		}
	}
	return e.cfg.DefaultTitle
}

// extractDate finds the date label and leniently parses its value. An
// unparseable value is stored verbatim with a nil parsed date, so
// time-relative answers degrade instead of guessing.
func (e *Extractor) extractDate(text string) (string, *time.Time) {
	raw := e.cfg.DefaultDate
	if m := dateRe.FindStringSubmatch(text); m != nil {
		raw = strings.TrimSpace(m[1])
	}

	parsed, err := dateparse.ParseAny(raw)
	if err != nil {
		return raw, nil
	}

	return parsed.Format("2006-01-02"), &parsed
}

func (e *Extractor) extractLocation(text string) models.Location {
	m := locationRe.FindStringSubmatch(text)
	if m == nil {
		return e.cfg.DefaultLocation
	}

	locationText := strings.TrimSpace(m[1])
	if locationText == "" {
		return e.cfg.DefaultLocation
	}

	parts := addressRe.FindStringSubmatch(locationText)
	if parts == nil {
		return models.Location{FullAddress: locationText}
	}

	return models.Location{
		Name:        strings.TrimSpace(parts[1]),
		Address:     strings.TrimSpace(parts[2]),
		City:        strings.TrimSpace(parts[3]),
		State:       strings.TrimSpace(parts[4]),
		PostalCode:  strings.TrimSpace(parts[5]),
		Country:     e.cfg.DefaultCountry,
		FullAddress: locationText,
	}
}

func extractDescription(text string) string {
	block, ok := captureBlock(text, descriptionRe)
	if !ok {
		return ""
	}
	return block
}

func (e *Extractor) extractAgenda(text string) []models.AgendaEntry {
	var entries []models.AgendaEntry

	if block, ok := captureBlock(text, agendaRe); ok {
		for _, m := range matchEntries(block, timeRangeRe) {
			entries = append(entries, models.AgendaEntry{Time: m.key, Activity: m.body})
		}
	}

	// No time-range entries anywhere in the agenda block: retry with the
	// looser single-time pattern over the whole document.
	if len(entries) == 0 {
		for _, m := range matchEntries(text, singleTimeRe) {
			entries = append(entries, models.AgendaEntry{Time: m.key, Activity: m.body})
		}
	}

	if len(entries) == 0 {
		for _, d := range e.cfg.DefaultAgenda {
			entries = append(entries, models.AgendaEntry{Time: d.Time, Activity: d.Activity})
		}
	}

	return entries
}

func (e *Extractor) extractAudience(text string) []string {
	block, ok := captureBlock(text, audienceRe)
	if !ok || block == "" {
		return append([]string(nil), e.cfg.DefaultAudience...)
	}

	var items []string
	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if bulletPrefixRe.MatchString(trimmed) {
			items = append(items, strings.TrimSpace(bulletPrefixRe.ReplaceAllString(trimmed, "")))
		}
	}

	if len(items) == 0 {
		return []string{block}
	}

	return items
}

func extractHackathon(text string) *models.Hackathon {
	block, ok := captureParagraph(text, hackathonRe)
	if !ok || block == "" {
		return nil
	}

	h := &models.Hackathon{Description: block}

	if m := deadlineRe.FindStringSubmatch(block); m != nil {
		h.Deadline = strings.TrimSpace(m[1])
	}

	if loc := prizesRe.FindStringIndex(block); loc != nil {
		prizes := make(map[string]string)
		for _, entry := range matchEntries(block[loc[1]:], prizeRe) {
			prizes[entry.key] = entry.body
		}
		if len(prizes) > 0 {
			h.Prizes = prizes
		}
	}

	return h
}

// extractVenueAreas builds the canonical-key directions map. Any canonical
// key the document never mentions gets its configured default, and the
// venue key always carries the full address when one is known.
func (e *Extractor) extractVenueAreas(text string, loc models.Location) map[string]string {
	areas := make(map[string]string)

	if block, ok := captureParagraph(text, locationsRe); ok {
		for _, entry := range matchEntries(block, venueAreaRe) {
			areas[canonicalAreaKey(entry.key)] = entry.body
		}
	}

	for key, desc := range e.cfg.DefaultLocations {
		if _, found := areas[key]; !found {
			areas[key] = desc
		}
	}

	if loc.FullAddress != "" {
		areas["venue"] = loc.FullAddress
	}

	return areas
}

// canonicalAreaKey maps a venue-area name to its canonical key by
// substring.
func canonicalAreaKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "_")

	switch {
	case strings.Contains(key, "washroom"), strings.Contains(key, "restroom"), strings.Contains(key, "bathroom"):
		return "washroom"
	case strings.Contains(key, "hall"):
		return "main_hall"
	case strings.Contains(key, "cafe"):
		return "cafeteria"
	case strings.Contains(key, "regist"), strings.Contains(key, "reception"):
		return "registration_desk"
	}

	return key
}

// NormalizeAgenda re-keys agenda entries by the first clock token in each
// label, converted to 24-hour HH:MM using any AM/PM marker that follows the
// token. Labels without a clock token are dropped.
func NormalizeAgenda(agenda []models.AgendaEntry) []models.AgendaEntry {
	var normalized []models.AgendaEntry
	for _, entry := range agenda {
		if clock, ok := NormalizeClock(entry.Time); ok {
			normalized = append(normalized, models.AgendaEntry{Time: clock, Activity: entry.Activity})
		}
	}
	return normalized
}

// NormalizeClock extracts the leading clock token from a free-form time
// label and returns it as 24-hour HH:MM. Best effort: a marker directly on
// the token decides the half of day; a single marker trailing a range
// ("1:00 - 2:00 PM") binds the start only while that keeps the range
// ordered, so "11:00 - 12:00 PM" still starts at 11:00. A bare token is
// taken as already 24-hour.
func NormalizeClock(label string) (string, bool) {
	tokens := clockRe.FindAllStringSubmatchIndex(label, 2)
	if len(tokens) == 0 {
		return "", false
	}

	hour := atoi(label[tokens[0][2]:tokens[0][3]])
	minute := atoi(label[tokens[0][4]:tokens[0][5]])
	if hour > 23 || minute > 59 {
		return "", false
	}

	markerRegion := label[tokens[0][1]:]
	if len(tokens) > 1 {
		markerRegion = label[tokens[0][1]:tokens[1][0]]
	}

	marker := findMeridiem(markerRegion)
	if marker == "" && len(tokens) > 1 {
		marker = findMeridiem(label[tokens[1][1]:])
		if marker != "" {
			endHour := applyMeridiem(marker, atoi(label[tokens[1][2]:tokens[1][3]]))
			endMinute := atoi(label[tokens[1][4]:tokens[1][5]])
			if applyMeridiem(marker, hour)*60+minute > endHour*60+endMinute {
				marker = ""
			}
		}
	}

	return fmt.Sprintf("%02d:%02d", applyMeridiem(marker, hour), minute), true
}

func findMeridiem(s string) string {
	up := strings.ToUpper(s)
	pm := strings.Index(up, "PM")
	am := strings.Index(up, "AM")

	switch {
	case pm >= 0 && (am < 0 || pm < am):
		return "PM"
	case am >= 0:
		return "AM"
	}
	return ""
}

func applyMeridiem(marker string, hour int) int {
	switch marker {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	return hour
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

// captureBlock returns the text between the first match of a section label
// and the next blank line or capitalized line start. Only the first
// occurrence of a label is ever used.
func captureBlock(text string, label *regexp.Regexp) (string, bool) {
	loc := label.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	rest := text[loc[1]:]
	return strings.TrimSpace(rest[:blockEnd(rest)]), true
}

// captureParagraph returns the text between the first match of a section
// label and the next blank line. It serves the sections whose own entries
// legitimately start with capitalized names (prize positions, venue areas),
// where the capitalized-line terminator would cut the block short.
func captureParagraph(text string, label *regexp.Regexp) (string, bool) {
	loc := label.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	rest := text[loc[1]:]
	if end := strings.Index(rest, "\n\n"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest), true
}

// blockEnd finds the offset where a section block terminates: a blank line
// or a newline followed by a capital letter (the start of the next labeled
// section).
func blockEnd(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' {
			continue
		}
		if i+1 >= len(s) {
			return i
		}
		c := s[i+1]
		if c == '\n' || (c >= 'A' && c <= 'Z') {
			return i
		}
	}
	return len(s)
}

// labeledEntry is an intermediate <head> <body> pair produced while
// scanning repeated entries inside a section block.
type labeledEntry struct {
	key  string
	body string
}

// matchEntries scans a block for repeated <head> <body> entries, where head
// is the given pattern (a time range, a prize position, a venue-area name)
// and body runs until the next head, a digit-leading line, a blank line, or
// a capitalized section start. First capture group of the head becomes the
// entry key.
func matchEntries(block string, head *regexp.Regexp) []labeledEntry {
	matches := head.FindAllStringSubmatchIndex(block, -1)
	var entries []labeledEntry

	for i, m := range matches {
		end := len(block)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		body := strings.TrimSpace(trimAtEntryBoundary(block[m[1]:end]))
		if body == "" {
			continue
		}

		entries = append(entries, labeledEntry{
			key:  strings.TrimSpace(block[m[2]:m[3]]),
			body: body,
		})
	}

	return entries
}

func trimAtEntryBoundary(s string) string {
	for i := 0; i+1 < len(s); i++ {
		if s[i] != '\n' {
			continue
		}
		c := s[i+1]
		if c == '\n' || (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') {
			return s[:i]
		}
	}
	return s
}
