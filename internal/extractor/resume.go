package extractor

import (
	"regexp"
	"strings"

	"event-bot/internal/models"
)

// ResumeExtractor turns raw document text into participant records. The
// shipped implementation assumes one specific layout; alternate layouts can
// be supported by swapping the strategy without touching the rest of the
// pipeline.
type ResumeExtractor interface {
	Extract(text string) []models.Participant
}

// DelimiterResumeExtractor locates a labeled participants section and
// splits it into per-participant chunks on delimiter lines such as
// "Profile 1:", "Resume:", or "Name:".
type DelimiterResumeExtractor struct{}

var (
	participantsRe = regexp.MustCompile(`(?:Participants|Attendees|Profiles|Resumes):`)
	chunkSplitRe   = regexp.MustCompile(`\n\s*(?:Profile|Resume|Participant)\s*\d*\s*[:-]\s*|\n\s*(?:Name|Participant)\s*[:-]\s*`)
	nameLineRe     = regexp.MustCompile(`^[\w\s]+$`)
	skillsRe       = regexp.MustCompile(`(?:Skills|Expertise|Technologies)(?:\s*[:-]\s*|\n)`)
	experienceRe   = regexp.MustCompile(`(?:Experience|Work Experience|Professional Experience)(?:\s*[:-]\s*|\n)`)
	interestsRe    = regexp.MustCompile(`(?:Interests|Areas of Interest)(?:\s*[:-]\s*|\n)`)
	listSplitRe    = regexp.MustCompile(`[,;]|\n[-•*]`)
)

// Extract returns the participants found in the document, in document
// order. A missing participants section yields an empty slice, not an
// error. Chunks without a name, or with a name but neither skills nor
// experience, are dropped.
func (DelimiterResumeExtractor) Extract(text string) []models.Participant {
	section, ok := captureResumeSection(text)
	if !ok {
		return nil
	}

	// The delimiter pattern anchors on a preceding newline, which the first
	// chunk lost to trimming. Reattach one so it splits like the rest.
	var participants []models.Participant
	for _, chunk := range chunkSplitRe.Split("\n"+section, -1) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		p, ok := parseResumeChunk(chunk)
		if !ok {
			continue
		}

		participants = append(participants, p)
	}

	return participants
}

// captureResumeSection grabs the participants block. Resume chunks contain
// their own blank lines and capitalized field labels, so the section runs
// until a triple newline or a line opening with two or more capitals.
func captureResumeSection(text string) (string, bool) {
	loc := participantsRe.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	rest := text[loc[1]:]
	end := len(rest)
	for i := 0; i+1 < len(rest); i++ {
		if rest[i] != '\n' {
			continue
		}
		if strings.HasPrefix(rest[i+1:], "\n\n") {
			end = i
			break
		}
		if i+2 < len(rest) && isUpper(rest[i+1]) && isUpper(rest[i+2]) {
			end = i
			break
		}
	}

	return strings.TrimSpace(rest[:end]), true
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func parseResumeChunk(chunk string) (models.Participant, bool) {
	var p models.Participant

	name, rest, _ := strings.Cut(chunk, "\n")
	name = strings.TrimSpace(name)
	if name == "" || !nameLineRe.MatchString(name) {
		return p, false
	}
	p.Name = name

	p.Skills = extractListField(rest, skillsRe)
	p.Interests = extractListField(rest, interestsRe)
	if block, ok := captureBlock(rest, experienceRe); ok {
		p.Experience = block
	}

	if len(p.Skills) == 0 && p.Experience == "" {
		return p, false
	}

	return p, true
}

// extractListField captures a sub-block and splits it on commas, semicolons,
// and bullet lines.
func extractListField(chunk string, label *regexp.Regexp) []string {
	block, ok := captureBlock(chunk, label)
	if !ok || block == "" {
		return nil
	}

	var items []string
	for _, item := range listSplitRe.Split(block, -1) {
		item = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(item), "-•*"))
		if item != "" {
			items = append(items, item)
		}
	}

	return items
}
