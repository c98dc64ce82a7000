// Package session owns the per-session lifecycle: one document is decoded
// and extracted at initialization, and the resulting facts are held
// read-only while questions are answered one at a time. A multi-session
// server must give each session its own Session value; nothing here is
// shared.
package session

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"event-bot/internal/engine"
	"event-bot/internal/extractor"
	"event-bot/internal/models"
	"event-bot/internal/processor"
)

// Exchange is one question/answer pair in the transcript.
type Exchange struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	At       time.Time `json:"at"`
}

// Session answers questions about a single event document.
type Session struct {
	ID uuid.UUID

	cfg     extractor.Config
	resumes extractor.ResumeExtractor
	llm     engine.Completer

	facts        models.EventFacts
	participants []models.Participant
	engine       *engine.Engine
	transcript   []Exchange
}

// New creates an uninitialized session. Initialize must succeed before Ask
// is usable.
func New(cfg extractor.Config, resumes extractor.ResumeExtractor, llm engine.Completer) *Session {
	if resumes == nil {
		resumes = extractor.DelimiterResumeExtractor{}
	}
	return &Session{
		ID:      uuid.New(),
		cfg:     cfg,
		resumes: resumes,
		llm:     llm,
	}
}

// Initialize decodes the document and extracts the event facts and
// participant list. It fails only when the document cannot be decoded or
// contains no text; extraction itself is total. Callers must block further
// interaction until Initialize succeeds.
func (s *Session) Initialize(document []byte) (models.EventFacts, error) {
	text, err := processor.ExtractTextFromBytes(document)
	if err != nil {
		return models.EventFacts{}, fmt.Errorf("failed to initialize session: %w", err)
	}

	return s.InitializeFromText(text), nil
}

// InitializeFromFile is Initialize for a document on disk.
func (s *Session) InitializeFromFile(path string) (models.EventFacts, error) {
	text, err := processor.ExtractText(path)
	if err != nil {
		return models.EventFacts{}, fmt.Errorf("failed to initialize session: %w", err)
	}

	return s.InitializeFromText(text), nil
}

// InitializeFromText extracts facts from already-decoded document text.
// Extraction is total, so this cannot fail.
func (s *Session) InitializeFromText(text string) models.EventFacts {
	s.facts = extractor.New(s.cfg).Extract(text)
	s.participants = s.resumes.Extract(text)
	s.engine = engine.New(s.facts, s.participants, s.llm)

	log.Printf("session %s initialized: %d agenda entries, %d participants", s.ID, len(s.facts.Agenda), len(s.participants))

	return s.facts
}

// Ask answers one question. It never fails: before initialization or under
// any internal failure the caller still gets an answer string.
func (s *Session) Ask(ctx context.Context, question string) string {
	return s.AskAt(ctx, question, time.Now())
}

// AskAt is Ask with an explicit reference time for time-relative answers.
func (s *Session) AskAt(ctx context.Context, question string, now time.Time) string {
	if s.engine == nil {
		return "The event document hasn't been loaded yet. Please initialize the session with a valid document first."
	}

	answer := s.engine.Answer(ctx, question, now)
	s.transcript = append(s.transcript, Exchange{Question: question, Answer: answer, At: now})

	return answer
}

// Facts returns the extracted event facts.
func (s *Session) Facts() models.EventFacts {
	return s.facts
}

// Participants returns the extracted participant list.
func (s *Session) Participants() []models.Participant {
	return s.participants
}

// Feedback returns a copy of the feedback collected so far, keyed by
// session name.
func (s *Session) Feedback() map[string][]string {
	if s.engine == nil {
		return nil
	}
	return s.engine.Feedback()
}

// Transcript returns the question/answer history in order.
func (s *Session) Transcript() []Exchange {
	return append([]Exchange(nil), s.transcript...)
}
