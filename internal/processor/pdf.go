// internal/processor/pdf.go
package processor

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText is returned when a document decodes but yields no usable text.
// It is fatal to session initialization.
var ErrNoText = errors.New("no extractable text in document")

// ExtractText extracts plain text from a PDF file on disk.
func ExtractText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	return readPlainText(r)
}

// ExtractTextFromBytes extracts plain text from an in-memory PDF document.
func ExtractTextFromBytes(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to decode PDF: %w", err)
	}

	return readPlainText(r)
}

func readPlainText(r *pdf.Reader) (string, error) {
	b, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract plain text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(b); err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}

	text := NormalizeText(buf.String())
	if text == "" {
		return "", ErrNoText
	}

	return text, nil
}

var (
	trailingSpaceRe = regexp.MustCompile(`[ \t]+\n`)
	manyNewlinesRe  = regexp.MustCompile(`\n{3,}`)
)

// NormalizeText cleans up decoder output while preserving line structure,
// which the labeled-section matchers depend on. Page breaks become blank
// lines so sections never run together across pages.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\f", "\n\n")
	text = trailingSpaceRe.ReplaceAllString(text, "\n")
	text = manyNewlinesRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
