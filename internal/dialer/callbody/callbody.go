// Package callbody packs structured call fields into HubSpot's single
// free-text call body and recovers them later. The CRM object model has no
// structured custom fields for this tool, so the dialer uses a
// line-oriented micro-format: recognized `Label: value` lines carry
// metadata, every other line is notes.
package callbody

import "strings"

// Fields is the structured subset packed into a call body, plus free-text
// notes. Empty optional fields are indistinguishable from absent ones
// after a round trip; both decode to "".
type Fields struct {
	Notes       string
	Disposition string
	Company     string
	Title       string
	LinkedIn    string
}

// Codec encodes fields into one opaque text blob and decodes a stored
// blob back. The codec is versioned behind this interface so the format
// can later be swapped (e.g. JSON-in-text-field) without touching
// callers.
type Codec interface {
	Encode(f Fields) string
	Decode(body string) Fields
}

// Reserved label prefixes, in emission order. Encode and Decode must agree
// on this set exactly or round-trip fidelity breaks.
const (
	prefixDisposition = "Disposition: "
	prefixCompany     = "Company: "
	prefixTitle       = "Title: "
	prefixLinkedIn    = "LinkedIn: "
)

// NewV1 returns the line-prefix codec. Known ambiguity: a notes line that
// itself starts with a reserved prefix is reclassified as metadata on
// decode. Changing that requires a format version bump, not a silent fix
// here.
func NewV1() Codec {
	return lineCodec{}
}

type lineCodec struct{}

func (lineCodec) Encode(f Fields) string {
	var lines []string
	if f.Notes != "" {
		lines = append(lines, f.Notes)
	}
	if f.Disposition != "" {
		lines = append(lines, prefixDisposition+f.Disposition)
	}
	if f.Company != "" {
		lines = append(lines, prefixCompany+f.Company)
	}
	if f.Title != "" {
		lines = append(lines, prefixTitle+f.Title)
	}
	if f.LinkedIn != "" {
		lines = append(lines, prefixLinkedIn+f.LinkedIn)
	}
	return strings.Join(lines, "\n")
}

func (lineCodec) Decode(body string) Fields {
	var f Fields
	var noteLines []string

	for _, line := range strings.Split(body, "\n") {
		switch {
		case strings.HasPrefix(line, prefixDisposition):
			f.Disposition = strings.TrimPrefix(line, prefixDisposition)
		case strings.HasPrefix(line, prefixCompany):
			f.Company = strings.TrimPrefix(line, prefixCompany)
		case strings.HasPrefix(line, prefixTitle):
			f.Title = strings.TrimPrefix(line, prefixTitle)
		case strings.HasPrefix(line, prefixLinkedIn):
			f.LinkedIn = strings.TrimPrefix(line, prefixLinkedIn)
		default:
			noteLines = append(noteLines, line)
		}
	}

	f.Notes = trimBlankEdges(noteLines)
	return f
}

// trimBlankEdges joins note lines in original order, dropping leading and
// trailing blank lines only.
func trimBlankEdges(lines []string) string {
	start := 0
	end := len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
