package events

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sanitizer tidies event copy before it is handed to the enrichment
// service: HTML fragments are flattened to plain text and shouty location
// labels are recased. Identity fields (eventName, time) are never touched.
type Sanitizer struct {
	titleCaser cases.Caser
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		titleCaser: cases.Title(language.AmericanEnglish),
	}
}

func (s *Sanitizer) Run(events []NormalizedEvent) []NormalizedEvent {
	sanitized := make([]NormalizedEvent, len(events))
	for i, ev := range events {
		ev.Description = s.FlattenHTML(ev.Description)
		ev.LocationName = s.CleanLabel(ev.LocationName)
		sanitized[i] = ev
	}
	return sanitized
}

// FlattenHTML strips markup from a description fragment and collapses
// whitespace. On parse failure the input is returned with whitespace
// collapsed, so a broken fragment still reaches enrichment.
func (s *Sanitizer) FlattenHTML(fragment string) string {
	if !strings.Contains(fragment, "<") {
		return collapseWhitespace(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapseWhitespace(fragment)
	}

	return collapseWhitespace(doc.Text())
}

// CleanLabel collapses whitespace and title-cases fully upper-cased words
// longer than three letters. Short all-caps words are kept as-is since
// campus building names are usually acronyms ("TBE", "SU").
func (s *Sanitizer) CleanLabel(label string) string {
	words := strings.Fields(label)
	for i, word := range words {
		if len(word) > 3 && isUpperWord(word) {
			words[i] = s.titleCaser.String(strings.ToLower(word))
		}
	}
	return strings.Join(words, " ")
}

func isUpperWord(word string) bool {
	hasLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
