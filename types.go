package yomikata

import (
	"fmt"
	"strings"
)

// WordEntry represents a single resolved dictionary entry.
type WordEntry struct {
	Headword     string   `json:"headword"`      // Canonical dictionary form
	Reading      string   `json:"reading"`       // Kana reading, empty for kana-only headwords
	Glosses      []string `json:"glosses"`       // English meanings
	PitchAccents []int    `json:"pitch_accents"` // Downstep mora positions, nil when unknown
}

// WordEntries is a slice of entry pointers representing a complete lookup result.
type WordEntries []*WordEntry

// SearchResult is the outcome of resolving one text fragment.
type SearchResult struct {
	// SelectedTextLength is the length in runes of the longest input prefix
	// that produced at least one entry, or 1 when nothing matched at all.
	SelectedTextLength int `json:"selected_text_length"`
	// Entries are ordered by decreasing matched prefix length, then by
	// deinflection order, then by dictionary order.
	Entries WordEntries `json:"entries"`
}

// EffectiveReading returns the reading used for pronunciation lookups:
// the explicit reading when present, otherwise the headword itself
// (kana-only entries list no separate reading).
func (e *WordEntry) EffectiveReading() string {
	if e.Reading != "" {
		return e.Reading
	}
	return e.Headword
}

// String renders the entry on one line: headword, bracketed reading where
// present, pitch accents and glosses.
func (e *WordEntry) String() string {
	var b strings.Builder
	b.WriteString(e.Headword)
	if e.Reading != "" {
		fmt.Fprintf(&b, " [%s]", e.Reading)
	}
	if len(e.PitchAccents) > 0 {
		accents := make([]string, len(e.PitchAccents))
		for i, a := range e.PitchAccents {
			accents[i] = fmt.Sprint(a)
		}
		fmt.Fprintf(&b, " {%s}", strings.Join(accents, ","))
	}
	if len(e.Glosses) > 0 {
		fmt.Fprintf(&b, " /%s/", strings.Join(e.Glosses, "/"))
	}
	return b.String()
}

// Headwords returns a slice of all entry headwords.
func (entries WordEntries) Headwords() (parts []string) {
	for _, e := range entries {
		parts = append(parts, e.Headword)
	}
	return
}

// Readings returns a slice of all entry readings, falling back to the
// headword for kana-only entries.
func (entries WordEntries) Readings() (parts []string) {
	for _, e := range entries {
		parts = append(parts, e.EffectiveReading())
	}
	return
}

// Glossed returns a formatted string containing each headword followed by
// its glosses.
func (entries WordEntries) Glossed() string {
	parts := entries.GlossParts()
	return strings.Join(parts, " ")
}

// GlossParts returns a slice of strings containing each headword followed by
// its glosses.
func (entries WordEntries) GlossParts() (parts []string) {
	for _, e := range entries {
		if len(e.Glosses) > 0 {
			parts = append(parts, fmt.Sprintf("%s(%s)",
				e.Headword,
				strings.Join(e.Glosses, "; ")))
		} else {
			parts = append(parts, e.Headword)
		}
	}
	return
}
