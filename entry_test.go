package yomikata

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected *WordEntry
	}{
		{
			name: "headword with reading and one gloss",
			line: "悲しい [かなしい] /(adj-i) sad/",
			expected: &WordEntry{
				Headword: "悲しい",
				Reading:  "かなしい",
				Glosses:  []string{"(adj-i) sad"},
			},
		},
		{
			name: "multiple glosses",
			line: "話す [はなす] /(v5s) to talk/to speak/to tell/",
			expected: &WordEntry{
				Headword: "話す",
				Reading:  "はなす",
				Glosses:  []string{"(v5s) to talk", "to speak", "to tell"},
			},
		},
		{
			name: "kana-only headword without reading",
			line: "ねこ /(n) cat/",
			expected: &WordEntry{
				Headword: "ねこ",
				Glosses:  []string{"(n) cat"},
			},
		},
		{
			name: "no gloss block",
			line: "悲しい [かなしい]",
		},
		{
			name: "empty gloss block",
			line: "悲しい [かなしい] ///",
		},
		{
			name: "empty line",
			line: "",
		},
		{
			name: "free text",
			line: "this is not a dictionary line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := parseEntry(tt.line)
			if tt.expected == nil {
				assert.False(t, ok)
				assert.Nil(t, entry)
				return
			}
			require.True(t, ok)
			if diff := cmp.Diff(tt.expected, entry); diff != "" {
				t.Errorf("entry mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseEntryRoundTrip(t *testing.T) {
	entries := []*WordEntry{
		{Headword: "食べる", Reading: "たべる", Glosses: []string{"(v1) to eat"}},
		{Headword: "猫", Reading: "ねこ", Glosses: []string{"(n) cat", "shamisen material"}},
		{Headword: "すし", Glosses: []string{"(n) sushi"}},
	}

	for _, want := range entries {
		t.Run(want.Headword, func(t *testing.T) {
			var line string
			if want.Reading != "" {
				line = fmt.Sprintf("%s [%s] /%s/", want.Headword, want.Reading, strings.Join(want.Glosses, "/"))
			} else {
				line = fmt.Sprintf("%s /%s/", want.Headword, strings.Join(want.Glosses, "/"))
			}

			got, ok := parseEntry(line)
			require.True(t, ok)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
