package yomikata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndex(t *testing.T) {
	data := "あう,10\n" +
		"かき,20,30\n" +
		",5\n" +
		"ねこ\n" +
		"はし,abc\n" +
		"was\n" +
		"んん,40\n"

	records := parseIndex(data)

	// Only well-formed lines survive: a key plus at least one numeric offset.
	require.Len(t, records, 3)
	assert.Equal(t, "あう", records[0].key)
	assert.Equal(t, []int64{10}, records[0].offsets)
	assert.Equal(t, "かき", records[1].key)
	assert.Equal(t, []int64{20, 30}, records[1].offsets)
	assert.Equal(t, "んん", records[2].key)
}

func TestLookupIndex(t *testing.T) {
	records := parseIndex("あう,10\nかき,20,30\nさし,40\nたち,50\n")
	require.Len(t, records, 4)

	tests := []struct {
		name     string
		word     string
		expected []int64
	}{
		{
			name:     "first key",
			word:     "あう",
			expected: []int64{10},
		},
		{
			name:     "middle key with multiple offsets",
			word:     "かき",
			expected: []int64{20, 30},
		},
		{
			name:     "last key",
			word:     "たち",
			expected: []int64{50},
		},
		{
			name:     "absent key between entries",
			word:     "くけ",
			expected: nil,
		},
		{
			name:     "absent key before first",
			word:     "ああ",
			expected: nil,
		},
		{
			name:     "absent key after last",
			word:     "わを",
			expected: nil,
		},
		{
			name:     "empty word",
			word:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lookupIndex(records, tt.word))
		})
	}
}

func TestLookupIndexEmptyTable(t *testing.T) {
	assert.Nil(t, lookupIndex(nil, "ねこ"))
}

func TestLineAt(t *testing.T) {
	blob := "first line\nsecond line\nlast"

	tests := []struct {
		name     string
		offset   int64
		expected string
		ok       bool
	}{
		{
			name:     "start of blob",
			offset:   0,
			expected: "first line",
			ok:       true,
		},
		{
			name:     "middle line",
			offset:   11,
			expected: "second line",
			ok:       true,
		},
		{
			name:     "final line without trailing newline",
			offset:   23,
			expected: "last",
			ok:       true,
		},
		{
			name:   "negative offset",
			offset: -1,
			ok:     false,
		},
		{
			name:   "offset past the end",
			offset: 100,
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, ok := lineAt(blob, tt.offset)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, line)
		})
	}
}

func TestNormalizeLineEndings(t *testing.T) {
	assert.Equal(t, "a\nb\nc\n", normalizeLineEndings("a\r\nb\rc\n"))
	assert.Equal(t, "plain\n", normalizeLineEndings("plain\n"))
	assert.Equal(t, "", normalizeLineEndings(""))
}
