package yomikata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePitchTable(t *testing.T) {
	data := "一分\tイチブ\t2\n" +
		"一分\tイップン\t1\n" +
		"missing accents\tヨミ\n" +
		"曖昧\tアイマイ\t0,3\n" +
		"番号\tバンゴウ\tnot-a-number\n" +
		"話す\tハナス\t2\n"

	records := parsePitchTable(data)

	require.Len(t, records, 4)
	assert.Equal(t, pitchRecord{word: "一分", reading: "イチブ", accents: []int{2}}, records[0])
	assert.Equal(t, pitchRecord{word: "一分", reading: "イップン", accents: []int{1}}, records[1])
	assert.Equal(t, pitchRecord{word: "曖昧", reading: "アイマイ", accents: []int{0, 3}}, records[2])
	assert.Equal(t, pitchRecord{word: "話す", reading: "ハナス", accents: []int{2}}, records[3])
}

func TestLookupPitch(t *testing.T) {
	table := parsePitchTable("一分\tイチブ\t2\n一分\tイップン\t1\n曖昧\tアイマイ\t0,3\n話す\tハナス\t2\n")

	tests := []struct {
		name     string
		word     string
		reading  string
		expected []int
	}{
		{
			name:     "hiragana query against katakana storage",
			word:     "話す",
			reading:  "はなす",
			expected: []int{2},
		},
		{
			name:     "katakana query matches raw",
			word:     "話す",
			reading:  "ハナス",
			expected: []int{2},
		},
		{
			name:     "second reading in an equal-headword run",
			word:     "一分",
			reading:  "いっぷん",
			expected: []int{1},
		},
		{
			name:     "first reading in an equal-headword run",
			word:     "一分",
			reading:  "いちぶ",
			expected: []int{2},
		},
		{
			name:     "multiple accent positions",
			word:     "曖昧",
			reading:  "あいまい",
			expected: []int{0, 3},
		},
		{
			name:    "absent headword",
			word:    "存在しない",
			reading: "そんざいしない",
		},
		{
			name:    "headword present but reading absent",
			word:    "話す",
			reading: "よみちがい",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lookupPitch(table, tt.word, tt.reading))
		})
	}
}

func TestLookupPitchSingleLineTable(t *testing.T) {
	table := parsePitchTable("話す\tハナス\t2\n")
	assert.Equal(t, []int{2}, lookupPitch(table, "話す", "はなす"))
	assert.Nil(t, lookupPitch(table, "歩く", "あるく"))
}
