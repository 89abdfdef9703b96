package yomikata

import (
	"sort"
	"strconv"
	"strings"
)

// PitchTable is the parsed, sorted pitch-accent table, opaque to callers.
type PitchTable []pitchRecord

// pitchRecord is one line of the pitch-accent table. The reading is stored in
// katakana, exactly as the corpus ships it.
type pitchRecord struct {
	word    string
	reading string
	accents []int
}

// parsePitchTable decodes tab-separated "word\tkatakanaReading\ta1,a2,..."
// lines into an immutable record slice. The input is required to be sorted
// ascending by (word, reading); the order is preserved. Malformed lines are
// dropped with a debug event, matching the policy that a corrupt line only
// ever degrades its own probe to "no match".
func parsePitchTable(data string) PitchTable {
	lines := strings.Split(data, "\n")
	records := make(PitchTable, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 || fields[0] == "" || fields[1] == "" {
			Logger.Debug().Str("line", stringCapLen(line, 40)).Msg("skipping malformed pitch line")
			continue
		}
		parts := strings.Split(fields[2], ",")
		accents := make([]int, 0, len(parts))
		ok := true
		for _, p := range parts {
			a, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				Logger.Debug().Str("line", stringCapLen(line, 40)).Msg("skipping pitch line with non-numeric accent")
				ok = false
				break
			}
			accents = append(accents, a)
		}
		if !ok {
			continue
		}
		records = append(records, pitchRecord{
			word:    fields[0],
			reading: fields[1],
			accents: accents,
		})
	}
	return records
}

// lookupPitch returns the downstep positions for (headword, reading), or nil
// when the pair is absent. The search is keyed first by headword via binary
// search, then the run of equal headwords is scanned for a reading match.
// The stored reading is katakana, so it is compared both raw and
// hiragana-folded to tolerate either representation in the query.
func lookupPitch(records PitchTable, headword, reading string) []int {
	n := sort.Search(len(records), func(i int) bool {
		return records[i].word >= headword
	})
	hira := KatakanaToHiragana(reading)
	for ; n < len(records) && records[n].word == headword; n++ {
		if records[n].reading == reading || KatakanaToHiragana(records[n].reading) == hira {
			return records[n].accents
		}
	}
	return nil
}
