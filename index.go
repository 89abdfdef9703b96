package yomikata

import (
	"sort"
	"strconv"
	"strings"
)

// indexRecord maps one normalized headword key to the byte offsets of its
// entry lines inside the packed dictionary blob.
type indexRecord struct {
	key     string
	offsets []int64
}

// IndexTable is the parsed, sorted dictionary index. It is opaque to callers;
// LoadWordDict builds it and SearchWord consumes it.
type IndexTable []indexRecord

// parseIndex decodes the sorted index text, one "key,offset,offset,..." line
// at a time, into an immutable record slice. The input is required to be
// sorted ascending by key; the order is preserved, not re-established.
// A line with a missing key or a non-numeric offset can never produce a
// lookup hit, so it is dropped here with a debug event instead of failing
// the whole load.
func parseIndex(data string) IndexTable {
	lines := strings.Split(data, "\n")
	records := make(IndexTable, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 2 || fields[0] == "" {
			Logger.Debug().Str("line", stringCapLen(line, 40)).Msg("skipping malformed index line")
			continue
		}
		offsets := make([]int64, 0, len(fields)-1)
		ok := true
		for _, f := range fields[1:] {
			off, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				Logger.Debug().Str("line", stringCapLen(line, 40)).Msg("skipping index line with non-numeric offset")
				ok = false
				break
			}
			offsets = append(offsets, off)
		}
		if !ok {
			continue
		}
		records = append(records, indexRecord{key: fields[0], offsets: offsets})
	}
	return records
}

// lookupIndex binary-searches the sorted records for an exact key match and
// returns its offsets, or nil when the word is absent.
func lookupIndex(records IndexTable, word string) []int64 {
	i, found := sort.Find(len(records), func(i int) int {
		return strings.Compare(word, records[i].key)
	})
	if !found {
		return nil
	}
	return records[i].offsets
}

// lineAt returns the dictionary line starting at the given byte offset,
// without its trailing newline. Offsets are byte-exact against the
// normalized blob; anything out of range reports false.
func lineAt(blob string, offset int64) (string, bool) {
	if offset < 0 || offset >= int64(len(blob)) {
		return "", false
	}
	rest := blob[offset:]
	if end := strings.IndexByte(rest, '\n'); end >= 0 {
		return rest[:end], true
	}
	return rest, true
}

// normalizeLineEndings rewrites CRLF and bare CR line endings to a single
// LF byte. Index offsets are byte-addressed, so this must happen before any
// offset is computed or used.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func stringCapLen(s string, max int) string {
	trimmed := false
	for len(s) > max {
		s = s[:len(s)-1]
		trimmed = true
	}
	if trimmed {
		s += "…"
	}
	return s
}
