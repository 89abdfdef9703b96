package yomikata

// SearchWord resolves text against the loaded bundle. Equivalent to
// dicts.Search(text).
func SearchWord(dicts *Dictionaries, text string) SearchResult {
	return dicts.Search(text)
}

// Search resolves a raw text fragment into ranked dictionary entries.
//
// Every non-empty rune prefix of text is tried, longest first: the prefix is
// normalized onto hiragana, deinflected, and each candidate base form that
// has not been probed yet in this call is looked up in the index. Entries
// therefore arrive ordered by decreasing matched prefix length, then by
// deinflection order, then by dictionary order. SelectedTextLength reports
// the longest prefix that produced at least one entry, defaulting to 1.
//
// The visited set is scoped to the call, never shared, so concurrent
// searches over the same bundle cannot interfere.
func (d *Dictionaries) Search(text string) SearchResult {
	result := SearchResult{SelectedTextLength: 1}
	runes := []rune(text)
	probed := make(map[string]struct{})

	for n := len(runes); n >= 1; n-- {
		normalized := Normalize(string(runes[:n]))
		for _, candidate := range Deinflect(d.reasons, d.groups, normalized) {
			if _, ok := probed[candidate.Word]; ok {
				continue
			}
			probed[candidate.Word] = struct{}{}

			offsets := lookupIndex(d.index, candidate.Word)
			if len(offsets) == 0 {
				continue
			}
			Logger.Debug().
				Str("word", candidate.Word).
				Str("reason", candidate.Reason).
				Int("prefix_len", n).
				Int("hits", len(offsets)).
				Msg("index hit")

			matched := false
			for _, off := range offsets {
				line, ok := lineAt(d.dict, off)
				if !ok {
					Logger.Debug().Int64("offset", off).Msg("index offset outside dictionary blob")
					continue
				}
				entry, ok := parseEntry(line)
				if !ok {
					Logger.Debug().Int64("offset", off).Msg("skipping malformed dictionary line")
					continue
				}
				entry.PitchAccents = lookupPitch(d.pitch, entry.Headword, entry.EffectiveReading())
				result.Entries = append(result.Entries, entry)
				matched = true
			}
			if matched && result.SelectedTextLength < n {
				result.SelectedTextLength = n
			}
		}
	}
	return result
}
