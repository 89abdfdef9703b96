package yomikata

import (
	"regexp"
	"strings"
)

// Packed dictionary line: HEADWORD [READING] /gloss1/gloss2/.../
// with the bracketed reading optional.
var reDictLine = regexp.MustCompile(`^(\S+)(?:\s+\[([^\]]*)\])?\s*/(.+)/\s*$`)

// parseEntry decodes one packed dictionary line into a WordEntry. It reports
// false for non-conforming lines; callers filter those out rather than treat
// them as entries or errors.
func parseEntry(line string) (*WordEntry, bool) {
	m := reDictLine.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	var glosses []string
	for _, g := range strings.Split(m[3], "/") {
		if g = strings.TrimSpace(g); g != "" {
			glosses = append(glosses, g)
		}
	}
	if len(glosses) == 0 {
		return nil, false
	}
	return &WordEntry{
		Headword: m[1],
		Reading:  m[2],
		Glosses:  glosses,
	}, true
}
