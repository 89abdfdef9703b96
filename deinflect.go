package yomikata

import (
	"strconv"
	"strings"
)

// allWordTypes seeds the traversal: the surface form may be anything until a
// rule narrows it down.
const allWordTypes = 0xFF

// Rule rewrites one inflected suffix into a possible base-form suffix.
// The low byte of TypeMask is the set of grammatical types the rule may fire
// on; the high byte (TypeMask >> 8) is the set of types the resulting word is
// tagged with, which is what enables chained deinflection such as
// passive-causative-negative.
type Rule struct {
	From        string
	To          string
	TypeMask    uint16
	ReasonIndex int
}

// RuleGroup holds all rules whose source suffix has the same rune length.
// A group is only tried against candidates at least that long.
type RuleGroup struct {
	FromLength int
	Rules      []Rule
}

// Deinflection is a candidate base form together with the accumulated
// human-readable chain of rule names that produced it, outermost rule first.
type Deinflection struct {
	Word     string
	TypeMask uint16
	Reason   string
}

// ParseDeinflectionData decodes the tab-separated rule table. The first line
// is a header and is discarded. Every following line is either a four-column
// rule (fromSuffix, toSuffix, numeric type mask, numeric reason index) or a
// single-column reason string appended to the reason table. Rules are grouped
// by equal source-suffix rune length as they are parsed, in file order.
// Malformed lines are skipped.
func ParseDeinflectionData(data string) (reasons []string, groups []RuleGroup) {
	lines := strings.Split(data, "\n")
	if len(lines) > 0 {
		lines = lines[1:] // header
	}

	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		switch len(fields) {
		case 1:
			reasons = append(reasons, fields[0])
		case 4:
			mask, errMask := strconv.ParseUint(fields[2], 10, 16)
			reasonIdx, errIdx := strconv.Atoi(fields[3])
			if errMask != nil || errIdx != nil {
				Logger.Debug().Str("line", line).Msg("skipping deinflection rule with non-numeric fields")
				continue
			}
			rule := Rule{
				From:        fields[0],
				To:          fields[1],
				TypeMask:    uint16(mask),
				ReasonIndex: reasonIdx,
			}
			fromLen := len([]rune(rule.From))
			if n := len(groups); n == 0 || groups[n-1].FromLength != fromLen {
				groups = append(groups, RuleGroup{FromLength: fromLen})
			}
			last := len(groups) - 1
			groups[last].Rules = append(groups[last].Rules, rule)
		default:
			Logger.Debug().Str("line", line).Msg("skipping malformed deinflection line")
		}
	}
	return reasons, groups
}

// Deinflect applies the rule table transitively to word and returns every
// reachable base form. The identity form is always the first result and
// carries an empty reason. Deinflection cannot fail: worst case only the
// identity form comes back.
//
// The traversal keeps a FIFO worklist that grows while it is being processed.
// When a rule produces a word that already exists in the worklist, the rule's
// result-type bits are OR-ed into the settled entry and the entry is not
// traversed again. Bits merged in after an entry has been visited cannot
// retroactively unlock further rule applications from that entry; the
// conflicting branch has usually been covered via another path already.
func Deinflect(reasons []string, groups []RuleGroup, word string) []Deinflection {
	results := []Deinflection{{Word: word, TypeMask: allWordTypes}}
	seen := map[string]int{word: 0}

	for i := 0; i < len(results); i++ {
		wordRunes := []rune(results[i].Word)
		for _, group := range groups {
			if group.FromLength > len(wordRunes) {
				continue
			}
			cut := len(wordRunes) - group.FromLength
			suffix := string(wordRunes[cut:])
			stem := string(wordRunes[:cut])
			for _, rule := range group.Rules {
				if suffix != rule.From {
					continue
				}
				if results[i].TypeMask&rule.TypeMask == 0 {
					continue
				}
				newWord := stem + rule.To
				if newWord == "" {
					continue
				}
				if j, ok := seen[newWord]; ok {
					results[j].TypeMask |= rule.TypeMask >> 8
					continue
				}
				reason := ruleReason(reasons, rule.ReasonIndex)
				if prior := results[i].Reason; prior != "" {
					reason += " < " + prior
				}
				seen[newWord] = len(results)
				results = append(results, Deinflection{
					Word:     newWord,
					TypeMask: rule.TypeMask >> 8,
					Reason:   reason,
				})
			}
		}
	}
	return results
}

func ruleReason(reasons []string, idx int) string {
	if idx < 0 || idx >= len(reasons) {
		return ""
	}
	return reasons[idx]
}
