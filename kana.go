package yomikata

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Longest romanization chunk in the table below ("tcha" and friends).
const maxRomajiChunk = 4

// romajiKana maps Latin romanization chunks to hiragana. Both Hepburn and
// Kunrei spellings are accepted where they differ.
var romajiKana = map[string]string{
	"a": "あ", "i": "い", "u": "う", "e": "え", "o": "お",
	"ka": "か", "ki": "き", "ku": "く", "ke": "け", "ko": "こ",
	"sa": "さ", "shi": "し", "si": "し", "su": "す", "se": "せ", "so": "そ",
	"ta": "た", "chi": "ち", "ti": "ち", "tsu": "つ", "tu": "つ", "te": "て", "to": "と",
	"na": "な", "ni": "に", "nu": "ぬ", "ne": "ね", "no": "の",
	"ha": "は", "hi": "ひ", "fu": "ふ", "hu": "ふ", "he": "へ", "ho": "ほ",
	"ma": "ま", "mi": "み", "mu": "む", "me": "め", "mo": "も",
	"ya": "や", "yu": "ゆ", "yo": "よ",
	"ra": "ら", "ri": "り", "ru": "る", "re": "れ", "ro": "ろ",
	"wa": "わ", "wo": "を",
	"n": "ん", "n'": "ん",

	"ga": "が", "gi": "ぎ", "gu": "ぐ", "ge": "げ", "go": "ご",
	"za": "ざ", "ji": "じ", "zi": "じ", "zu": "ず", "ze": "ぜ", "zo": "ぞ",
	"da": "だ", "di": "ぢ", "du": "づ", "de": "で", "do": "ど",
	"ba": "ば", "bi": "び", "bu": "ぶ", "be": "べ", "bo": "ぼ",
	"pa": "ぱ", "pi": "ぴ", "pu": "ぷ", "pe": "ぺ", "po": "ぽ",
	"vu": "ゔ",

	"kya": "きゃ", "kyu": "きゅ", "kyo": "きょ",
	"sha": "しゃ", "shu": "しゅ", "sho": "しょ",
	"sya": "しゃ", "syu": "しゅ", "syo": "しょ",
	"cha": "ちゃ", "chu": "ちゅ", "cho": "ちょ",
	"tya": "ちゃ", "tyu": "ちゅ", "tyo": "ちょ",
	"nya": "にゃ", "nyu": "にゅ", "nyo": "にょ",
	"hya": "ひゃ", "hyu": "ひゅ", "hyo": "ひょ",
	"mya": "みゃ", "myu": "みゅ", "myo": "みょ",
	"rya": "りゃ", "ryu": "りゅ", "ryo": "りょ",
	"gya": "ぎゃ", "gyu": "ぎゅ", "gyo": "ぎょ",
	"ja": "じゃ", "ju": "じゅ", "jo": "じょ",
	"jya": "じゃ", "jyu": "じゅ", "jyo": "じょ",
	"zya": "じゃ", "zyu": "じゅ", "zyo": "じょ",
	"bya": "びゃ", "byu": "びゅ", "byo": "びょ",
	"pya": "ぴゃ", "pyu": "ぴゅ", "pyo": "ぴょ",

	// Hepburn writes a sokuon before ch as "t", not "c".
	"tcha": "っちゃ", "tchi": "っち", "tchu": "っちゅ", "tcho": "っちょ",

	// Small kana, either x- or l-prefixed.
	"xa": "ぁ", "xi": "ぃ", "xu": "ぅ", "xe": "ぇ", "xo": "ぉ",
	"la": "ぁ", "li": "ぃ", "lu": "ぅ", "le": "ぇ", "lo": "ぉ",
	"xya": "ゃ", "xyu": "ゅ", "xyo": "ょ",
	"lya": "ゃ", "lyu": "ゅ", "lyo": "ょ",
	"xtu": "っ", "ltu": "っ", "xtsu": "っ", "ltsu": "っ",

	"-": "ー",
}

// RomajiToHiragana converts Latin romanization to hiragana using
// longest-match substitution. Characters with no romanization mapping pass
// through unchanged. A doubled consonant produces the sokuon っ and a bare
// "n" before a consonant (or at the end of input) produces ん via the
// single-letter table entry.
func RomajiToHiragana(text string) string {
	runes := []rune(text)
	var b strings.Builder
	for i := 0; i < len(runes); {
		lo := unicode.ToLower(runes[i])

		// Doubled consonant marks a sokuon, except n which is moraic.
		if i+1 < len(runes) && lo == unicode.ToLower(runes[i+1]) &&
			lo != 'n' && isRomajiConsonant(lo) {
			b.WriteRune('っ')
			i++
			continue
		}

		matched := false
		for l := maxRomajiChunk; l >= 1; l-- {
			if i+l > len(runes) {
				continue
			}
			chunk := strings.ToLower(string(runes[i : i+l]))
			if kana, ok := romajiKana[chunk]; ok {
				b.WriteString(kana)
				i += l
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

func isRomajiConsonant(r rune) bool {
	if r < 'a' || r > 'z' {
		return false
	}
	switch r {
	case 'a', 'i', 'u', 'e', 'o':
		return false
	}
	return true
}

const (
	katakanaFirst = 'ァ'  // U+30A1
	katakanaLast  = 'ヶ'  // U+30F6
	kanaBlockGap  = 0x60 // distance between the katakana and hiragana blocks
)

// KatakanaToHiragana shifts every rune in the katakana block to the
// corresponding hiragana codepoint. All other runes, the long-vowel mark ー
// included, pass through unchanged. The transform is idempotent.
func KatakanaToHiragana(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= katakanaFirst && r <= katakanaLast {
			r -= kanaBlockGap
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize aligns arbitrary user input onto the hiragana alphabet the index
// keys use: half-width katakana are folded to full width, romaji is converted
// to hiragana, then katakana is shifted to hiragana.
func Normalize(text string) string {
	return KatakanaToHiragana(RomajiToHiragana(width.Fold.String(text)))
}
