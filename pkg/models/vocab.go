package models

import (
	"unicode"
)

// Vocab is a vocabulary entry that study items draw their prompts from
type Vocab struct {
	ID                string   `json:"id" db:"id"`
	Lang              string   `json:"lang" db:"lang"`
	Writing           string   `json:"writing" db:"writing"`
	Style             string   `json:"style" db:"style"`
	BannedParts       []Part   `json:"bannedParts" db:"-"`
	ContainedVocabIDs []string `json:"containedVocabIds" db:"-"`
}

// Writing style values used by Chinese vocabs
const (
	StyleSimplified  = "simp"
	StyleTraditional = "trad"
	StyleBoth        = "both"
	StyleNone        = "none"
)

var fillers = map[rune]bool{
	'~': true, '-': true, '～': true, '.': true, '。': true,
	',': true, '，': true, '、': true, '・': true,
}

// IsChinese reports whether the vocab is Chinese
func (v Vocab) IsChinese() bool {
	return v.Lang == "zh"
}

// IsJapanese reports whether the vocab is Japanese
func (v Vocab) IsJapanese() bool {
	return v.Lang == "ja"
}

// IsBanned reports whether part is banned for this vocab
func (v Vocab) IsBanned(part Part) bool {
	for _, p := range v.BannedParts {
		if p == part {
			return true
		}
	}
	return false
}

// BanPart returns a copy with part added to the banned parts
func (v Vocab) BanPart(part Part) Vocab {
	if v.IsBanned(part) {
		return v
	}
	banned := make([]Part, 0, len(v.BannedParts)+1)
	banned = append(banned, v.BannedParts...)
	v.BannedParts = append(banned, part)
	return v
}

// UnbanPart returns a copy with part removed from the banned parts
func (v Vocab) UnbanPart(part Part) Vocab {
	banned := make([]Part, 0, len(v.BannedParts))
	for _, p := range v.BannedParts {
		if p != part {
			banned = append(banned, p)
		}
	}
	v.BannedParts = banned
	return v
}

// Characters returns each glyph of the writing
func (v Vocab) Characters() []string {
	chars := make([]string, 0, len(v.Writing))
	for _, r := range v.Writing {
		chars = append(chars, string(r))
	}
	return chars
}

// CharactersWithoutFillers returns the glyphs that need stroke data.
// Punctuation fillers never do; kana doesn't when kana study is off.
func (v Vocab) CharactersWithoutFillers(studyKana bool) []string {
	chars := make([]string, 0, len(v.Writing))
	for _, r := range v.Writing {
		if fillers[r] {
			continue
		}
		if v.IsJapanese() && !studyKana && isKana(r) {
			continue
		}
		chars = append(chars, string(r))
	}
	return chars
}

// IsKana reports whether every glyph of s is hiragana or katakana
func IsKana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isKana(r) {
			return false
		}
	}
	return true
}

func isKana(r rune) bool {
	return unicode.In(r, unicode.Hiragana, unicode.Katakana) || r == 'ー'
}
