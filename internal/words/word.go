package words

import "strings"

// PhonemeType is the sound category of a grapheme.
type PhonemeType string

const (
	Consonant   PhonemeType = "consonant"
	ShortVowel  PhonemeType = "short-vowel"
	LongVowel   PhonemeType = "long-vowel"
	Digraph     PhonemeType = "digraph"
	Blend       PhonemeType = "blend"
	SilentE     PhonemeType = "silent-e"
	RControlled PhonemeType = "r-controlled"
	Diphthong   PhonemeType = "diphthong"
)

// AllPhonemeTypes returns every phoneme type in display order.
func AllPhonemeTypes() []PhonemeType {
	return []PhonemeType{Consonant, ShortVowel, LongVowel, Digraph, Blend, SilentE, RControlled, Diphthong}
}

// Valid reports whether t is one of the known phoneme types.
func (t PhonemeType) Valid() bool {
	for _, v := range AllPhonemeTypes() {
		if t == v {
			return true
		}
	}
	return false
}

// IsVowel reports whether the phoneme is a vowel sound.
func (t PhonemeType) IsVowel() bool {
	switch t {
	case ShortVowel, LongVowel, RControlled, Diphthong:
		return true
	}
	return false
}

// Pattern is the structural tag of a word.
type Pattern string

const (
	PatternCVC     Pattern = "CVC"
	PatternCVCe    Pattern = "CVCe"
	PatternBlend   Pattern = "blend"
	PatternDigraph Pattern = "digraph"
	PatternOther   Pattern = "other"
)

// Word is a single entry of the word bank. Graphemes and Types correspond
// positionally, in left-to-right pronunciation order.
type Word struct {
	ID        string        `json:"id"`
	Text      string        `json:"word"`
	Graphemes []string      `json:"graphemes"`
	Types     []PhonemeType `json:"types"`
	Pattern   Pattern       `json:"pattern"`
	Group     string        `json:"group"`
	Level     int           `json:"level"`
	Emoji     string        `json:"emoji"`
}

// Len returns the number of graphemes.
func (w Word) Len() int {
	return len(w.Graphemes)
}

// Letters splits the display text into single letters.
func (w Word) Letters() []string {
	return strings.Split(w.Text, "")
}

// IsZero reports whether w is the zero Word.
func (w Word) IsZero() bool {
	return w.ID == ""
}

// Group holds display metadata for a word group.
type Group struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}
