package tools

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tartampluch/go-toolbox/internal/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TextStats summarizes a block of text.
type TextStats struct {
	Characters         int `json:"characters"`
	CharactersNoSpaces int `json:"characters_no_spaces"`
	Words              int `json:"words"`
	Sentences          int `json:"sentences"`
	Paragraphs         int `json:"paragraphs"`
	ReadingMinutes     int `json:"reading_minutes"`
}

var (
	sentenceEnd    = regexp.MustCompile(`[.!?]+(\s+|$)`)
	paragraphBreak = regexp.MustCompile(`\n[ \t\r]*\n`)
)

// CountText computes character, word, sentence and paragraph counts, plus
// the reading time at config.WordsPerMinute, rounded up.
//
// Sentences end at a run of '.', '!' or '?' followed by whitespace or the
// end of the text; trailing text without punctuation counts as one more
// sentence. Abbreviations are not recognized: "Mr. Smith left." counts
// two sentences. Decimal points ("3.14") do not end a sentence.
func CountText(s string) TextStats {
	st := TextStats{Characters: utf8.RuneCountInString(s)}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			st.CharactersNoSpaces++
		}
	}

	st.Words = len(strings.Fields(s))
	if st.Words == 0 {
		return st
	}

	st.Sentences = countNonBlank(sentenceEnd.Split(s, -1))
	st.Paragraphs = countNonBlank(paragraphBreak.Split(s, -1))
	st.ReadingMinutes = (st.Words + config.WordsPerMinute - 1) / config.WordsPerMinute
	return st
}

func countNonBlank(parts []string) int {
	n := 0
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

// ConvertCase rewrites s in one of the config.Case* modes.
func ConvertCase(s, mode string) (string, error) {
	switch mode {
	case config.CaseUpper:
		return cases.Upper(language.Und).String(s), nil
	case config.CaseLower:
		return cases.Lower(language.Und).String(s), nil
	case config.CaseTitle:
		return cases.Title(language.Und).String(s), nil
	case config.CaseSentence:
		return sentenceCase(s), nil
	case config.CaseCamel:
		return camelCase(splitWords(s)), nil
	case config.CaseSnake:
		return strings.Join(lowerAll(splitWords(s)), "_"), nil
	case config.CaseKebab:
		return strings.Join(lowerAll(splitWords(s)), "-"), nil
	case config.CaseToggle:
		return toggleCase(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCase, mode)
	}
}

// sentenceCase lowers everything, then upper-cases the first letter of the
// text and of every letter that follows a sentence terminator.
func sentenceCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	capNext := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r == '.' || r == '!' || r == '?':
			capNext = true
		case unicode.IsLetter(r) && capNext:
			r = unicode.ToUpper(r)
			capNext = false
		case !unicode.IsSpace(r):
			capNext = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// splitWords breaks s on every rune that is neither a letter nor a digit,
// and on lower-to-upper transitions ("helloWorld" -> hello, World).
func splitWords(s string) []string {
	var (
		words []string
		cur   []rune
		prev  rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	flush()
	return words
}

func lowerAll(words []string) []string {
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}

func camelCase(words []string) string {
	var b strings.Builder
	for i, w := range words {
		w = strings.ToLower(w)
		if i > 0 {
			r, size := utf8.DecodeRuneInString(w)
			w = string(unicode.ToUpper(r)) + w[size:]
		}
		b.WriteString(w)
	}
	return b.String()
}

func toggleCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}
