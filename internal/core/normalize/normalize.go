// Package normalize provides the deterministic text normalizer used by the
// temporal extractors.
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFC canonical composition
// 3 Devanagari digit to ASCII digit substitution
// 4 Number word to digit substitution, longest word first
// 5 Spelling variant unification (one canonical spelling per concept)
// 6 Collapse whitespace to single spaces and trim
//
// The order is load-bearing: digit conversion must precede the duration
// patterns, and the joiner unification (बजकर -> बजे) must land before the
// clock-time extractor looks for "N बजे M मिनट".
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"batakh/internal/core/langpack"
)

// Normalizer is immutable after construction and safe for concurrent use
type Normalizer struct {
	digits   *strings.Replacer
	numbers  []langpack.Subst
	variants []langpack.Subst
}

// New builds a Normalizer from the compiled pack tables
func New(p *langpack.Pack) *Normalizer {
	pairs := make([]string, 0, len(p.Digits)*2)
	for from, to := range p.Digits {
		pairs = append(pairs, from, to)
	}
	return &Normalizer{
		digits:   strings.NewReplacer(pairs...),
		numbers:  p.Numbers,
		variants: p.Variants,
	}
}

// Normalize returns the normalized form of s following the pipeline above.
// Total: garbled input yields a best-effort string, never an error.
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2 canonical composition
	s = norm.NFC.String(s)

	// 3 script-native digits
	s = n.digits.Replace(s)

	// 4 number words, pre-sorted longest first in the pack
	for _, sub := range n.numbers {
		s = SubstituteWord(s, sub.From, sub.To)
	}

	// 5 spelling variants
	for _, sub := range n.variants {
		s = SubstituteWord(s, sub.From, sub.To)
	}

	// 6 collapse whitespace and trim
	return collapseSpaces(s)
}

// SubstituteWord replaces whole-word occurrences of from with to.
// Go's regexp \b only understands ASCII word characters, so boundaries are
// checked by hand: a neighbor rune that is a letter or digit blocks the match.
func SubstituteWord(s, from, to string) string {
	if from == "" || !strings.Contains(s, from) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		j := strings.Index(s[i:], from)
		if j < 0 {
			b.WriteString(s[i:])
			break
		}
		j += i
		end := j + len(from)
		if boundedAt(s, j, end) {
			b.WriteString(s[i:j])
			b.WriteString(to)
			i = end
			continue
		}
		// not a whole word; emit up to and including the first rune of the
		// match so overlapping occurrences are still considered
		_, size := utf8.DecodeRuneInString(s[j:])
		b.WriteString(s[i : j+size])
		i = j + size
	}
	return b.String()
}

// boundedAt reports whether s[start:end] sits on word boundaries
func boundedAt(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsWord reports whether word occurs in s on word boundaries
func ContainsWord(s, word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(s); {
		j := strings.Index(s[i:], word)
		if j < 0 {
			return false
		}
		j += i
		if boundedAt(s, j, j+len(word)) {
			return true
		}
		_, size := utf8.DecodeRuneInString(s[j:])
		i = j + size
	}
	return false
}

// collapseSpaces converts whitespace runs to a single ASCII space and trims
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
