package temporal

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// extractDuration recognizes fractional idioms first, then the plain
// "<N> <unit> [का]" pattern. Fractional matches span the whole input (they
// are not span-narrowed); plain matches narrow the span to the matched
// substring, in rune offsets. Returns nil on no match, never an error.
func (p *Parser) extractDuration(text string, origEnd int) *Entity {
	if secs, ok := p.resolveFraction(text); ok {
		return &Entity{
			Body:  strings.TrimSpace(text),
			Start: 0,
			End:   origEnd,
			Dim:   DimDuration,
			Value: NewDurationValue(secs),
		}
	}

	loc := p.re.duration.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil
	}

	value, err := strconv.ParseInt(text[loc[2]:loc[3]], 10, 64)
	if err != nil {
		return nil
	}
	unit := text[loc[4]:loc[5]]
	mult, ok := p.pack.Units[unit]
	if !ok {
		return nil
	}

	start := utf8.RuneCountInString(text[:loc[0]])
	body := text[loc[0]:loc[1]]
	return &Entity{
		Body:  body,
		Start: start,
		End:   start + utf8.RuneCountInString(body),
		Dim:   DimDuration,
		Value: NewDurationValue(value * mult),
	}
}
