package temporal

import (
	"strconv"

	"batakh/internal/core/normalize"
)

// Fractional-hour idioms resolve to exact second counts:
//
//	आधा मिनट          30
//	आधा [घंटा]        1800
//	डेढ़ [घंटा]        5400
//	ढाई घंटे          9000
//	साढ़े N घंटे       N*3600 + 1800
//	सवा [N] घंटे      N*3600 + 900 (N defaults to 1)
//	पौने N घंटे       N*3600 - 900
//
// Trigger words are mutually exclusive, so ordering only matters for the
// half-minute form, which must be checked before bare आधा to stay reachable.
// The resolver runs before the plain numeric-duration pattern because a
// fractional phrase normalizes its cardinal ("तीन" -> "3") and would
// otherwise spuriously match "<N> <unit>" with the wrong semantics.
func (p *Parser) resolveFraction(text string) (int64, bool) {
	fr := p.pack.Fractions

	if p.re.halfMinute.MatchString(text) {
		return 30, true
	}
	if normalize.ContainsWord(text, fr.Half) {
		return 1800, true
	}
	if normalize.ContainsWord(text, fr.OneAndHalf) {
		return 5400, true
	}
	if p.re.twoAndHalf.MatchString(text) {
		return 9000, true
	}
	if m := p.re.plusHalf.FindStringSubmatch(text); m != nil {
		n, _ := strconv.ParseInt(m[1], 10, 64)
		return n*3600 + 1800, true
	}
	if m := p.re.plusQuarter.FindStringSubmatch(text); m != nil {
		n := int64(1)
		if m[1] != "" {
			n, _ = strconv.ParseInt(m[1], 10, 64)
		}
		return n*3600 + 900, true
	}
	if m := p.re.minusQuarter.FindStringSubmatch(text); m != nil {
		n, _ := strconv.ParseInt(m[1], 10, 64)
		return n*3600 - 900, true
	}
	return 0, false
}
