package temporal

import (
	"strconv"
	"strings"
	"time"

	"batakh/internal/core/normalize"
)

// MeridiemStrategy adjusts a 1-12 spoken hour when the speaker stated no
// explicit AM/PM marker. hint is the time-of-day period found in the text
// ("morning", "afternoon", "evening", "night", "midnight") or "" when absent.
type MeridiemStrategy func(hour int, hint string, ref time.Time) int

// DefaultMeridiem is the stock AM/PM inference: evening/night push an
// hour below 12 into the afternoon, an afternoon hint pushes hours up to 6,
// morning leaves the hour alone, and with no hint at all the hour is biased
// toward "later today" whenever the reference clock is already past noon.
// That last branch is a heuristic with no principled derivation; it lives
// behind this type so it can be swapped without touching the extractor.
// A midnight hint intentionally falls through to the no-hint branch.
func DefaultMeridiem(hour int, hint string, ref time.Time) int {
	if hour > 12 {
		return hour
	}
	switch hint {
	case "evening", "night":
		if hour < 12 {
			hour += 12
		}
	case "morning":
	case "afternoon":
		if hour <= 6 {
			hour += 12
		}
	default:
		if ref.Hour() >= 12 && hour <= 11 {
			hour += 12
		}
	}
	return hour
}

// clockReading is the intermediate outcome of resolveClock
type clockReading struct {
	at        time.Time
	dayOffset int
}

// resolveClock resolves the clock-time reading of text against ref, or
// reports no hour found. The steps run in fixed order and each field is
// decided independently: day offset, time-of-day hint, hour/minute by
// pattern priority, meridiem, candidate construction, past-rollover.
func (p *Parser) resolveClock(text string, ref time.Time) (clockReading, bool) {
	var zero clockReading

	// 1 day offset: relative-day words first, then weekday names
	dayOffset := 0
	for _, rd := range p.pack.RelativeDays {
		if normalize.ContainsWord(text, rd.Word) {
			dayOffset = rd.Offset
			break
		}
	}
	for _, wd := range p.pack.Weekdays {
		if !normalize.ContainsWord(text, wd.Word) {
			continue
		}
		// pack uses Monday=0; Go uses Sunday=0
		refWeekday := (int(ref.Weekday()) + 6) % 7
		ahead := wd.Day - refWeekday
		if ahead <= 0 {
			ahead += 7
		}
		if ahead < 7 && p.hasAny(text, p.pack.Keywords.Next) {
			ahead += 7
		}
		dayOffset = ahead
		break
	}

	// 2 time-of-day hint, for meridiem disambiguation only
	hint := ""
	for _, dp := range p.pack.DayParts {
		if normalize.ContainsWord(text, dp.Word) {
			hint = dp.Period
			break
		}
	}

	// 3 hour and minute, fixed pattern priority
	hour, minute := -1, 0
	explicitMeridiem := false

	if m := p.re.oclockMinutes.FindStringSubmatch(text); m != nil {
		hour = atoi(m[1])
		minute = atoi(m[2])
	}
	if hour < 0 {
		if m := p.re.joinerMinutes.FindStringSubmatch(text); m != nil {
			hour = atoi(m[1])
			minute = atoi(m[2])
		}
	}
	if hour < 0 {
		if m := p.re.hhmm.FindStringSubmatch(text); m != nil {
			hour = atoi(m[1])
			minute = atoi(m[2])
		}
	}
	if hour < 0 {
		for i, mer := range p.pack.Meridiems {
			if !strings.Contains(text, mer.Word) {
				continue
			}
			m := p.re.meridiems[i].FindStringSubmatch(text)
			if m == nil {
				continue
			}
			hour = atoi(m[1])
			explicitMeridiem = true
			if mer.Value == "PM" && hour < 12 {
				hour += 12
			} else if mer.Value == "AM" && hour == 12 {
				hour = 0
			}
			break
		}
	}
	if hour < 0 {
		if m := p.re.bareOClock.FindStringSubmatch(text); m != nil {
			hour = atoi(m[1])
		}
	}
	if hour < 0 {
		return zero, false
	}

	// 4 meridiem inference only when not stated
	if !explicitMeridiem {
		hour = p.meridiem(hour, hint, ref)
	}

	// 5 candidate instant: reference with the resolved wall time, plus offset
	at := time.Date(ref.Year(), ref.Month(), ref.Day(), hour%24, minute, 0, 0, ref.Location())
	at = at.AddDate(0, 0, dayOffset)

	// 6 past-rollover: a bare time already behind the clock means tomorrow
	if at.Before(ref) && dayOffset == 0 {
		at = at.AddDate(0, 0, 1)
	}

	return clockReading{at: at, dayOffset: dayOffset}, true
}

// extractTime wraps resolveClock into a minute-grain entity spanning the
// whole input
func (p *Parser) extractTime(text string, ref time.Time, origEnd int) *Entity {
	r, ok := p.resolveClock(text, ref)
	if !ok {
		return nil
	}
	return &Entity{
		Body:  strings.TrimSpace(text),
		Start: 0,
		End:   origEnd,
		Dim:   DimTime,
		Value: NewTimeValue(r.at, GrainMinute),
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
