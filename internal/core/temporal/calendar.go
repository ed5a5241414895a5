package temporal

import (
	"strings"
	"time"

	"batakh/internal/core/normalize"
)

// extractDate resolves day-of-month / month-name / year expressions,
// optionally merged with a clock-time component. Dimension stays "time"; the
// grain distinguishes date-only from date+time. When day or month cannot be
// resolved, or the combination is not a real date, it delegates to the
// clock-time extractor on the same text instead of failing.
func (p *Parser) extractDate(text string, ref time.Time, origEnd int) *Entity {
	day, month := 0, 0
	year := ref.Year()

	// 1 day number via the date marker ("15 तारीख")
	if m := p.re.dateMarker.FindStringSubmatch(text); m != nil {
		day = atoi(m[1])
	}

	// 2 month name; a number directly before it that was not consumed as
	// day-of-month is the day ("25 दिसंबर")
	for _, mo := range p.pack.Months {
		if !normalize.ContainsWord(text, mo.Word) {
			continue
		}
		month = mo.Month
		if day == 0 {
			if m := p.re.dayMonth.FindStringSubmatch(text); m != nil {
				day = atoi(m[1])
				month = p.pack.MonthByWord[m[2]]
			}
		}
		break
	}

	// 3 "next month" overrides any month found so far
	if p.hasAny(text, p.pack.Keywords.NextMonth) {
		month = int(ref.Month()) + 1
		if month > 12 {
			month = 1
			year++
		}
	}

	// 4 day without month: assume the reference month, rolling forward when
	// the day has already passed
	if day != 0 && month == 0 {
		month = int(ref.Month())
		if day < ref.Day() {
			month++
			if month > 12 {
				month = 1
				year++
			}
		}
	}

	if day == 0 || month == 0 {
		return p.extractTime(text, ref, origEnd)
	}

	// 5 merge a clock-time component when one is present, else midnight
	hour, minute := 0, 0
	grain := GrainDay
	if r, ok := p.resolveClock(text, ref); ok {
		hour, minute = r.at.Hour(), r.at.Minute()
		grain = GrainMinute
	}

	// 6 construct and validate; time.Date normalizes overflow (Feb 31 ->
	// Mar 2), so a round-trip mismatch means the spoken date does not exist
	// and the clock-time reading wins instead
	at := time.Date(year, time.Month(month), day, hour, minute, 0, 0, ref.Location())
	if at.Day() != day || int(at.Month()) != month {
		return p.extractTime(text, ref, origEnd)
	}

	return &Entity{
		Body:  strings.TrimSpace(text),
		Start: 0,
		End:   origEnd,
		Dim:   DimTime,
		Value: NewTimeValue(at, grain),
	}
}
