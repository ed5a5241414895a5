package temporal

import (
	"testing"
	"time"
)

func TestParse_CalendarDates(t *testing.T) {
	p := newTestParser(t)
	ref := time.Date(2024, 1, 10, 8, 0, 0, 0, IST)

	tests := []struct {
		name      string
		in        string
		want      string
		wantGrain Grain
	}{
		{"date marker", "पंद्रह तारीख को मीटिंग", "2024-01-15T00:00:00.000+0530", GrainDay},
		{"day and month", "पच्चीस दिसंबर को पार्टी", "2024-12-25T00:00:00.000+0530", GrainDay},
		{"month spelling variant", "पच्चीस दिसम्बर", "2024-12-25T00:00:00.000+0530", GrainDay},
		{"next month with day", "अगले महीने दस तारीख को", "2024-02-10T00:00:00.000+0530", GrainDay},
		{"date with clock time", "पच्चीस दिसंबर शाम 5:30", "2024-12-25T17:30:00.000+0530", GrainMinute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tv := timeValue(t, p.Parse(tt.in, ref))
			if tv.Value != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.in, tv.Value, tt.want)
			}
			if tv.Grain != tt.wantGrain {
				t.Errorf("grain = %q, want %q", tv.Grain, tt.wantGrain)
			}
		})
	}
}

func TestParse_DayAlreadyPassedRollsMonth(t *testing.T) {
	p := newTestParser(t)
	ref := time.Date(2024, 1, 20, 8, 0, 0, 0, IST)

	tv := timeValue(t, p.Parse("पंद्रह तारीख", ref))
	if want := "2024-02-15T00:00:00.000+0530"; tv.Value != want {
		t.Errorf("got %s, want %s", tv.Value, want)
	}
}

func TestParse_DecemberRollsYear(t *testing.T) {
	p := newTestParser(t)
	ref := time.Date(2024, 12, 20, 8, 0, 0, 0, IST)

	tv := timeValue(t, p.Parse("पंद्रह तारीख", ref))
	if want := "2025-01-15T00:00:00.000+0530"; tv.Value != want {
		t.Errorf("got %s, want %s", tv.Value, want)
	}
}

func TestParse_NextMonthFromDecember(t *testing.T) {
	p := newTestParser(t)
	ref := time.Date(2024, 12, 20, 8, 0, 0, 0, IST)

	tv := timeValue(t, p.Parse("अगले महीने पांच तारीख", ref))
	if want := "2025-01-05T00:00:00.000+0530"; tv.Value != want {
		t.Errorf("got %s, want %s", tv.Value, want)
	}
}

func TestParse_ImpossibleDateYieldsNothing(t *testing.T) {
	p := newTestParser(t)

	// Feb 31 does not exist and there is no clock-time reading to fall
	// back on, so the parse resolves to nothing
	got := p.Parse("३१ फरवरी", refClock())
	if len(got) != 0 {
		t.Fatalf("expected no entities, got %+v", got)
	}
}

func TestParse_MonthWithoutDayYieldsNothing(t *testing.T) {
	p := newTestParser(t)

	got := p.Parse("दिसंबर में", refClock())
	if len(got) != 0 {
		t.Fatalf("expected no entities, got %+v", got)
	}
}
