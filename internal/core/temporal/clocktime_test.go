package temporal

import (
	"testing"
	"time"
)

func timeValue(t *testing.T, got []Entity) TimeValue {
	t.Helper()
	if len(got) != 1 {
		t.Fatalf("expected 1 entity, got %d: %+v", len(got), got)
	}
	if got[0].Dim != DimTime {
		t.Fatalf("expected time dim, got %q", got[0].Dim)
	}
	tv, ok := got[0].Value.(TimeValue)
	if !ok {
		t.Fatalf("value is %T, want TimeValue", got[0].Value)
	}
	if tv.Type != "value" {
		t.Errorf("type = %q, want value", tv.Type)
	}
	return tv
}

func TestParse_ClockTimes(t *testing.T) {
	p := newTestParser(t)
	ref := refClock() // Mon 2024-01-15 08:00 IST

	tests := []struct {
		name string
		in   string
		want string
	}{
		// 05:00 has already passed at 08:00, so the alarm rolls to tomorrow
		{"bare oclock rolls past ref", "पांच बजे अलार्म", "2024-01-16T05:00:00.000+0530"},
		{"morning hint keeps am", "सुबह सात बजे", "2024-01-16T07:00:00.000+0530"},
		{"evening hint", "शाम छह बजे अलार्म", "2024-01-15T18:00:00.000+0530"},
		{"night hint", "रात नौ बजे", "2024-01-15T21:00:00.000+0530"},
		{"afternoon hint lifts small hour", "दोपहर तीन बजे", "2024-01-15T15:00:00.000+0530"},
		{"oclock plus minutes", "शाम छह बजे तीस मिनट", "2024-01-15T18:30:00.000+0530"},
		{"joiner minutes", "शाम छह बजकर तीस मिनट", "2024-01-15T18:30:00.000+0530"},
		{"colon time", "शाम 6:30 बजे", "2024-01-15T18:30:00.000+0530"},
		{"explicit am", "दस एएम", "2024-01-15T10:00:00.000+0530"},
		{"explicit pm", "दो पीएम", "2024-01-15T14:00:00.000+0530"},
		{"spaced meridiem", "दस ए एम", "2024-01-15T10:00:00.000+0530"},
		{"tomorrow evening", "कल शाम पांच बजे का अलार्म", "2024-01-16T17:00:00.000+0530"},
		{"day after tomorrow", "परसों सुबह आठ बजे", "2024-01-17T08:00:00.000+0530"},
		{"weekday ahead", "शुक्रवार पांच बजे", "2024-01-19T05:00:00.000+0530"},
		{"same weekday means next week", "सोमवार दस बजे", "2024-01-22T10:00:00.000+0530"},
		{"next qualifier adds a week", "अगले शुक्रवार पांच बजे", "2024-01-26T05:00:00.000+0530"},
		{"transliterated next monday", "नेक्स्ट मंडे दस एएम", "2024-01-22T10:00:00.000+0530"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tv := timeValue(t, p.Parse(tt.in, ref))
			if tv.Value != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.in, tv.Value, tt.want)
			}
			if tv.Grain != GrainMinute {
				t.Errorf("grain = %q, want minute", tv.Grain)
			}
		})
	}
}

func TestParse_NoHintBiasAfterNoon(t *testing.T) {
	p := newTestParser(t)
	ref := time.Date(2024, 1, 15, 15, 0, 0, 0, IST)

	tv := timeValue(t, p.Parse("चार बजे अलार्म", ref))
	if want := "2024-01-15T16:00:00.000+0530"; tv.Value != want {
		t.Errorf("got %s, want %s", tv.Value, want)
	}
}

func TestDefaultMeridiem(t *testing.T) {
	morning := time.Date(2024, 1, 15, 8, 0, 0, 0, IST)
	evening := time.Date(2024, 1, 15, 19, 0, 0, 0, IST)

	tests := []struct {
		name string
		hour int
		hint string
		ref  time.Time
		want int
	}{
		{"24h hour untouched", 17, "", morning, 17},
		{"evening lifts", 5, "evening", morning, 17},
		{"night lifts", 9, "night", morning, 21},
		{"evening keeps 12", 12, "evening", morning, 12},
		{"morning keeps", 7, "morning", evening, 7},
		{"afternoon lifts small", 3, "afternoon", morning, 15},
		{"afternoon keeps 7", 7, "afternoon", morning, 7},
		{"no hint before noon", 5, "", morning, 5},
		{"no hint after noon", 5, "", evening, 17},
		{"no hint after noon keeps 12", 12, "", evening, 12},
		{"midnight hint uses fallback", 11, "midnight", evening, 23},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultMeridiem(tt.hour, tt.hint, tt.ref); got != tt.want {
				t.Errorf("DefaultMeridiem(%d, %q) = %d, want %d", tt.hour, tt.hint, got, tt.want)
			}
		})
	}
}

func TestWithMeridiemStrategy(t *testing.T) {
	identity := func(hour int, _ string, _ time.Time) int { return hour }
	p := New(newTestParser(t).pack, WithMeridiemStrategy(identity))

	// evening hint ignored by the identity strategy; 06:00 is behind the
	// reference clock so the past-rollover still applies
	tv := timeValue(t, p.Parse("शाम छह बजे", refClock()))
	if want := "2024-01-16T06:00:00.000+0530"; tv.Value != want {
		t.Errorf("got %s, want %s", tv.Value, want)
	}
}

func TestWithLocation(t *testing.T) {
	utc := time.UTC
	p := New(newTestParser(t).pack, WithLocation(utc))
	if p.Location() != utc {
		t.Fatalf("location not applied")
	}
}
