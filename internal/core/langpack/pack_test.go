package langpack

import (
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestLoad(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("load pack: %v", err)
	}
	if p.Version != 1 {
		t.Fatalf("unexpected pack version %d", p.Version)
	}
	if len(p.Digits) != 10 {
		t.Fatalf("expected 10 digit mappings, got %d", len(p.Digits))
	}
	if len(p.Numbers) == 0 || len(p.Months) == 0 || len(p.Weekdays) == 0 {
		t.Fatalf("pack tables incomplete: %d numbers %d months %d weekdays",
			len(p.Numbers), len(p.Months), len(p.Weekdays))
	}
}

func TestLoad_NumbersSortedLongestFirst(t *testing.T) {
	p := MustLoad()
	for i := 1; i < len(p.Numbers); i++ {
		if len(p.Numbers[i-1].From) < len(p.Numbers[i].From) {
			t.Fatalf("numbers not longest-first at %d: %q before %q",
				i, p.Numbers[i-1].From, p.Numbers[i].From)
		}
	}
}

func TestLoad_UnitMultipliers(t *testing.T) {
	p := MustLoad()
	want := map[string]int64{
		"सेकंड": 1,
		"मिनट":  60,
		"घंटा":  3600,
		"घंटे":  3600,
		"दिन":   86400,
	}
	for unit, mult := range want {
		got, ok := p.Units[norm.NFC.String(unit)]
		if !ok {
			t.Errorf("unit %q missing", unit)
			continue
		}
		if got != mult {
			t.Errorf("unit %q: got %d want %d", unit, got, mult)
		}
	}
}

func TestLoad_KeysAreNFC(t *testing.T) {
	p := MustLoad()
	for _, s := range p.Numbers {
		if s.From != norm.NFC.String(s.From) {
			t.Errorf("number key %q not NFC", s.From)
		}
	}
	for _, m := range p.Months {
		if m.Word != norm.NFC.String(m.Word) {
			t.Errorf("month key %q not NFC", m.Word)
		}
	}
	if p.Fractions.OneAndHalf != norm.NFC.String(p.Fractions.OneAndHalf) {
		t.Errorf("fraction key %q not NFC", p.Fractions.OneAndHalf)
	}
}

func TestLoad_WeekdaysCoverBothScripts(t *testing.T) {
	p := MustLoad()
	seen := make(map[int]int)
	for _, w := range p.Weekdays {
		seen[w.Day]++
	}
	for d := 0; d <= 6; d++ {
		// every weekday needs at least a native and a transliterated form
		if seen[d] < 2 {
			t.Errorf("weekday %d has %d spellings, want >= 2", d, seen[d])
		}
	}
}
