// Package langpack loads and compiles the Hindi lookup tables from the embedded
// hindi.json. It prepares substitution lists and keyword sets for the normalizer
// and the temporal extractors.
//
// All keys are NFC-normalized at load time so nukta forms (ढ़, ड़, ज़) compare
// equal regardless of how the source text encodes them, and substitution lists
// are sorted longest-first once here so short number words never match inside
// longer ones at scan time.
package langpack

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"
)

//go:embed hindi.json
var embedded []byte

// Subst is a single word-for-word substitution
type Subst struct {
	From string
	To   string
}

// DayPart is a time-of-day hint word with its default hour
type DayPart struct {
	Word   string `json:"word"`
	Period string `json:"period"`
	Hour   int    `json:"hour"`
}

// Meridiem is an explicit AM/PM marker as it comes out of ASR
type Meridiem struct {
	Word  string `json:"word"`
	Value string `json:"value"` // "AM" or "PM"
}

// Weekday maps a spoken day name to a weekday index, Monday=0
type Weekday struct {
	Word string `json:"word"`
	Day  int    `json:"day"`
}

// RelativeDay maps a relative-day word to a day offset from the reference clock
type RelativeDay struct {
	Word   string `json:"word"`
	Offset int    `json:"offset"`
}

// MonthName maps a spoken month name to its 1-based month number
type MonthName struct {
	Word  string
	Month int
}

// Fractions holds the idiomatic fractional-duration trigger words
type Fractions struct {
	Half         string `json:"half"`
	OneAndHalf   string `json:"one_and_half"`
	TwoAndHalf   string `json:"two_and_half"`
	PlusHalf     string `json:"plus_half"`
	PlusQuarter  string `json:"plus_quarter"`
	MinusQuarter string `json:"minus_quarter"`
}

// Keywords anchors intent classification in the dispatcher
type Keywords struct {
	Timer      []string `json:"timer"`
	Alarm      []string `json:"alarm"`
	OClock     string   `json:"oclock"`
	Joiner     string   `json:"joiner"`
	MinuteUnit string   `json:"minute_unit"`
	Genitive   string   `json:"genitive"`
	Next       []string `json:"next"`
	NextMonth  []string `json:"next_month"`
	DateMarker string   `json:"date_marker"`
}

type rawPack struct {
	Version      int               `json:"version"`
	Meta         map[string]string `json:"meta"`
	Digits       map[string]string `json:"digits"`
	Numbers      map[string]string `json:"numbers"`
	Variants     map[string]string `json:"variants"`
	Units        map[string]int64  `json:"units"`
	HourUnits    []string          `json:"hour_units"`
	DayParts     []DayPart         `json:"day_parts"`
	Meridiems    []Meridiem        `json:"meridiems"`
	Weekdays     []Weekday         `json:"weekdays"`
	RelativeDays []RelativeDay     `json:"relative_days"`
	Months       map[string]int    `json:"months"`
	Fractions    Fractions         `json:"fractions"`
	Keywords     Keywords          `json:"keywords"`
}

// Pack is the compiled, immutable lookup table set. Loaded once at startup;
// no write path exists afterwards, so concurrent reads need no coordination.
type Pack struct {
	Version int
	Meta    map[string]string

	Digits   map[string]string
	Numbers  []Subst // longest-first
	Variants []Subst // longest-first

	Units     map[string]int64
	UnitWords []string // longest-first, for regex alternation
	HourUnits []string

	DayParts     []DayPart
	Meridiems    []Meridiem
	Weekdays     []Weekday
	RelativeDays []RelativeDay
	Months       []MonthName // longest-first
	MonthByWord  map[string]int

	Fractions Fractions
	Keywords  Keywords
}

// nfc folds a table key into canonical composition form
func nfc(s string) string { return norm.NFC.String(s) }

func nfcAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = nfc(s)
	}
	return out
}

// substList flattens a map into a substitution list sorted longest key first
func substList(m map[string]string) []Subst {
	out := make([]Subst, 0, len(m))
	for k, v := range m {
		out = append(out, Subst{From: nfc(k), To: nfc(v)})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].From) != len(out[j].From) {
			return len(out[i].From) > len(out[j].From)
		}
		return out[i].From < out[j].From
	})
	return out
}

// Load parses and compiles the embedded pack
func Load() (*Pack, error) {
	var raw rawPack
	if err := json.Unmarshal(embedded, &raw); err != nil {
		return nil, fmt.Errorf("langpack: parse embedded pack: %w", err)
	}
	if raw.Version != 1 {
		return nil, fmt.Errorf("langpack: unsupported pack version %d", raw.Version)
	}

	p := &Pack{
		Version:  raw.Version,
		Meta:     raw.Meta,
		Digits:   make(map[string]string, len(raw.Digits)),
		Numbers:  substList(raw.Numbers),
		Variants: substList(raw.Variants),

		Units:       make(map[string]int64, len(raw.Units)),
		HourUnits:   nfcAll(raw.HourUnits),
		Fractions:   raw.Fractions,
		MonthByWord: make(map[string]int, len(raw.Months)),
	}

	for k, v := range raw.Digits {
		p.Digits[nfc(k)] = v
	}
	for k, v := range raw.Units {
		w := nfc(k)
		p.Units[w] = v
		p.UnitWords = append(p.UnitWords, w)
	}
	sort.Slice(p.UnitWords, func(i, j int) bool {
		if len(p.UnitWords[i]) != len(p.UnitWords[j]) {
			return len(p.UnitWords[i]) > len(p.UnitWords[j])
		}
		return p.UnitWords[i] < p.UnitWords[j]
	})

	p.DayParts = make([]DayPart, len(raw.DayParts))
	for i, dp := range raw.DayParts {
		dp.Word = nfc(dp.Word)
		p.DayParts[i] = dp
	}
	p.Meridiems = make([]Meridiem, len(raw.Meridiems))
	for i, m := range raw.Meridiems {
		m.Word = nfc(m.Word)
		p.Meridiems[i] = m
	}
	p.Weekdays = make([]Weekday, len(raw.Weekdays))
	for i, w := range raw.Weekdays {
		if w.Day < 0 || w.Day > 6 {
			return nil, fmt.Errorf("langpack: weekday %q out of range: %d", w.Word, w.Day)
		}
		w.Word = nfc(w.Word)
		p.Weekdays[i] = w
	}
	p.RelativeDays = make([]RelativeDay, len(raw.RelativeDays))
	for i, rd := range raw.RelativeDays {
		rd.Word = nfc(rd.Word)
		p.RelativeDays[i] = rd
	}

	for k, v := range raw.Months {
		if v < 1 || v > 12 {
			return nil, fmt.Errorf("langpack: month %q out of range: %d", k, v)
		}
		w := nfc(k)
		p.Months = append(p.Months, MonthName{Word: w, Month: v})
		p.MonthByWord[w] = v
	}
	sort.Slice(p.Months, func(i, j int) bool {
		if len(p.Months[i].Word) != len(p.Months[j].Word) {
			return len(p.Months[i].Word) > len(p.Months[j].Word)
		}
		return p.Months[i].Word < p.Months[j].Word
	})

	p.Fractions.Half = nfc(p.Fractions.Half)
	p.Fractions.OneAndHalf = nfc(p.Fractions.OneAndHalf)
	p.Fractions.TwoAndHalf = nfc(p.Fractions.TwoAndHalf)
	p.Fractions.PlusHalf = nfc(p.Fractions.PlusHalf)
	p.Fractions.PlusQuarter = nfc(p.Fractions.PlusQuarter)
	p.Fractions.MinusQuarter = nfc(p.Fractions.MinusQuarter)

	kw := raw.Keywords
	kw.Timer = nfcAll(kw.Timer)
	kw.Alarm = nfcAll(kw.Alarm)
	kw.OClock = nfc(kw.OClock)
	kw.Joiner = nfc(kw.Joiner)
	kw.MinuteUnit = nfc(kw.MinuteUnit)
	kw.Genitive = nfc(kw.Genitive)
	kw.Next = nfcAll(kw.Next)
	kw.NextMonth = nfcAll(kw.NextMonth)
	kw.DateMarker = nfc(kw.DateMarker)
	p.Keywords = kw

	return p, nil
}

// MustLoad is Load or panic, for mains and tests
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}
