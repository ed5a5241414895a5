package temporal

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"batakh/internal/core/langpack"
	"batakh/internal/core/normalize"
)

// Parser resolves one utterance per call. It is pure and synchronous: all
// state is compiled once in New and read-only afterwards, so a single Parser
// may serve concurrent calls without coordination.
type Parser struct {
	pack     *langpack.Pack
	norm     *normalize.Normalizer
	loc      *time.Location
	meridiem MeridiemStrategy
	re       regexSet
	rules    []rule
}

type regexSet struct {
	duration      *regexp.Regexp
	oclockMinutes *regexp.Regexp
	joinerMinutes *regexp.Regexp
	hhmm          *regexp.Regexp
	bareOClock    *regexp.Regexp
	meridiems     []*regexp.Regexp // parallel to pack.Meridiems

	halfMinute   *regexp.Regexp
	twoAndHalf   *regexp.Regexp
	plusHalf     *regexp.Regexp
	plusQuarter  *regexp.Regexp
	minusQuarter *regexp.Regexp

	dateMarker *regexp.Regexp
	dayMonth   *regexp.Regexp
}

// Option customizes a Parser
type Option func(*Parser)

// WithLocation overrides the default IST resolution zone
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) { p.loc = loc }
}

// WithMeridiemStrategy swaps the AM/PM inference applied when the speaker
// states no explicit meridiem
func WithMeridiemStrategy(s MeridiemStrategy) Option {
	return func(p *Parser) { p.meridiem = s }
}

// New compiles a Parser from the pack tables
func New(pack *langpack.Pack, opts ...Option) *Parser {
	p := &Parser{
		pack:     pack,
		norm:     normalize.New(pack),
		loc:      IST,
		meridiem: DefaultMeridiem,
	}
	for _, o := range opts {
		o(p)
	}
	p.compile()
	p.rules = dispatchRules()
	return p
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

// compile builds every pattern once; the extractors only execute them
func (p *Parser) compile() {
	kw := p.pack.Keywords
	unitAlt := alternation(p.pack.UnitWords)
	hourAlt := alternation(p.pack.HourUnits)
	monthWords := make([]string, len(p.pack.Months))
	for i, m := range p.pack.Months {
		monthWords[i] = m.Word
	}

	q := regexp.QuoteMeta
	fr := p.pack.Fractions

	p.re.duration = regexp.MustCompile(`(\d+)\s+(` + unitAlt + `)(?:\s+` + q(kw.Genitive) + `)?`)
	p.re.oclockMinutes = regexp.MustCompile(`(\d+)\s*` + q(kw.OClock) + `\s+(\d+)\s*` + q(kw.MinuteUnit))
	p.re.joinerMinutes = regexp.MustCompile(`(\d+)\s*` + q(kw.Joiner) + `\s*(\d+)\s*` + q(kw.MinuteUnit))
	p.re.hhmm = regexp.MustCompile(`(\d+):(\d+)`)
	p.re.bareOClock = regexp.MustCompile(`(\d+)\s*` + q(kw.OClock))
	p.re.meridiems = make([]*regexp.Regexp, len(p.pack.Meridiems))
	for i, m := range p.pack.Meridiems {
		p.re.meridiems[i] = regexp.MustCompile(`(\d+)\s+` + q(m.Word))
	}

	p.re.halfMinute = regexp.MustCompile(q(fr.Half) + `\s+` + q(kw.MinuteUnit))
	p.re.twoAndHalf = regexp.MustCompile(q(fr.TwoAndHalf) + `\s+(?:` + hourAlt + `)`)
	p.re.plusHalf = regexp.MustCompile(q(fr.PlusHalf) + `\s+(\d+)\s+(?:` + hourAlt + `)`)
	p.re.plusQuarter = regexp.MustCompile(q(fr.PlusQuarter) + `\s+(\d+)?\s*(?:` + hourAlt + `)`)
	p.re.minusQuarter = regexp.MustCompile(q(fr.MinusQuarter) + `\s+(\d+)\s+(?:` + hourAlt + `)`)

	p.re.dateMarker = regexp.MustCompile(`(\d+)\s+` + q(kw.DateMarker))
	p.re.dayMonth = regexp.MustCompile(`(\d+)\s+(` + alternation(monthWords) + `)`)
}

// rule is one dispatcher step: classify the normalized text, run an
// extractor, and either stop there (terminal) or fall through on a miss.
type rule struct {
	name     string
	match    func(p *Parser, text string) bool
	run      func(p *Parser, text string, ref time.Time, origEnd int) *Entity
	terminal bool
}

// dispatchRules is the fixed classification order. Keyword anchors (timer vs
// o'clock+alarm) disambiguate intent before structural pattern matching,
// because duration and clock-time phrases both use minute words. A terminal
// rule that fails still ends the parse: a forced-duration read may suppress a
// viable time read, which is the documented trade-off.
func dispatchRules() []rule {
	return []rule{
		{
			name:     "timer-keyword",
			match:    func(p *Parser, text string) bool { return p.hasAny(text, p.pack.Keywords.Timer) },
			run:      (*Parser).runDuration,
			terminal: true,
		},
		{
			name: "oclock-alarm",
			match: func(p *Parser, text string) bool {
				if !strings.Contains(text, p.pack.Keywords.OClock) {
					return false
				}
				return p.hasAny(text, p.pack.Keywords.Alarm) || p.re.bareOClock.MatchString(text)
			},
			run:      (*Parser).runTime,
			terminal: true,
		},
		{
			name:  "duration",
			match: func(*Parser, string) bool { return true },
			run:   (*Parser).runDuration,
		},
		{
			name: "calendar",
			match: func(p *Parser, text string) bool {
				if strings.Contains(text, p.pack.Keywords.DateMarker) {
					return true
				}
				for _, m := range p.pack.Months {
					if normalize.ContainsWord(text, m.Word) {
						return true
					}
				}
				return false
			},
			run:      (*Parser).runDate,
			terminal: true,
		},
		{
			name:  "time",
			match: func(*Parser, string) bool { return true },
			run:   (*Parser).runTime,
		},
	}
}

func (p *Parser) runDuration(text string, _ time.Time, origEnd int) *Entity {
	return p.extractDuration(text, origEnd)
}

func (p *Parser) runTime(text string, ref time.Time, origEnd int) *Entity {
	return p.extractTime(text, ref, origEnd)
}

func (p *Parser) runDate(text string, ref time.Time, origEnd int) *Entity {
	return p.extractDate(text, ref, origEnd)
}

// Parse resolves at most one temporal entity from raw. The returned slice is
// never nil so an empty result marshals as [].
func (p *Parser) Parse(raw string, ref time.Time) []Entity {
	out := make([]Entity, 0, 1)
	if strings.TrimSpace(raw) == "" {
		return out
	}
	text := p.norm.Normalize(raw)
	origEnd := utf8.RuneCountInString(raw)

	for _, r := range p.rules {
		if !r.match(p, text) {
			continue
		}
		if e := r.run(p, text, ref, origEnd); e != nil {
			out = append(out, *e)
			return out
		}
		if r.terminal {
			return out
		}
	}
	return out
}

// ParseNow resolves against the wall clock in the parser's zone
func (p *Parser) ParseNow(raw string) []Entity {
	return p.Parse(raw, time.Now().In(p.loc))
}

// Location returns the parser's resolution zone
func (p *Parser) Location() *time.Location { return p.loc }

// hasAny reports whether any of the words occurs in text; ASCII keywords
// (e.g. "timer") are matched case-insensitively
func (p *Parser) hasAny(text string, words []string) bool {
	var lower string
	for _, w := range words {
		if isASCII(w) {
			if lower == "" {
				lower = strings.ToLower(text)
			}
			if strings.Contains(lower, w) {
				return true
			}
			continue
		}
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
