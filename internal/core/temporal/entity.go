// Package temporal resolves spoken Hindi time expressions into structured
// entities: durations in seconds, clock times, and calendar dates. Output is
// wire-compatible with the Duckling temporal-entity protocol.
package temporal

import "time"

// Dimension is the entity kind
type Dimension string

const (
	// DimDuration marks a duration entity (seconds)
	DimDuration Dimension = "duration"
	// DimTime marks a clock-time or calendar-date entity
	DimTime Dimension = "time"
)

// Grain is the precision of a resolved time value
type Grain string

const (
	// GrainMinute marks a specific clock time
	GrainMinute Grain = "minute"
	// GrainDay marks a date without a time of day
	GrainDay Grain = "day"
)

// Stamp is the protocol timestamp layout: fixed literal-zero milliseconds and
// a signed 4-digit UTC offset. The three zero digits are required for byte
// compatibility with Duckling consumers, not a precision claim.
const Stamp = "2006-01-02T15:04:05.000-0700"

// FormatStamp renders t in the protocol layout
func FormatStamp(t time.Time) string { return t.Format(Stamp) }

// Value is the tagged union carried by an Entity
type Value interface {
	dim() Dimension
}

// SecondsValue is the normalized second-count echo inside a DurationValue
type SecondsValue struct {
	Value int64  `json:"value"`
	Unit  string `json:"unit"`
}

// DurationValue is the value of a duration entity
type DurationValue struct {
	Value      int64         `json:"value"`
	Unit       string        `json:"unit"`
	Normalized *SecondsValue `json:"normalized,omitempty"`
}

func (DurationValue) dim() Dimension { return DimDuration }

// NewDurationValue builds a second-denominated duration value with its echo
func NewDurationValue(seconds int64) DurationValue {
	return DurationValue{
		Value:      seconds,
		Unit:       "second",
		Normalized: &SecondsValue{Value: seconds, Unit: "second"},
	}
}

// TimeValue is the value of a time entity
type TimeValue struct {
	Value string `json:"value"`
	Grain Grain  `json:"grain"`
	Type  string `json:"type"`
}

func (TimeValue) dim() Dimension { return DimTime }

// NewTimeValue builds a protocol time value at the given grain
func NewTimeValue(t time.Time, grain Grain) TimeValue {
	return TimeValue{Value: FormatStamp(t), Grain: grain, Type: "value"}
}

// Entity is one resolved temporal expression. Start and End are character
// (rune) offsets; Latent is always false for resolved matches and is kept as
// a placeholder for future ambiguous matches.
type Entity struct {
	Body   string    `json:"body"`
	Start  int       `json:"start"`
	Value  Value     `json:"value"`
	End    int       `json:"end"`
	Dim    Dimension `json:"dim"`
	Latent bool      `json:"latent"`
}
