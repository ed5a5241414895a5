package temporal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// IST is the fixed reference zone for India Standard Time. A fixed zone keeps
// the binary independent of the host tzdata; IST has no DST transitions.
var IST = time.FixedZone("IST", 5*3600+30*60)

// ClockParseError reports an unusable reference-time override. Unlike
// unparseable utterance text, which yields an empty result, a bad override is
// caller-correctable and fails the parse before any extraction begins.
type ClockParseError struct {
	Raw   string
	cause error
}

func (e *ClockParseError) Error() string {
	return fmt.Sprintf("reference clock: cannot parse %q: %v", e.Raw, e.cause)
}

func (e *ClockParseError) Unwrap() error { return e.cause }

// ResolveReference interprets an optional reference-time override. Accepted
// forms are an ISO-8601 timestamp with offset (anything containing T, Z or +)
// or a decimal string of epoch milliseconds. Empty means wall-clock now. The
// result is always expressed in loc.
func ResolveReference(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = IST
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now().In(loc), nil
	}
	if strings.ContainsAny(raw, "TZ+") {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, &ClockParseError{Raw: raw, cause: err}
		}
		return t.In(loc), nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, &ClockParseError{Raw: raw, cause: err}
	}
	return time.UnixMilli(ms).In(loc), nil
}
