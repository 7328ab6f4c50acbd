// Package laptime converts between the "M:SS.mmm" lap time notation used in
// chat commands and time.Duration.
package laptime

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var ErrBadFormat = errors.New("lap time must look like M:SS or M:SS.mmm")

var lapTimePattern = regexp.MustCompile(`^(\d+):(\d{2})(?:\.(\d+))?$`)

// Parse reads a lap time like "1:47.221". Minutes are a non-negative integer,
// seconds are exactly two digits below 60, milliseconds are optional and get
// normalized to three digits (padded with zeros, extra digits dropped).
func Parse(text string) (time.Duration, error) {
	m := lapTimePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrBadFormat, text)
	}

	minutes, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadFormat, text)
	}
	seconds, err := strconv.Atoi(m[2])
	if err != nil || seconds >= 60 {
		return 0, fmt.Errorf("%w: seconds out of range in %q", ErrBadFormat, text)
	}

	millis := 0
	if m[3] != "" {
		frac := m[3]
		for len(frac) < 3 {
			frac += "0"
		}
		millis, err = strconv.Atoi(frac[:3])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadFormat, text)
		}
	}

	return time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}

// Format renders a duration as "M:SS.mmm". Sub-millisecond precision is
// truncated. Parse(Format(d)) == d for every d Format can produce.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	millis := (d - seconds*time.Second) / time.Millisecond

	return fmt.Sprintf("%d:%02d.%03d", minutes, seconds, millis)
}
