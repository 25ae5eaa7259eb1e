package date

import "time"

// ClockLayout is the wire format for time-of-day strings on schedule blocks
const ClockLayout = "15:04"

// ClockLayout12 is the human-readable time-of-day format used in exports
const ClockLayout12 = "3:04 PM"

// ParseClock parses a 24h time-of-day string like "09:30"
func ParseClock(clock string) (time.Time, error) {
	return time.Parse(ClockLayout, clock)
}

// ClockTo12 converts a 24h time-of-day string to its 12h display form
func ClockTo12(clock string) (string, error) {
	t, err := ParseClock(clock)
	if err != nil {
		return "", err
	}

	return t.Format(ClockLayout12), nil
}

// ClockTo24 converts a 12h display time back to the 24h wire form
func ClockTo24(clock string) (string, error) {
	t, err := time.Parse(ClockLayout12, clock)
	if err != nil {
		return "", err
	}

	return t.Format(ClockLayout), nil
}

// ClockBefore reports whether clock c1 reads earlier on the day than c2
func ClockBefore(c1 string, c2 string) bool {
	t1, err := ParseClock(c1)
	if err != nil {
		return false
	}

	t2, err := ParseClock(c2)
	if err != nil {
		return false
	}

	return t1.Before(t2)
}
