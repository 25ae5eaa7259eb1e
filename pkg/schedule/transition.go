package schedule

import "time"

// Transition interpolates a scroll offset between two values over a fixed
// duration, driven by a frame callback passing the current time. It
// replaces stepped interval animation: the value is derived from
// timestamps, so frames can be dropped without drift.
type Transition struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration

	cancelled bool
	frozenAt  float64
}

// NewTransition starts a transition at a known timestamp
func NewTransition(from float64, to float64, start time.Time, duration time.Duration) *Transition {
	return &Transition{
		From:     from,
		To:       to,
		Start:    start,
		Duration: duration,
	}
}

// Value returns the interpolated offset at a frame timestamp, eased at
// both ends and clamped to the target after the duration has elapsed
func (t *Transition) Value(now time.Time) float64 {
	if t.cancelled {
		return t.frozenAt
	}

	progress := t.progress(now)
	return t.From + (t.To-t.From)*easeInOut(progress)
}

// Done reports whether the transition has run out or was cancelled
func (t *Transition) Done(now time.Time) bool {
	return t.cancelled || t.progress(now) >= 1
}

// Cancel freezes the transition at its value for the given timestamp
func (t *Transition) Cancel(now time.Time) {
	if t.cancelled {
		return
	}

	t.frozenAt = t.Value(now)
	t.cancelled = true
}

func (t *Transition) progress(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}

	elapsed := now.Sub(t.Start)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= t.Duration {
		return 1
	}

	return float64(elapsed) / float64(t.Duration)
}

func easeInOut(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}

	return 1 - 2*(1-p)*(1-p)
}
