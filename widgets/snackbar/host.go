package snackbar

import "time"

// Display durations, matching the short and long snackbar timings.
const (
	DurationShort = 4 * time.Second
	DurationLong  = 10 * time.Second
)

// Host shows one message at a time for a fixed duration.
type Host struct {
	duration  time.Duration
	text      string
	shownAt   time.Time
	visible   bool
	dismissed bool
}

// NewHost creates a host; a non-positive duration means DurationShort.
func NewHost(duration time.Duration) *Host {
	if duration <= 0 {
		duration = DurationShort
	}
	return &Host{duration: duration}
}

// Duration returns how long each message stays visible.
func (h *Host) Duration() time.Duration {
	return h.duration
}

// Show replaces any current message with text.
func (h *Host) Show(text string, now time.Time) {
	h.text = text
	h.shownAt = now
	h.visible = true
	h.dismissed = false
}

// Dismiss hides the current message before its duration elapses.
func (h *Host) Dismiss() {
	if h.visible {
		h.dismissed = true
	}
}

// Active reports whether the current message is still on screen at now.
func (h *Host) Active(now time.Time) bool {
	if !h.visible {
		return false
	}
	if h.dismissed || now.Sub(h.shownAt) >= h.duration {
		h.visible = false
		return false
	}
	return true
}

// Current returns the message on screen, if any.
func (h *Host) Current() (string, bool) {
	if !h.visible {
		return "", false
	}
	return h.text, true
}

// Progress returns the elapsed fraction of the display time in [0, 1].
func (h *Host) Progress(now time.Time) float64 {
	if !h.visible {
		return 1
	}
	p := float64(now.Sub(h.shownAt)) / float64(h.duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
