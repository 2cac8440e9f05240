package settings

import (
	"math"

	"github.com/apex/log"
)

// State holds the settings of one open screen. It is not safe for
// concurrent use; every call happens on the UI thread.
type State struct {
	values    Snapshot
	observers []*subscription
}

type subscription struct {
	fn Observer
}

// NewState returns the state a freshly opened screen starts with.
func NewState() *State {
	return &State{values: Defaults()}
}

// Defaults returns the initial value of every setting.
func Defaults() Snapshot {
	return Snapshot{
		DarkMode:              false,
		NotificationsEnabled:  true,
		LocationAccessEnabled: false,
		AutoUpdateEnabled:     true,
		FontSizeSp:            FontSizeDefault,
	}
}

// Snapshot returns a copy of the current values.
func (s *State) Snapshot() Snapshot {
	return s.values
}

// Subscribe registers fn for every subsequent mutation and returns the
// function that removes it. Calling the returned function twice is harmless.
func (s *State) Subscribe(fn Observer) (unsubscribe func()) {
	sub := &subscription{fn: fn}
	s.observers = append(s.observers, sub)

	return func() {
		for i, o := range s.observers {
			if o == sub {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Toggle flips a boolean setting and returns its new value. Unknown toggles
// are ignored and report false.
func (s *State) Toggle(t Toggle) bool {
	if !t.Valid() {
		log.Debugf("ignoring toggle of unknown setting %d", int(t))
		return false
	}
	v := !s.values.Enabled(t)
	s.SetToggle(t, v)
	return v
}

// SetToggle writes a boolean setting directly, as a switch or checkbox does
// when its checked state changes.
func (s *State) SetToggle(t Toggle, v bool) {
	if !t.Valid() {
		log.Debugf("ignoring write to unknown setting %d", int(t))
		return
	}

	s.mutate(t.Field(), func(n *Snapshot) {
		switch t {
		case DarkMode:
			n.DarkMode = v
		case Notifications:
			n.NotificationsEnabled = v
		case LocationAccess:
			n.LocationAccessEnabled = v
		case AutoUpdate:
			n.AutoUpdateEnabled = v
		}
	})
}

// SetFontSize stores v clamped to [FontSizeMin, FontSizeMax].
func (s *State) SetFontSize(v float64) {
	s.mutate(FieldFontSize, func(n *Snapshot) {
		n.FontSizeSp = ClampFontSize(v)
	})
}

// RequestClearCache marks a "cache cleared" notification as pending. Nothing
// is actually cleared.
func (s *State) RequestClearCache() {
	s.mutate(FieldCacheCleared, func(n *Snapshot) {
		n.CacheClearedNotificationPending = true
	})
}

// AcknowledgeNotification clears the pending flag once the notification has
// been delivered.
func (s *State) AcknowledgeNotification() {
	s.mutate(FieldCacheCleared, func(n *Snapshot) {
		n.CacheClearedNotificationPending = false
	})
}

// ClampFontSize limits v to the slider range. NaN maps to FontSizeMin.
func ClampFontSize(v float64) float64 {
	if math.IsNaN(v) {
		return FontSizeMin
	}
	return math.Max(FontSizeMin, math.Min(FontSizeMax, v))
}

func (s *State) mutate(field Field, apply func(*Snapshot)) {
	prev := s.values
	apply(&s.values)
	change := Change{Field: field, Prev: prev, Current: s.values}

	if change.Changed() {
		log.WithField("field", field).Debug("setting changed")
	}

	// Observers may unsubscribe while being notified.
	observers := make([]*subscription, len(s.observers))
	copy(observers, s.observers)
	for _, o := range observers {
		o.fn(change)
	}
}
