package settings

import (
	"time"

	"github.com/apex/log"
)

// CacheClearedMessage is the text shown after "Clear Cache" is pressed.
const CacheClearedMessage = "Cache cleared"

// Presenter shows one transient message at a time.
type Presenter interface {
	Show(text string, now time.Time)
	Active(now time.Time) bool
}

// NotificationEffect delivers the pending "cache cleared" notification. It
// arms on every transition of the pending flag into true, shows the message
// on the next Update and acknowledges it on the state once the presenter is
// done with it.
type NotificationEffect struct {
	state     *State
	presenter Presenter
	text      string

	armed       bool
	showing     bool
	unsubscribe func()
}

// NewNotificationEffect subscribes to state. If a notification is already
// pending it is delivered on the first Update.
func NewNotificationEffect(state *State, presenter Presenter, text string) *NotificationEffect {
	e := &NotificationEffect{
		state:     state,
		presenter: presenter,
		text:      text,
		armed:     state.Snapshot().CacheClearedNotificationPending,
	}
	e.unsubscribe = state.Subscribe(e.observe)
	return e
}

func (e *NotificationEffect) observe(c Change) {
	if c.Field != FieldCacheCleared {
		return
	}
	switch {
	case !c.Prev.CacheClearedNotificationPending && c.Current.CacheClearedNotificationPending:
		e.armed = true
	case c.Prev.CacheClearedNotificationPending && !c.Current.CacheClearedNotificationPending:
		// Acknowledged elsewhere before it reached the screen.
		e.armed = false
	}
}

// Update advances the effect. It is called once per frame with the frame
// time.
func (e *NotificationEffect) Update(now time.Time) {
	if e.state == nil {
		return
	}

	if e.showing {
		if e.presenter.Active(now) {
			return
		}
		e.showing = false
		log.Debug("notification delivered")
		e.state.AcknowledgeNotification()
		return
	}

	if e.armed {
		e.armed = false
		e.showing = true
		log.WithField("text", e.text).Debug("showing notification")
		e.presenter.Show(e.text, now)
	}
}

// Showing reports whether a notification is on screen and not yet
// acknowledged.
func (e *NotificationEffect) Showing() bool {
	return e.showing
}

// Close stops observing the state and drops any delivery in flight.
func (e *NotificationEffect) Close() {
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
	e.armed = false
	e.showing = false
	e.state = nil
}
