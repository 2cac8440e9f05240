package settings

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState().Snapshot()

	assert.False(t, s.DarkMode)
	assert.True(t, s.NotificationsEnabled)
	assert.False(t, s.LocationAccessEnabled)
	assert.True(t, s.AutoUpdateEnabled)
	assert.Equal(t, 16.0, s.FontSizeSp)
	assert.False(t, s.CacheClearedNotificationPending)
}

func TestToggleParity(t *testing.T) {
	toggles := []Toggle{DarkMode, Notifications, LocationAccess, AutoUpdate}

	for _, tg := range toggles {
		t.Run(tg.String(), func(t *testing.T) {
			s := NewState()
			initial := s.Snapshot().Enabled(tg)

			for n := 1; n <= 7; n++ {
				got := s.Toggle(tg)
				want := initial != (n%2 == 1)
				assert.Equal(t, want, got, "after %d toggles", n)
				assert.Equal(t, want, s.Snapshot().Enabled(tg))
			}
		})
	}
}

func TestToggleLeavesOtherFields(t *testing.T) {
	s := NewState()
	before := s.Snapshot()

	assert.True(t, s.Toggle(DarkMode))

	after := s.Snapshot()
	after.DarkMode = before.DarkMode
	assert.Equal(t, before, after)
}

func TestToggleUnknown(t *testing.T) {
	s := NewState()
	before := s.Snapshot()

	assert.False(t, s.Toggle(Toggle(42)))
	s.SetToggle(Toggle(-1), true)
	assert.Equal(t, before, s.Snapshot())
}

func TestSetToggle(t *testing.T) {
	s := NewState()

	s.SetToggle(LocationAccess, true)
	assert.True(t, s.Snapshot().LocationAccessEnabled)

	s.SetToggle(LocationAccess, true)
	assert.True(t, s.Snapshot().LocationAccessEnabled)

	s.SetToggle(Notifications, false)
	assert.False(t, s.Snapshot().NotificationsEnabled)
}

func TestSetFontSize(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "above max", in: 40, want: 28},
		{name: "below min", in: 5, want: 12},
		{name: "lower bound", in: 12, want: 12},
		{name: "upper bound", in: 28, want: 28},
		{name: "in range", in: 20.5, want: 20.5},
		{name: "negative", in: -3, want: 12},
		{name: "positive infinity", in: math.Inf(1), want: 28},
		{name: "negative infinity", in: math.Inf(-1), want: 12},
		{name: "nan", in: math.NaN(), want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.SetFontSize(tt.in)
			assert.Equal(t, tt.want, s.Snapshot().FontSizeSp)

			// Clamping is idempotent.
			s.SetFontSize(s.Snapshot().FontSizeSp)
			assert.Equal(t, tt.want, s.Snapshot().FontSizeSp)
		})
	}
}

func TestClearCacheFlag(t *testing.T) {
	s := NewState()
	before := s.Snapshot()

	s.RequestClearCache()
	assert.True(t, s.Snapshot().CacheClearedNotificationPending)

	s.RequestClearCache()
	assert.True(t, s.Snapshot().CacheClearedNotificationPending)

	s.AcknowledgeNotification()
	assert.False(t, s.Snapshot().CacheClearedNotificationPending)

	s.AcknowledgeNotification()
	assert.False(t, s.Snapshot().CacheClearedNotificationPending)

	assert.Equal(t, before, s.Snapshot())
}

func TestSubscribe(t *testing.T) {
	s := NewState()

	var changes []Change
	unsubscribe := s.Subscribe(func(c Change) {
		changes = append(changes, c)
	})

	s.Toggle(DarkMode)
	s.SetFontSize(40)
	s.RequestClearCache()
	s.RequestClearCache()

	require.Len(t, changes, 4)
	assert.Equal(t, FieldDarkMode, changes[0].Field)
	assert.False(t, changes[0].Prev.DarkMode)
	assert.True(t, changes[0].Current.DarkMode)
	assert.Equal(t, FieldFontSize, changes[1].Field)
	assert.Equal(t, 28.0, changes[1].Current.FontSizeSp)
	assert.True(t, changes[2].Changed())
	assert.False(t, changes[3].Changed(), "repeated request is idempotent")

	unsubscribe()
	unsubscribe()
	s.Toggle(DarkMode)
	assert.Len(t, changes, 4)
}

func TestSubscribeOrderAndUnsubscribeDuringNotify(t *testing.T) {
	s := NewState()

	var order []string
	var unsubFirst func()
	unsubFirst = s.Subscribe(func(Change) {
		order = append(order, "first")
		unsubFirst()
	})
	s.Subscribe(func(Change) {
		order = append(order, "second")
	})

	s.Toggle(AutoUpdate)
	s.Toggle(AutoUpdate)

	assert.Equal(t, []string{"first", "second", "second"}, order)
}

func TestToggleField(t *testing.T) {
	assert.Equal(t, FieldDarkMode, DarkMode.Field())
	assert.Equal(t, FieldNotifications, Notifications.Field())
	assert.Equal(t, FieldLocationAccess, LocationAccess.Field())
	assert.Equal(t, FieldAutoUpdate, AutoUpdate.Field())
	assert.Equal(t, Field(""), Toggle(9).Field())
	assert.Equal(t, "unknown", Toggle(9).String())
}
