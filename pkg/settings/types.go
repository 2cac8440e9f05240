package settings

// Font size bounds in sp.
const (
	FontSizeMin     = 12.0
	FontSizeMax     = 28.0
	FontSizeDefault = 16.0
)

// Toggle names one of the boolean settings.
type Toggle int

const (
	DarkMode Toggle = iota
	Notifications
	LocationAccess
	AutoUpdate
)

// Field names any field of the state, used to describe a Change.
type Field string

const (
	FieldDarkMode       Field = "darkMode"
	FieldNotifications  Field = "notificationsEnabled"
	FieldLocationAccess Field = "locationAccessEnabled"
	FieldAutoUpdate     Field = "autoUpdateEnabled"
	FieldFontSize       Field = "fontSizeSp"
	FieldCacheCleared   Field = "cacheClearedNotificationPending"
)

// Field returns the state field backing the toggle.
func (t Toggle) Field() Field {
	switch t {
	case DarkMode:
		return FieldDarkMode
	case Notifications:
		return FieldNotifications
	case LocationAccess:
		return FieldLocationAccess
	case AutoUpdate:
		return FieldAutoUpdate
	default:
		return ""
	}
}

// Valid reports whether t is one of the four toggles.
func (t Toggle) Valid() bool {
	return t >= DarkMode && t <= AutoUpdate
}

func (t Toggle) String() string {
	if f := t.Field(); f != "" {
		return string(f)
	}
	return "unknown"
}

// Snapshot is a value copy of every setting, read by the view once per
// render pass.
type Snapshot struct {
	DarkMode                        bool
	NotificationsEnabled            bool
	LocationAccessEnabled           bool
	AutoUpdateEnabled               bool
	FontSizeSp                      float64
	CacheClearedNotificationPending bool
}

// Enabled returns the value of a toggle in the snapshot.
func (s Snapshot) Enabled(t Toggle) bool {
	switch t {
	case DarkMode:
		return s.DarkMode
	case Notifications:
		return s.NotificationsEnabled
	case LocationAccess:
		return s.LocationAccessEnabled
	case AutoUpdate:
		return s.AutoUpdateEnabled
	default:
		return false
	}
}

// Change is passed to observers after every mutation.
type Change struct {
	Field   Field
	Prev    Snapshot
	Current Snapshot
}

// Changed reports whether the mutation altered any value.
func (c Change) Changed() bool {
	return c.Prev != c.Current
}

// Observer receives changes synchronously, in subscription order.
type Observer func(Change)
