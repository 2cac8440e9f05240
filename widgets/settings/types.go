package settings

import (
	"github.com/veandco/go-sdl2/sdl"

	"settings-screen/pkg/settings"
)

// Kind is the kind of a row in the settings column.
type Kind int

const (
	KindHeader Kind = iota
	KindSwitch
	KindCheckbox
	KindSlider
	KindAction
	KindDivider
	KindInfo
	KindSpacer
)

// Action identifies what an action row does when activated.
type Action string

const (
	NoAction         Action = ""
	ActionClearCache Action = "clearCache"
)

// Row is one entry of the settings column, built from a settings snapshot.
type Row struct {
	Kind        Kind
	Title       string
	Description string

	// Switch and checkbox rows.
	Toggle  settings.Toggle
	Checked bool

	// Slider rows.
	Value    float64
	Min, Max float64
	Step     float64

	// Action rows.
	Action      Action
	ActionLabel string

	Bordered bool
	// Height overrides the default height of the kind when non-zero.
	Height int32
}

// Interactive reports whether the row can take focus and be activated.
func (r Row) Interactive() bool {
	switch r.Kind {
	case KindSwitch, KindCheckbox, KindSlider, KindAction:
		return true
	default:
		return false
	}
}

// Part is the area of a row a pointer hit.
type Part int

const (
	PartNone Part = iota
	PartRow
	PartControl
)

// Placed is a row with its position in content coordinates, where y = 0 is
// the top of the scrollable column.
type Placed struct {
	Row     Row
	Rect    sdl.Rect
	Control sdl.Rect
}
