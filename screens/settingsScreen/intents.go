package settingsScreen

import (
	"math"

	"github.com/apex/log"

	"settings-screen/pkg/settings"
	settingswidget "settings-screen/widgets/settings"
)

// activate applies the effect of activating a row on the state. It returns
// false for rows that do nothing when activated.
func activate(state *settings.State, row settingswidget.Row) bool {
	switch row.Kind {
	case settingswidget.KindSwitch, settingswidget.KindCheckbox:
		v := state.Toggle(row.Toggle)
		log.WithField("setting", row.Toggle).WithField("value", v).Info("setting toggled")
		return true
	case settingswidget.KindAction:
		return runAction(state, row.Action)
	default:
		return false
	}
}

// clickActivates reports whether a click on part of row activates it. The
// clear cache row only reacts to its button and the slider only to drags.
func clickActivates(row settingswidget.Row, part settingswidget.Part) bool {
	switch row.Kind {
	case settingswidget.KindSwitch, settingswidget.KindCheckbox:
		return part != settingswidget.PartNone
	case settingswidget.KindAction:
		return part == settingswidget.PartControl
	default:
		return false
	}
}

func runAction(state *settings.State, action settingswidget.Action) bool {
	switch action {
	case settingswidget.ActionClearCache:
		log.Info("clear cache requested")
		state.RequestClearCache()
		return true
	default:
		log.Warnf("unknown action %q", action)
		return false
	}
}

// stepSlider moves a slider row by dir steps.
func stepSlider(state *settings.State, row settingswidget.Row, dir int) bool {
	if row.Kind != settingswidget.KindSlider {
		return false
	}
	step := row.Step
	if step <= 0 {
		step = 1
	}
	// Snap to the step grid first so a dragged value steps to whole sizes.
	base := math.Round(row.Value/step) * step
	state.SetFontSize(base + float64(dir)*step)
	return true
}
