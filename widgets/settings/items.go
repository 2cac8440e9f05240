package settings

import (
	"fmt"

	"settings-screen/pkg/settings"
)

// App information shown in the card at the bottom of the screen.
const (
	AppName    = "Settings Screen App"
	AppVersion = "1.0.0"
)

// BuildRows creates the rows of the settings column for a snapshot
func BuildRows(s settings.Snapshot) []Row {
	return []Row{
		{Kind: KindHeader, Title: "Appearance"},
		{
			Kind:        KindSwitch,
			Title:       "Dark Mode",
			Description: "Use dark theme",
			Toggle:      settings.DarkMode,
			Checked:     s.DarkMode,
		},
		{Kind: KindDivider},
		{
			Kind:        KindSlider,
			Title:       "Font Size",
			Description: FontSizeLabel(s.FontSizeSp),
			Value:       s.FontSizeSp,
			Min:         settings.FontSizeMin,
			Max:         settings.FontSizeMax,
			Step:        1,
			Bordered:    true,
		},
		{Kind: KindSpacer, Height: 16},
		{Kind: KindHeader, Title: "Notifications"},
		{
			Kind:        KindSwitch,
			Title:       "Push Notifications",
			Description: "Receive alerts",
			Toggle:      settings.Notifications,
			Checked:     s.NotificationsEnabled,
		},
		{Kind: KindDivider},
		{
			Kind:        KindCheckbox,
			Title:       "Location Access",
			Description: "Allow location-based alerts",
			Toggle:      settings.LocationAccess,
			Checked:     s.LocationAccessEnabled,
		},
		{Kind: KindSpacer, Height: 16},
		{Kind: KindHeader, Title: "Data & Storage"},
		{
			Kind:        KindCheckbox,
			Title:       "Auto-Update",
			Description: "Download updates over Wi-Fi",
			Toggle:      settings.AutoUpdate,
			Checked:     s.AutoUpdateEnabled,
		},
		{Kind: KindDivider},
		{
			Kind:        KindAction,
			Title:       "Clear Cache",
			Description: "Free up storage space",
			Action:      ActionClearCache,
			ActionLabel: "Clear",
		},
		{Kind: KindSpacer, Height: 16},
		{Kind: KindInfo, Title: AppName, Description: "Version " + AppVersion},
		{Kind: KindSpacer, Height: 24},
	}
}

// FontSizeLabel formats the font size the way the slider row shows it; the
// fraction is truncated.
func FontSizeLabel(v float64) string {
	return fmt.Sprintf("%d sp", int(v))
}
