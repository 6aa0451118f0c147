// Package theme holds the palette and ttk styles of the main window.
package theme

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Colors holds the resolved palette for one mode.
type Colors struct {
	AppBg     string
	Surface   string
	Primary   string
	Danger    string
	Accent    string
	Text      string
	TextMuted string
}

var (
	light = Colors{
		AppBg:     "#f7f9fb",
		Surface:   "#ffffff",
		Primary:   "#2563eb",
		Danger:    "#dc2626",
		Accent:    "#10b981",
		Text:      "#1e293b",
		TextMuted: "#64748b",
	}
	dark = Colors{
		AppBg:     "#0f172a",
		Surface:   "#1e293b",
		Primary:   "#3b82f6",
		Danger:    "#ef4444",
		Accent:    "#10b981",
		Text:      "#f1f5f9",
		TextMuted: "#94a3b8",
	}
)

// Style names used with Style(...) on ttk widgets.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleSectionLabel  = "section.TLabel"
	StyleStatusLabel   = "status.TLabel"
)

var darkMode bool

// CurrentColors returns the colors for the active mode.
func CurrentColors() Colors {
	if darkMode {
		return dark
	}
	return light
}

// InitStyles applies styles for the current mode.
func InitStyles() { apply(CurrentColors()) }

// ToggleDark flips dark mode, reapplies styles and returns the new mode.
func ToggleDark() bool {
	darkMode = !darkMode
	apply(CurrentColors())
	return darkMode
}

// IsDark reports the current mode.
func IsDark() bool { return darkMode }

func apply(p Colors) {
	_ = ActivateTheme("azure light")
	App.Configure(Background(p.AppBg))
	StyleConfigure(StylePrimaryButton, Background(p.Primary), Foreground("white"), Padding("4p 3p"), Borderwidth(1), Relief("ridge"))
	StyleConfigure(StyleDangerButton, Background(p.Danger), Foreground("white"), Padding("4p 3p"), Borderwidth(1), Relief("ridge"))
	StyleConfigure(StyleSectionLabel, Foreground(p.Primary), Background(p.Surface), Padding("2p 1p"))
	StyleConfigure(StyleStatusLabel, Foreground(p.Text), Background(p.Surface), Padding("4p 2p"), Borderwidth(1), Relief("groove"))
}
