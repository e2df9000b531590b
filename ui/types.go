// Package ui builds menu screens on top of renderer frames: the speed
// selection screen and the pause overlay drawn over a frozen playfield.
package ui

import "image/color"

// Option is one selectable menu entry.
type Option struct {
	Label  string
	Accent color.RGBA // Speed menu fill when selected, border otherwise
}

// Theme holds UI styling constants.
type Theme struct {
	Background     color.RGBA
	Overlay        color.RGBA
	PanelBg        color.RGBA
	PanelBorder    color.RGBA
	TitleColor     color.RGBA
	HintColor      color.RGBA
	OptionBg       color.RGBA // Unselected speed option fill
	ButtonBg       color.RGBA // Unselected pause button fill
	ButtonBorder   color.RGBA
	ButtonActive   color.RGBA // Selected pause button fill
	ButtonActiveFg color.RGBA
	SelectedText   color.RGBA // Label on a selected speed option

	PanelBorderWidth  float32
	ButtonBorderWidth float32
	ActiveBorderWidth float32

	TitleFontSize    int32
	SubtitleFontSize int32
	OptionFontSize   int32
	HintFontSize     int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		Background:     color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Overlay:        color.RGBA{R: 0, G: 0, B: 0, A: 128},
		PanelBg:        color.RGBA{R: 40, G: 40, B: 40, A: 255},
		PanelBorder:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		TitleColor:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		HintColor:      color.RGBA{R: 200, G: 200, B: 200, A: 255},
		OptionBg:       color.RGBA{R: 50, G: 50, B: 50, A: 255},
		ButtonBg:       color.RGBA{R: 60, G: 60, B: 60, A: 255},
		ButtonBorder:   color.RGBA{R: 150, G: 150, B: 150, A: 255},
		ButtonActive:   color.RGBA{R: 100, G: 100, B: 255, A: 255},
		ButtonActiveFg: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		SelectedText:   color.RGBA{R: 0, G: 0, B: 0, A: 255},

		PanelBorderWidth:  3,
		ButtonBorderWidth: 2,
		ActiveBorderWidth: 3,

		TitleFontSize:    56,
		SubtitleFontSize: 36,
		OptionFontSize:   26,
		HintFontSize:     18,
	}
}
