package report

import (
	"crimedash/internal/style"

	"github.com/fatih/color"
)

var (
	colorRed    = color.New(color.FgRed)
	colorOrange = color.New(color.FgHiRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorBlue   = color.New(color.FgBlue)
	colorBold   = color.New(color.Bold)
)

// ColorTone renders val in the terminal color of a style tone. Gray stays uncolored.
func ColorTone(tone style.Tone, val string) string {
	switch tone {
	case style.ToneRed:
		return colorRed.Sprint(val)
	case style.ToneOrange:
		return colorOrange.Sprint(val)
	case style.ToneYellow:
		return colorYellow.Sprint(val)
	case style.ToneGreen:
		return colorGreen.Sprint(val)
	case style.ToneBlue:
		return colorBlue.Sprint(val)
	default:
		return val
	}
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}

// toneColumn adapts a tone classifier into a column color function.
func toneColumn(classify func(string) style.Tone) ColorFunc {
	return func(val string) string {
		return ColorTone(classify(val), val)
	}
}
