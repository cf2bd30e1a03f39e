package view

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Base palette: the named colors of the classic form screen, as hex
// ---------------------------------------------------------------------------

const (
	colorMidnightBlue   lipgloss.Color = "#191970"
	colorGray           lipgloss.Color = "#808080"
	colorCornflowerBlue lipgloss.Color = "#6495ed"
	colorWhite          lipgloss.Color = "#ffffff"
	colorBlack          lipgloss.Color = "#000000"
	colorLavender       lipgloss.Color = "#b4befe"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorTitle      = colorMidnightBlue
	colorFrame      = colorMidnightBlue
	colorLabel      = colorGray
	colorValue      = colorBlack
	colorHint       = colorGray
	colorButton     = colorCornflowerBlue
	colorButtonText = colorWhite
	colorFocus      = colorLavender
)

// AllPaletteColors returns every base color, for validation.
func AllPaletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorMidnightBlue, colorGray, colorCornflowerBlue,
		colorWhite, colorBlack, colorLavender,
	}
}
