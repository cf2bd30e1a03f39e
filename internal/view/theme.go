package view

import "github.com/charmbracelet/lipgloss"

// Colors holds the theme's color slots. Empty slots fall back to the
// default palette.
type Colors struct {
	Title      string
	Frame      string
	Label      string
	Value      string
	Hint       string
	Button     string
	ButtonText string
	Focus      string
}

// DefaultColors returns the palette of the classic form screen.
func DefaultColors() Colors {
	return Colors{
		Title:      string(colorTitle),
		Frame:      string(colorFrame),
		Label:      string(colorLabel),
		Value:      string(colorValue),
		Hint:       string(colorHint),
		Button:     string(colorButton),
		ButtonText: string(colorButtonText),
		Focus:      string(colorFocus),
	}
}

func (c Colors) withDefaults() Colors {
	d := DefaultColors()
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	return Colors{
		Title:      pick(c.Title, d.Title),
		Frame:      pick(c.Frame, d.Frame),
		Label:      pick(c.Label, d.Label),
		Value:      pick(c.Value, d.Value),
		Hint:       pick(c.Hint, d.Hint),
		Button:     pick(c.Button, d.Button),
		ButtonText: pick(c.ButtonText, d.ButtonText),
		Focus:      pick(c.Focus, d.Focus),
	}
}

const (
	defaultWidth = 48
	minWidth     = 24
	labelWidth   = 12
)

// Theme is the immutable style set handed to Render. Build it once with
// NewTheme; the zero value renders unstyled.
type Theme struct {
	colors Colors
	width  int

	title      lipgloss.Style
	frame      lipgloss.Style
	label      lipgloss.Style
	value      lipgloss.Style
	hint       lipgloss.Style
	input      lipgloss.Style
	inputFocus lipgloss.Style
	button     lipgloss.Style
	buttonOn   lipgloss.Style
	focus      lipgloss.Style
}

// NewTheme builds the styles for colors at the given frame width.
func NewTheme(colors Colors, width int) Theme {
	colors = colors.withDefaults()
	if width <= 0 {
		width = defaultWidth
	}
	if width < minWidth {
		width = minWidth
	}
	c := func(v string) lipgloss.Color { return lipgloss.Color(v) }

	inputBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderTop(false).
		BorderForeground(c(colors.Value)).
		Padding(0, 1)

	return Theme{
		colors: colors,
		width:  width,

		title: lipgloss.NewStyle().Foreground(c(colors.Title)).Bold(true),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(colors.Frame)).
			Padding(0, 1).
			Width(width),
		label:      lipgloss.NewStyle().Foreground(c(colors.Label)).Width(labelWidth),
		value:      lipgloss.NewStyle().Foreground(c(colors.Value)).Bold(true),
		hint:       lipgloss.NewStyle().Foreground(c(colors.Hint)).Italic(true),
		input:      inputBase,
		inputFocus: inputBase.BorderForeground(c(colors.Focus)),
		button: lipgloss.NewStyle().
			Foreground(c(colors.ButtonText)).
			Background(c(colors.Button)).
			Padding(0, 2),
		buttonOn: lipgloss.NewStyle().
			Foreground(c(colors.ButtonText)).
			Background(c(colors.Focus)).
			Bold(true).
			Padding(0, 2),
		focus: lipgloss.NewStyle().Foreground(c(colors.Focus)).Bold(true),
	}
}

// DefaultTheme is NewTheme with the default palette and width.
func DefaultTheme() Theme {
	return NewTheme(Colors{}, defaultWidth)
}

// Colors returns the resolved color slots.
func (t Theme) Colors() Colors { return t.colors }

// Width returns the frame width.
func (t Theme) Width() int { return t.width }

