package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderState is front-end state the plan does not carry.
type RenderState struct {
	// Focus indexes Targets(screen); -1 means nothing is focused.
	Focus int
	// Inputs holds pre-rendered text input views keyed by field name. Fields
	// missing here render their plain value.
	Inputs map[string]string
	// DropdownOpen shows the option list under the dropdown; DropdownCursor
	// indexes its options.
	DropdownOpen   bool
	DropdownCursor int
}

const (
	gutterOn  = "▶ "
	gutterOff = "  "
)

// Render draws the screen: title, framed body with the hint, then buttons.
func Render(s Screen, t Theme, st RenderState) string {
	targets := Targets(s)
	focused := func(i int) bool { return i == st.Focus && i >= 0 && i < len(targets) }

	var rows []string
	idx := 0
	for _, p := range s.Summary {
		rows = append(rows, gutterOff+t.label.Render(p.Label)+t.value.Render(p.Value))
	}
	for _, ctl := range s.Controls {
		switch c := ctl.(type) {
		case TextControl:
			rows = append(rows, renderText(c, t, st, focused(idx)))
			idx++
		case RadioControl:
			for _, o := range c.Options {
				rows = append(rows, renderRadio(o, t, focused(idx)))
				idx++
			}
		case DropdownControl:
			rows = append(rows, renderDropdown(c, t, st, focused(idx))...)
			idx++
		}
	}
	rows = append(rows, "", t.hint.Render(s.Hint))

	body := t.frame.Render(strings.Join(rows, "\n"))

	var buttons []string
	for i, b := range s.Buttons {
		style := t.button
		if focused(idx + i) {
			style = t.buttonOn
		}
		buttons = append(buttons, style.Render(b.Label))
	}
	bar := strings.Join(buttons, "   ")
	if w := lipgloss.Width(body); w > 0 {
		bar = lipgloss.PlaceHorizontal(w, lipgloss.Center, bar)
	}

	return lipgloss.JoinVertical(lipgloss.Left, t.title.Render(s.Title), body, "", bar)
}

func gutter(on bool) string {
	if on {
		return gutterOn
	}
	return gutterOff
}

func renderText(c TextControl, t Theme, st RenderState, on bool) string {
	content, ok := st.Inputs[c.Field.Name]
	if !ok {
		content = c.Value
	}
	if content == "" {
		content = " "
	}
	box := t.input
	if on {
		box = t.inputFocus
	}
	if w := t.width - labelWidth - len(gutterOff) - 6; w > 0 {
		box = box.Width(w)
	}
	label := t.label.Render(c.Field.Label)
	line := lipgloss.JoinHorizontal(lipgloss.Top, label, box.Render(content))
	return prefixLines(gutter(on), line)
}

func renderRadio(o RadioOption, t Theme, on bool) string {
	mark := "( )"
	if o.Checked {
		mark = "(•)"
	}
	if on {
		mark = t.focus.Render(mark)
	}
	return gutter(on) + t.label.Render(o.Value) + mark
}

func renderDropdown(c DropdownControl, t Theme, st RenderState, on bool) []string {
	current := c.Selected
	if current == "" {
		current = "Select"
	}
	box := "[ " + current + " ▾ ]"
	if on {
		box = t.focus.Render(box)
	}
	rows := []string{gutter(on) + t.label.Render(c.Field.Label) + box}
	if !on || !st.DropdownOpen {
		return rows
	}
	for i, o := range c.Options {
		marker := "  "
		if i == st.DropdownCursor {
			marker = t.focus.Render("> ")
		}
		rows = append(rows, gutterOff+strings.Repeat(" ", labelWidth)+marker+o)
	}
	return rows
}

func prefixLines(prefix, block string) string {
	lines := strings.Split(block, "\n")
	pad := strings.Repeat(" ", lipgloss.Width(prefix))
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
		} else {
			lines[i] = pad + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
