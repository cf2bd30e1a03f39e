// Package view turns a form controller into a front-end-neutral screen plan
// and draws that plan with lipgloss.
package view

import (
	"fmt"

	"github.com/jask/inputform/internal/form"
)

// Title is the heading above the form frame.
const Title = "FORM"

// Control is one editable control in the editing view. It is one of
// TextControl, RadioControl or DropdownControl.
type Control interface {
	FieldName() string
	control()
}

// TextControl is a bordered text box bound to a field value.
type TextControl struct {
	Field form.Field
	Value string
}

// RadioOption is one radio row. Checked is derived from the field value.
type RadioOption struct {
	Value   string
	Checked bool
}

// RadioControl renders one row per option.
type RadioControl struct {
	Field   form.Field
	Options []RadioOption
}

// DropdownControl is a selector populated from the field options.
type DropdownControl struct {
	Field    form.Field
	Options  []string
	Selected string
}

func (c TextControl) FieldName() string     { return c.Field.Name }
func (c RadioControl) FieldName() string    { return c.Field.Name }
func (c DropdownControl) FieldName() string { return c.Field.Name }

func (TextControl) control()     {}
func (RadioControl) control()    {}
func (DropdownControl) control() {}

// Button is one action trigger.
type Button struct {
	Action form.Action
	Label  string
}

// Screen is everything a front end needs to draw the current state.
type Screen struct {
	Title    string
	Mode     form.Mode
	Controls []Control
	Summary  []form.Pair
	Hint     string
	Buttons  []Button
}

// Build derives the screen plan from the controller state.
func Build(c *form.Controller) Screen {
	s := Screen{
		Title: Title,
		Mode:  c.Mode(),
		Hint:  c.Hint(),
	}
	for _, a := range form.Actions() {
		s.Buttons = append(s.Buttons, Button{Action: a, Label: a.Label()})
	}
	if c.Mode() == form.ModeResult {
		s.Summary = c.Summary()
		return s
	}
	for _, f := range c.Fields() {
		s.Controls = append(s.Controls, controlFor(c, f))
	}
	return s
}

func controlFor(c *form.Controller, f form.Field) Control {
	switch f.Kind {
	case form.KindText:
		return TextControl{Field: f, Value: c.Value(f.Name)}
	case form.KindRadio:
		opts := make([]RadioOption, 0, len(f.Options))
		for _, o := range f.Options {
			opts = append(opts, RadioOption{Value: o, Checked: c.Selected(f.Name, o)})
		}
		return RadioControl{Field: f, Options: opts}
	case form.KindDropdown:
		return DropdownControl{Field: f, Options: f.Options, Selected: c.Value(f.Name)}
	default:
		panic(fmt.Sprintf("view: unhandled field kind %q", f.Kind))
	}
}

// TargetKind classifies a focusable element.
type TargetKind int

const (
	TargetText TargetKind = iota
	TargetRadio
	TargetDropdown
	TargetButton
)

// Target is one focusable element, in focus order.
type Target struct {
	Kind   TargetKind
	Field  string
	Option string
	Action form.Action
}

// Targets lists the focusable elements of s: every control (one per radio
// row) followed by the buttons.
func Targets(s Screen) []Target {
	var out []Target
	for _, ctl := range s.Controls {
		switch c := ctl.(type) {
		case TextControl:
			out = append(out, Target{Kind: TargetText, Field: c.Field.Name})
		case RadioControl:
			for _, o := range c.Options {
				out = append(out, Target{Kind: TargetRadio, Field: c.Field.Name, Option: o.Value})
			}
		case DropdownControl:
			out = append(out, Target{Kind: TargetDropdown, Field: c.Field.Name})
		}
	}
	for _, b := range s.Buttons {
		out = append(out, Target{Kind: TargetButton, Action: b.Action})
	}
	return out
}
