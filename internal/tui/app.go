// Package tui is the full-screen front end: it maps key presses onto the form
// controller and renders the screen plan every frame.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/inputform/internal/form"
	"github.com/jask/inputform/internal/view"
)

// App ties the controller to the terminal.
type App struct {
	ctx    context.Context
	ctrl   *form.Controller
	theme  view.Theme
	logger *zap.Logger
	keys   keyMap

	targets []view.Target
	cursor  int
	inputs  map[string]textinput.Model

	dropdownOpen   bool
	dropdownCursor int

	width int
}

func New(ctx context.Context, ctrl *form.Controller, theme view.Theme, logger *zap.Logger) *App {
	if ctrl == nil {
		ctrl = form.NewController(form.WithLogger(logger))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		ctx:    ctx,
		ctrl:   ctrl,
		theme:  theme,
		logger: logger.With(zap.String("session", ctrl.ID())),
		keys:   newKeyMap(),
		inputs: map[string]textinput.Model{},
	}
	for _, f := range ctrl.Fields() {
		if f.Kind != form.KindText {
			continue
		}
		inp := textinput.New()
		inp.Prompt = ""
		inp.SetValue(ctrl.Value(f.Name))
		a.inputs[f.Name] = inp
	}
	a.rebuild()
	return a
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Controller exposes the form state driven by this App.
func (a *App) Controller() *form.Controller { return a.ctrl }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a.forwardToInput(msg)
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(m, a.keys.ForceQuit) {
		return a, tea.Quit
	}
	if a.ctx != nil && a.ctx.Err() != nil {
		return a, tea.Quit
	}
	if a.dropdownOpen {
		return a.handleDropdownKey(m)
	}

	t, ok := a.current()
	textFocused := ok && t.Kind == view.TargetText

	switch {
	case key.Matches(m, a.keys.Next):
		a.move(1)
		return a, nil
	case key.Matches(m, a.keys.Prev):
		a.move(-1)
		return a, nil
	}

	if textFocused {
		if m.Type == tea.KeyEnter {
			a.move(1)
			return a, nil
		}
		return a.forwardToInput(m)
	}

	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Select) && ok:
		a.activate(t)
	}
	return a, nil
}

func (a *App) handleDropdownKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	t, ok := a.current()
	if !ok || t.Kind != view.TargetDropdown {
		a.dropdownOpen = false
		return a, nil
	}
	f, _ := form.Lookup(t.Field)
	switch {
	case key.Matches(m, a.keys.Close):
		a.dropdownOpen = false
	case key.Matches(m, a.keys.Up):
		if a.dropdownCursor > 0 {
			a.dropdownCursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.dropdownCursor < len(f.Options)-1 {
			a.dropdownCursor++
		}
	case key.Matches(m, a.keys.Select):
		if a.dropdownCursor >= 0 && a.dropdownCursor < len(f.Options) {
			a.ctrl.SelectOption(t.Field, f.Options[a.dropdownCursor])
		}
		a.dropdownOpen = false
	case key.Matches(m, a.keys.Next):
		a.dropdownOpen = false
		a.move(1)
	case key.Matches(m, a.keys.Prev):
		a.dropdownOpen = false
		a.move(-1)
	}
	return a, nil
}

func (a *App) activate(t view.Target) {
	switch t.Kind {
	case view.TargetRadio:
		a.ctrl.SelectOption(t.Field, t.Option)
	case view.TargetDropdown:
		f, _ := form.Lookup(t.Field)
		a.dropdownCursor = 0
		for i, o := range f.Options {
			if o == a.ctrl.Value(t.Field) {
				a.dropdownCursor = i
			}
		}
		a.dropdownOpen = true
	case view.TargetButton:
		before := a.ctrl.Mode()
		after := a.ctrl.Trigger(t.Action)
		a.logger.Debug("action triggered",
			zap.String("action", string(t.Action)),
			zap.Stringer("from", before),
			zap.Stringer("to", after))
		a.syncInputs()
		a.rebuild()
	}
}

func (a *App) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	t, ok := a.current()
	if !ok || t.Kind != view.TargetText {
		return a, nil
	}
	inp, ok := a.inputs[t.Field]
	if !ok {
		return a, nil
	}
	var cmd tea.Cmd
	inp, cmd = inp.Update(msg)
	a.inputs[t.Field] = inp
	if inp.Value() != a.ctrl.Value(t.Field) {
		a.ctrl.Edit(t.Field, inp.Value())
	}
	return a, cmd
}

// rebuild recomputes the focus ring after a mode change and focuses the
// first target.
func (a *App) rebuild() {
	a.targets = view.Targets(view.Build(a.ctrl))
	a.dropdownOpen = false
	a.cursor = 0
	a.applyFocus()
}

func (a *App) move(dir int) {
	if len(a.targets) == 0 {
		return
	}
	a.cursor = (a.cursor + dir + len(a.targets)) % len(a.targets)
	a.applyFocus()
}

func (a *App) current() (view.Target, bool) {
	if a.cursor < 0 || a.cursor >= len(a.targets) {
		return view.Target{}, false
	}
	return a.targets[a.cursor], true
}

// applyFocus blurs every input and focuses the current target. Focusing a
// text field clears it.
func (a *App) applyFocus() {
	for name, inp := range a.inputs {
		inp.Blur()
		a.inputs[name] = inp
	}
	t, ok := a.current()
	if !ok || t.Kind != view.TargetText {
		return
	}
	a.ctrl.Focus(t.Field)
	if inp, ok := a.inputs[t.Field]; ok {
		inp.SetValue(a.ctrl.Value(t.Field))
		inp.Focus()
		a.inputs[t.Field] = inp
	}
}

func (a *App) syncInputs() {
	for name, inp := range a.inputs {
		inp.SetValue(a.ctrl.Value(name))
		a.inputs[name] = inp
	}
}

func (a *App) View() string {
	screen := view.Build(a.ctrl)
	inputs := make(map[string]string, len(a.inputs))
	if a.ctrl.Editable() {
		for name, inp := range a.inputs {
			inputs[name] = inp.View()
		}
	}
	body := view.Render(screen, a.theme, view.RenderState{
		Focus:          a.cursor,
		Inputs:         inputs,
		DropdownOpen:   a.dropdownOpen,
		DropdownCursor: a.dropdownCursor,
	})

	t, ok := a.current()
	help := a.keys.help(ok && t.Kind == view.TargetText)
	body = lipgloss.JoinVertical(lipgloss.Left, body, "", helpStyle.Render(help))
	if a.width > 0 {
		body = lipgloss.PlaceHorizontal(a.width, lipgloss.Center, body)
	}
	return body
}

var helpStyle = lipgloss.NewStyle().Faint(true)
