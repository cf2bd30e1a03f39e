package form

// Mode is the view the screen shows.
type Mode int

const (
	ModeEditing Mode = iota
	ModeResult
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	case ModeResult:
		return "result"
	default:
		return "unknown"
	}
}

// Hint returns the static line shown under the form for mode.
func Hint(m Mode) string {
	if m == ModeResult {
		return "Reset to clear your inputs"
	}
	return "Submit to See your Inputs"
}

// Action is one of the two buttons under the form.
type Action string

const (
	ActionSubmit Action = "submit"
	ActionReset  Action = "reset"
)

// Actions returns the buttons in display order.
func Actions() []Action {
	return []Action{ActionSubmit, ActionReset}
}

// Label is the button caption.
func (a Action) Label() string {
	if a == ActionSubmit {
		return "SUBMIT"
	}
	return "RESET"
}
