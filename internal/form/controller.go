package form

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Pair is one row of the result view.
type Pair struct {
	Label string
	Value string
}

// Controller owns the form values and the view mode for one mounted screen.
type Controller struct {
	id      string
	fields  []Field
	initial Values
	values  Values
	mode    Mode
	logger  *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger attaches a logger. The controller adds its session ID.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(c *Controller) {
		if id != "" {
			c.id = id
		}
	}
}

// NewController mounts a form in editing mode with the initial values.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		id:      uuid.NewString(),
		fields:  Fields(),
		initial: InitialValues(),
		mode:    ModeEditing,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.values = c.initial.Clone()
	c.logger = c.logger.With(zap.String("session", c.id))
	c.logger.Debug("form mounted")
	return c
}

// ID returns the session ID used in logs.
func (c *Controller) ID() string { return c.id }

// Fields returns the field definitions in declaration order.
func (c *Controller) Fields() []Field { return Fields() }

// Mode returns the current view mode.
func (c *Controller) Mode() Mode { return c.mode }

// Editable reports whether edit operations currently apply.
func (c *Controller) Editable() bool { return c.mode == ModeEditing }

// Hint returns the hint line for the current mode.
func (c *Controller) Hint() string { return Hint(c.mode) }

// Values returns a copy of the current values.
func (c *Controller) Values() Values { return c.values.Clone() }

// Value returns the current value of a field.
func (c *Controller) Value(name string) string { return c.values[name] }

// Edit replaces the value of a known field while editing.
func (c *Controller) Edit(name, value string) bool {
	if !c.Editable() {
		return false
	}
	if _, ok := c.values[name]; !ok {
		c.logger.Debug("edit ignored: unknown field", zap.String("field", name))
		return false
	}
	c.values[name] = value
	c.logger.Debug("field edited", zap.String("field", name))
	return true
}

// Focus blanks a field the moment the user starts interacting with it.
func (c *Controller) Focus(name string) bool {
	if !c.Editable() {
		return false
	}
	if _, ok := c.values[name]; !ok {
		return false
	}
	c.values[name] = ""
	c.logger.Debug("field focused", zap.String("field", name))
	return true
}

// SelectOption picks option for a choice field. Options outside the
// field's list are ignored.
func (c *Controller) SelectOption(name, option string) bool {
	if !c.Editable() {
		return false
	}
	f, ok := Lookup(name)
	if !ok || !f.IsChoice() || !f.HasOption(option) {
		c.logger.Debug("selection ignored", zap.String("field", name), zap.String("option", option))
		return false
	}
	c.values[name] = option
	c.logger.Debug("option selected", zap.String("field", name), zap.String("option", option))
	return true
}

// SelectRadio picks the gender option.
func (c *Controller) SelectRadio(option string) bool {
	return c.SelectOption(FieldGender, option)
}

// SelectDropdown picks the country option. Only values from the country
// option list are accepted; anything else leaves the field unchanged.
func (c *Controller) SelectDropdown(option string) bool {
	return c.SelectOption(FieldCountry, option)
}

// Checked reports whether a gender radio row is the selected one.
func (c *Controller) Checked(option string) bool {
	return c.Selected(FieldGender, option)
}

// Selected reports whether option is the current value of field name.
func (c *Controller) Selected(name, option string) bool {
	return c.values[name] == option
}

// Trigger applies a button press and returns the resulting mode.
//
// Submitting values equal to the initial ones resets the form instead of
// showing the result. Anything other than submit resets.
func (c *Controller) Trigger(action Action) Mode {
	if action == ActionSubmit && !Equal(c.values, c.initial) {
		c.logger.Debug("submit diff", zap.String("diff", cmp.Diff(c.initial, c.values)))
		c.mode = ModeResult
		c.logger.Info("form submitted", zap.Strings("changed", Changed(c.initial, c.values)))
		return c.mode
	}
	if action == ActionSubmit {
		c.logger.Info("submit without changes, resetting")
	}
	c.reset()
	return c.mode
}

func (c *Controller) reset() {
	c.values = c.initial.Clone()
	c.mode = ModeEditing
	c.logger.Info("form reset")
}

// Summary returns one label/value pair per field in declaration order.
func (c *Controller) Summary() []Pair {
	out := make([]Pair, 0, len(c.fields))
	for _, f := range c.fields {
		out = append(out, Pair{Label: f.Label, Value: c.values[f.Name]})
	}
	return out
}
