package form

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewControllerStartsEditingWithInitialValues(t *testing.T) {
	c := NewController()

	require.Equal(t, ModeEditing, c.Mode())
	require.True(t, c.Editable())
	require.Equal(t, InitialValues(), c.Values())
	require.NotEmpty(t, c.ID())
	require.Equal(t, "Submit to See your Inputs", c.Hint())
}

func TestValuesKeySetMatchesFields(t *testing.T) {
	c := NewController()
	c.Edit(FieldFirstName, "Ada")
	c.Edit("middleName", "x")
	c.Focus(FieldLastName)
	c.SelectDropdown("IN")

	vals := c.Values()
	require.Len(t, vals, len(Fields()))
	for _, f := range Fields() {
		_, ok := vals[f.Name]
		require.True(t, ok, "missing %s", f.Name)
	}
}

func TestEditReplacesOnlyNamedField(t *testing.T) {
	c := NewController()

	require.True(t, c.Edit(FieldFirstName, "Ada"))

	want := InitialValues()
	want[FieldFirstName] = "Ada"
	require.Equal(t, want, c.Values())
}

func TestEditUnknownFieldIgnored(t *testing.T) {
	c := NewController()
	require.False(t, c.Edit("nickname", "x"))
	require.Equal(t, InitialValues(), c.Values())
}

func TestValuesReturnsCopy(t *testing.T) {
	c := NewController()
	vals := c.Values()
	vals[FieldFirstName] = "mutated"
	require.Equal(t, "", c.Value(FieldFirstName))
}

func TestFocusBlanksFieldRegardlessOfPriorValue(t *testing.T) {
	tests := []struct {
		name  string
		field string
		prior string
	}{
		{"text with value", FieldFirstName, "Ada"},
		{"text already empty", FieldLastName, ""},
		{"radio", FieldGender, "female"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			c.Edit(tt.field, tt.prior)
			require.True(t, c.Focus(tt.field))
			require.Equal(t, "", c.Value(tt.field))
		})
	}
}

func TestSelectRadioIsIdempotent(t *testing.T) {
	c := NewController()

	require.True(t, c.SelectRadio("female"))
	first := c.Values()
	require.True(t, c.SelectRadio("female"))
	require.Equal(t, first, c.Values())
	require.True(t, c.Checked("female"))
	require.False(t, c.Checked("male"))
}

func TestCheckedIsDerivedFromValue(t *testing.T) {
	c := NewController()
	require.True(t, c.Checked("male"))

	c.Edit(FieldGender, "female")
	require.False(t, c.Checked("male"))
	require.True(t, c.Checked("female"))
}

func TestSelectOptionRejectsUnknownOptionsAndTextFields(t *testing.T) {
	c := NewController()

	require.False(t, c.SelectRadio("other"))
	require.False(t, c.SelectDropdown("FR"))
	require.False(t, c.SelectOption(FieldFirstName, "male"))
	require.Equal(t, InitialValues(), c.Values())

	require.True(t, c.SelectDropdown("IN"))
	require.True(t, c.Selected(FieldCountry, "IN"))
	require.False(t, c.Selected(FieldCountry, "US"))
}

func TestSubmitWithChangesShowsResult(t *testing.T) {
	c := NewController()
	c.Edit(FieldFirstName, "Ada")

	require.Equal(t, ModeResult, c.Trigger(ActionSubmit))
	require.Equal(t, ModeResult, c.Mode())
	require.Equal(t, "Reset to clear your inputs", c.Hint())
	require.Equal(t, Pair{Label: "First Name", Value: "Ada"}, c.Summary()[0])
}

func TestSubmitWithoutChangesResets(t *testing.T) {
	c := NewController()

	require.Equal(t, ModeEditing, c.Trigger(ActionSubmit))
	require.Equal(t, InitialValues(), c.Values())
}

func TestSubmitAfterEditingBackToInitialResets(t *testing.T) {
	c := NewController()
	c.Edit(FieldFirstName, "Ada")
	c.Edit(FieldFirstName, "")

	require.Equal(t, ModeEditing, c.Trigger(ActionSubmit))
}

func TestFocusOnlyChangeCountsWhenFieldHadInitialValue(t *testing.T) {
	c := NewController()
	c.Focus(FieldGender)

	require.Equal(t, ModeResult, c.Trigger(ActionSubmit))
	require.Equal(t, "", c.Value(FieldGender))
}

func TestResultModeIgnoresEdits(t *testing.T) {
	c := NewController()
	c.Edit(FieldFirstName, "Ada")
	c.Trigger(ActionSubmit)

	require.False(t, c.Edit(FieldFirstName, "Grace"))
	require.False(t, c.Focus(FieldFirstName))
	require.False(t, c.SelectRadio("female"))
	require.False(t, c.SelectDropdown("US"))
	require.Equal(t, "Ada", c.Value(FieldFirstName))

	require.Equal(t, ModeEditing, c.Trigger(ActionReset))
	require.Equal(t, InitialValues(), c.Values())
}

func TestSubmitInResultModeStaysInResult(t *testing.T) {
	c := NewController()
	c.SelectDropdown("US")
	c.Trigger(ActionSubmit)

	require.Equal(t, ModeResult, c.Trigger(ActionSubmit))
	require.Equal(t, "US", c.Value(FieldCountry))
}

func TestResetAfterAnyEditSequence(t *testing.T) {
	sequences := [][]func(*Controller){
		nil,
		{func(c *Controller) { c.Edit(FieldFirstName, "Ada") }},
		{
			func(c *Controller) { c.Edit(FieldLastName, "Lovelace") },
			func(c *Controller) { c.SelectRadio("female") },
			func(c *Controller) { c.SelectDropdown("IN") },
		},
		{
			func(c *Controller) { c.Focus(FieldGender) },
			func(c *Controller) { c.Trigger(ActionSubmit) },
		},
	}
	for i, seq := range sequences {
		c := NewController()
		for _, op := range seq {
			op(c)
		}
		require.Equal(t, ModeEditing, c.Trigger(ActionReset), "sequence %d", i)
		require.Equal(t, InitialValues(), c.Values(), "sequence %d", i)
	}
}

func TestResetRestoresFreshCopy(t *testing.T) {
	c := NewController()
	c.Trigger(ActionReset)
	c.Edit(FieldFirstName, "Ada")
	c.Trigger(ActionReset)

	require.Equal(t, "", c.Value(FieldFirstName))
	require.Equal(t, "", InitialValues()[FieldFirstName])
}

func TestUnknownActionTakesResetPath(t *testing.T) {
	c := NewController()
	c.Edit(FieldFirstName, "Ada")
	c.Trigger(ActionSubmit)

	require.Equal(t, ModeEditing, c.Trigger(Action("cancel")))
	require.Equal(t, InitialValues(), c.Values())
}

func TestSummaryFollowsDeclarationOrder(t *testing.T) {
	c := NewController()
	c.Edit(FieldFirstName, "Ada")
	c.Edit(FieldLastName, "Lovelace")
	c.SelectRadio("female")
	c.SelectDropdown("IN")

	require.Equal(t, []Pair{
		{Label: "First Name", Value: "Ada"},
		{Label: "Last Name", Value: "Lovelace"},
		{Label: "Gender", Value: "female"},
		{Label: "Country", Value: "IN"},
	}, c.Summary())
}

func TestTriggerLogsTransitions(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	c := NewController(WithLogger(zap.New(core)), WithID("session-1"))

	c.Trigger(ActionSubmit)
	c.Edit(FieldFirstName, "Ada")
	c.Trigger(ActionSubmit)

	require.Equal(t, 1, logs.FilterMessage("submit without changes, resetting").Len())
	submitted := logs.FilterMessage("form submitted").All()
	require.Len(t, submitted, 1)
	require.Equal(t, "session-1", submitted[0].ContextMap()["session"])
	require.Equal(t, []interface{}{FieldFirstName}, submitted[0].ContextMap()["changed"])
}
