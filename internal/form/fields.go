package form

import "slices"

// Kind selects how a field is rendered and edited.
type Kind string

const (
	KindText     Kind = "input"
	KindRadio    Kind = "radio"
	KindDropdown Kind = "dropdown"
)

// Field names.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldGender    = "gender"
	FieldCountry   = "country"
)

// Field describes one form field. Options is only set for choice kinds.
type Field struct {
	Name    string
	Kind    Kind
	Label   string
	Options []string
}

// HasOption reports whether option is one of the field's choices.
func (f Field) HasOption(option string) bool {
	return slices.Contains(f.Options, option)
}

// IsChoice reports whether the field picks from a closed option list.
func (f Field) IsChoice() bool {
	return f.Kind == KindRadio || f.Kind == KindDropdown
}

var definitions = []Field{
	{Name: FieldFirstName, Kind: KindText, Label: "First Name"},
	{Name: FieldLastName, Kind: KindText, Label: "Last Name"},
	{Name: FieldGender, Kind: KindRadio, Label: "Gender", Options: []string{"male", "female"}},
	{Name: FieldCountry, Kind: KindDropdown, Label: "Country", Options: []string{"US", "IN"}},
}

// Fields returns the form's field definitions in declaration order.
func Fields() []Field {
	out := make([]Field, len(definitions))
	for i, f := range definitions {
		f.Options = slices.Clone(f.Options)
		out[i] = f
	}
	return out
}

// Lookup finds a field definition by name.
func Lookup(name string) (Field, bool) {
	for _, f := range definitions {
		if f.Name == name {
			f.Options = slices.Clone(f.Options)
			return f, true
		}
	}
	return Field{}, false
}
