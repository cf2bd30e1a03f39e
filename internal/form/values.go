package form

import (
	"maps"

	"github.com/google/go-cmp/cmp"
)

// Values maps field name to its current value.
type Values map[string]string

// InitialValues returns a fresh copy of the values a form starts with and
// returns to on reset.
func InitialValues() Values {
	return Values{
		FieldFirstName: "",
		FieldLastName:  "",
		FieldGender:    "male",
		FieldCountry:   "",
	}
}

// Clone returns an independent copy of v.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	return maps.Clone(v)
}

// Equal reports whether a and b hold the same keys with the same values.
func Equal(a, b Values) bool {
	return cmp.Equal(a, b)
}

// Changed lists the fields, in declaration order, whose value in v differs
// from base.
func Changed(base, v Values) []string {
	var out []string
	for _, f := range definitions {
		if base[f.Name] != v[f.Name] {
			out = append(out, f.Name)
		}
	}
	return out
}
