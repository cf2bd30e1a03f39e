package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jask/inputform/internal/form"
)

// OutputFormat controls how the result view is written.
type OutputFormat string

const (
	// OutputFormatPretty writes one "Label: value" line per field.
	OutputFormatPretty OutputFormat = "pretty"
	// OutputFormatJSON writes an object keyed by field name.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML writes a mapping keyed by field name.
	OutputFormatYAML OutputFormat = "yaml"
)

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(name string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(name))); f {
	case OutputFormatPretty, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	case "":
		return OutputFormatPretty, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Encode writes values in field declaration order.
func Encode(w io.Writer, format OutputFormat, fields []form.Field, values form.Values) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case OutputFormatJSON:
		data, err = encodeJSON(values)
	case OutputFormatYAML:
		data, err = encodeYAML(fields, values)
	case OutputFormatPretty, "":
		data = encodePretty(fields, values)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func encodePretty(fields []form.Field, values form.Values) []byte {
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, "%s: %s\n", f.Label, values[f.Name])
	}
	return []byte(b.String())
}

// record fixes the JSON key order to the field declaration order.
type record struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Country   string `json:"country"`
}

func encodeJSON(values form.Values) ([]byte, error) {
	data, err := json.MarshalIndent(record{
		FirstName: values[form.FieldFirstName],
		LastName:  values[form.FieldLastName],
		Gender:    values[form.FieldGender],
		Country:   values[form.FieldCountry],
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(data, '\n'), nil
}

func encodeYAML(fields []form.Field, values form.Values) ([]byte, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fields {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: values[f.Name]},
		)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}
