// Package gen is the bulk record-and-accessor construction facility: a
// build-time convenience that, given record type descriptors, produces
// one Lens per declared field plus generated Go source defining the
// record types. It sits outside the optic core; nothing in the focus
// package depends on it.
package gen

import (
	"fmt"
	"io"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/smpoulsen/focus"
)

// Record describes a record type: a name and its declared fields.
type Record struct {
	Name   string   `yaml:"name"`
	Fields []string `yaml:"fields"`
}

// Schema is a set of record descriptors plus the package the generated
// source belongs to.
type Schema struct {
	Package string   `yaml:"package"`
	Records []Record `yaml:"records"`
}

// LoadSchema decodes and validates a YAML schema.
func LoadSchema(r io.Reader) (*Schema, error) {
	var s Schema
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding schema: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Schema) validate() error {
	if !isIdentifier(s.Package) {
		return fmt.Errorf("invalid package name %q", s.Package)
	}
	if len(s.Records) == 0 {
		return fmt.Errorf("schema declares no records")
	}
	for _, r := range s.Records {
		if err := r.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r Record) validate() error {
	if !isIdentifier(r.Name) {
		return fmt.Errorf("invalid record name %q", r.Name)
	}
	if len(r.Fields) == 0 {
		return fmt.Errorf("record %s declares no fields", r.Name)
	}
	seen := make(map[string]bool, len(r.Fields))
	for _, f := range r.Fields {
		if !isIdentifier(f) {
			return fmt.Errorf("record %s: invalid field name %q", r.Name, f)
		}
		if seen[f] {
			return fmt.Errorf("record %s: duplicate field %q", r.Name, f)
		}
		seen[f] = true
	}
	return nil
}

// Lenses returns one Lens per declared field, indexed by field name.
func (r Record) Lenses() map[string]focus.Lens {
	lenses := make(map[string]focus.Lens, len(r.Fields))
	for _, f := range r.Fields {
		lenses[f] = focus.MakeLens(f)
	}
	return lenses
}

// New returns a fresh mapping instance of the record with every
// declared field present and nil-valued. Because all fields exist from
// the start, lens writes against the instance satisfy the
// replacement-only rule.
func (r Record) New() map[string]any {
	m := make(map[string]any, len(r.Fields))
	for _, f := range r.Fields {
		m[f] = nil
	}
	return m
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		if unicode.IsLetter(c) || c == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(c) {
			continue
		}
		return false
	}
	return true
}
