// =============================================================================
// Data Formatter - Mapping Profiles
// =============================================================================
//
// A profile is one session's mapping choices written to YAML so the CLI can
// replay them against a file:
//
//   kind: customer
//   columns:
//     Nome: Descartar
//     Telefone: "Telefone 1"
//   merge:
//     "Razão Social":
//       - { column: Nome, order: 1 }
//       - { column: Sobrenome, order: 2 }
//   templates:
//     "Rua": "{Logradouro}, {Bairro}"
//
// Loading validates the shape (kind, required fields, 1-based orders) and
// that every referenced target label exists in the kind's schema. Source
// columns are NOT validated here — whether they exist in the data is only
// knowable after a parse, and unknown sources are harmless at format time.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/data-formatter/internal/mapping"
	"github.com/ginjaninja78/data-formatter/internal/schema"
)

// MergeRule is one ordered slot in a profile merge rule.
type MergeRule struct {
	Column string `yaml:"column" validate:"required"`
	Order  int    `yaml:"order" validate:"gte=1"`
}

// Profile is the serialized form of a mapping store for one record kind.
type Profile struct {
	Kind      string                 `yaml:"kind" validate:"required,oneof=customer product"`
	Columns   map[string]string      `yaml:"columns"`
	Merge     map[string][]MergeRule `yaml:"merge,omitempty"`
	Templates map[string]string      `yaml:"templates,omitempty"`
}

// LoadProfile reads and validates a mapping profile.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}

	if err := validate.Struct(&p); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	for target, rules := range p.Merge {
		for _, r := range rules {
			if err := validate.Struct(&r); err != nil {
				return nil, fmt.Errorf("invalid profile %s: merge rule for %q: %w", path, target, err)
			}
		}
	}

	if err := p.checkLabels(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return &p, nil
}

// SaveProfile writes a profile to disk as YAML.
func SaveProfile(path string, p *Profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write profile %s: %w", path, err)
	}
	return nil
}

// SchemaKind returns the profile's parsed record kind.
func (p *Profile) SchemaKind() (schema.Kind, error) {
	return schema.ParseKind(p.Kind)
}

// Apply replays the profile's choices onto a mapping store. The store must
// already be seeded from a parsed file; profile entries for source columns
// the file does not have are applied anyway and simply never match a record
// column at format time.
func (p *Profile) Apply(store *mapping.Store) {
	for source, target := range p.Columns {
		store.SetMapping(source, target)
	}
	for target, rules := range p.Merge {
		for _, r := range rules {
			store.SetMergeOrder(target, r.Column, r.Order)
		}
	}
	for target, template := range p.Templates {
		store.SetTemplate(target, template)
	}
}

// checkLabels verifies every target label referenced by the profile exists
// in the schema for its kind.
func (p *Profile) checkLabels() error {
	kind, err := p.SchemaKind()
	if err != nil {
		return err
	}
	sch, err := schema.ForKind(kind)
	if err != nil {
		return err
	}

	for source, target := range p.Columns {
		if !sch.Contains(target) {
			return fmt.Errorf("column %q maps to unknown target %q", source, target)
		}
	}
	for target := range p.Merge {
		if !sch.Contains(target) || target == schema.Discard {
			return fmt.Errorf("merge rule for invalid target %q", target)
		}
	}
	for target := range p.Templates {
		if !sch.Contains(target) || target == schema.Discard {
			return fmt.Errorf("template for invalid target %q", target)
		}
	}
	return nil
}
