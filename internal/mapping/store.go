// =============================================================================
// Data Formatter - Mapping Store
// =============================================================================
//
// The Store holds the user-editable state of one formatting session:
//
//   - column mappings: source column -> target label (exactly one each)
//   - merge rules:     target label  -> ordered list of source columns,
//                      concatenated at format time
//   - templates:       target label  -> template string with {column}
//                      placeholders
//
// The Store is a plain data container: setters are upserts with no
// cross-validation. Conflicts between mappings (two sources on one target)
// are resolved by the formatting engine, not rejected here, matching how the
// selection UI lets the user move through inconsistent intermediate states.
//
// Merge rules are never auto-deleted when the parent mapping changes: a rule
// whose target no longer receives a direct mapping is simply unused until
// the user points something at that target again.
//
// =============================================================================

package mapping

import (
	"sort"

	"github.com/ginjaninja78/data-formatter/internal/schema"
)

// MergeEntry is one slot of a merge rule: a source column and its 1-based
// position inside the concatenation.
type MergeEntry struct {
	Column   string
	Position int
}

// Store holds the column mappings and merge rules for one session.
type Store struct {
	columns   []string            // seeded source columns, discovery order
	targets   map[string]string   // source column -> target label
	merge     map[string][]MergeEntry
	templates map[string]string
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		targets:   make(map[string]string),
		merge:     make(map[string][]MergeEntry),
		templates: make(map[string]string),
	}
}

// Reset re-seeds the Store for a freshly parsed file: every discovered
// source column is mapped to Discard and all prior mappings, merge rules,
// and templates are cleared.
func (s *Store) Reset(columns []string) {
	s.columns = make([]string, len(columns))
	copy(s.columns, columns)

	s.targets = make(map[string]string, len(columns))
	for _, c := range columns {
		s.targets[c] = schema.Discard
	}
	s.merge = make(map[string][]MergeEntry)
	s.templates = make(map[string]string)
}

// Columns returns the seeded source columns in discovery order.
func (s *Store) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// SetMapping assigns a source column to a target label. Last write wins;
// no duplicate checking happens at write time.
func (s *Store) SetMapping(source, target string) {
	s.targets[source] = target
}

// Target resolves a source column to its target label.
func (s *Store) Target(source string) (string, bool) {
	t, ok := s.targets[source]
	return t, ok
}

// SetMergeOrder upserts a source column into a target's merge rule at the
// given 1-based position. An existing entry for the same source column is
// replaced rather than duplicated, and the rule is re-sorted ascending by
// position after every write.
func (s *Store) SetMergeOrder(target, source string, position int) {
	entries := s.merge[target]

	replaced := false
	for i := range entries {
		if entries[i].Column == source {
			entries[i].Position = position
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, MergeEntry{Column: source, Position: position})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Position < entries[j].Position
	})
	s.merge[target] = entries
}

// MergeRule returns the ordered merge entries for a target label.
func (s *Store) MergeRule(target string) []MergeEntry {
	entries := s.merge[target]
	out := make([]MergeEntry, len(entries))
	copy(out, entries)
	return out
}

// MergeTargets returns the target labels that have a non-empty merge rule,
// in ascending order for deterministic evaluation.
func (s *Store) MergeTargets() []string {
	out := make([]string, 0, len(s.merge))
	for t, entries := range s.merge {
		if len(entries) > 0 {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

// SetTemplate assigns a template string to a target label. An empty
// template removes the entry.
func (s *Store) SetTemplate(target, template string) {
	if template == "" {
		delete(s.templates, target)
		return
	}
	s.templates[target] = template
}

// Template returns the template string for a target label.
func (s *Store) Template(target string) (string, bool) {
	t, ok := s.templates[target]
	return t, ok
}

// TemplateTargets returns the target labels that have a template, in
// ascending order for deterministic evaluation.
func (s *Store) TemplateTargets() []string {
	out := make([]string, 0, len(s.templates))
	for t := range s.templates {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
