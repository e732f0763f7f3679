// =============================================================================
// Data Formatter - Transformation Engine
// =============================================================================
//
// The engine is a pure function of (records, mapping store, schema): it holds
// no state of its own and mutates none of its inputs, so calling it twice
// with the same inputs yields identical output.
//
// PER-RECORD ALGORITHM:
//   1. Walk the source columns in record order and resolve each through the
//      column mapping. Discarded and unmapped columns are skipped.
//   2. Normalize the value by TARGET label (digits-only identifiers, phone
//      truncation, date reformatting; see normalize.go).
//   3. When two source columns land on the same target, the first one in
//      record order wins; the later one is dropped with a warning.
//   4. Evaluate merge rules and templates. Their results OVERWRITE any value
//      a direct mapping placed on the same target: a user who defines a
//      merge rule for a column has said the merged value is the one they
//      want. Templates are evaluated after concatenation rules and take
//      precedence when both exist for one target.
//   5. Assemble the output record; keys enumerate in ascending order
//      regardless of input column order.
//
// A failed field transform degrades to passing the raw value through.
// Formatting never fails a record, and the returned sequence is always
// complete.
//
// =============================================================================

package formatter

import (
	"github.com/ginjaninja78/data-formatter/internal/mapping"
	"github.com/ginjaninja78/data-formatter/internal/record"
	"github.com/ginjaninja78/data-formatter/internal/schema"
)

// Format transforms every parsed record into a FormattedRecord using the
// session's mapping store and the target schema. The returned warnings are
// non-fatal and deduplicated across records.
func Format(ds *record.Dataset, store *mapping.Store, sch schema.TargetSchema) ([]*record.FormattedRecord, []Warning) {
	out := make([]*record.FormattedRecord, 0, len(ds.Records))

	var warnings []Warning
	seen := make(map[Warning]struct{})
	warn := func(w Warning) {
		if _, dup := seen[w]; dup {
			return
		}
		seen[w] = struct{}{}
		warnings = append(warnings, w)
	}

	mergeTargets := store.MergeTargets()
	templateTargets := store.TemplateTargets()

	for _, rec := range ds.Records {
		formatted := record.NewFormatted()

		// Direct mappings, in record column order. First assignment to a
		// target wins; later duplicates are dropped.
		for _, column := range rec.Columns() {
			target, ok := store.Target(column)
			if !ok || target == schema.Discard {
				continue
			}
			if !sch.Contains(target) {
				// Stale mapping from a different schema kind; ignore.
				continue
			}

			if formatted.Has(target) {
				if !hasMerge(store, target) {
					warn(Warning{Code: WarnDuplicateTarget, Target: target, Source: column})
				}
				continue
			}

			formatted.Set(target, Normalize(target, rec.Value(column).Text()))
		}

		// Ordered concatenation rules overwrite direct mappings.
		for _, target := range mergeTargets {
			if target == schema.Discard || !sch.Contains(target) {
				continue
			}
			formatted.Set(target, concatValue(rec, store.MergeRule(target)))
		}

		// Templates overwrite both direct mappings and concatenations.
		for _, target := range templateTargets {
			if target == schema.Discard || !sch.Contains(target) {
				continue
			}
			template, _ := store.Template(target)
			value, unresolved := expandTemplate(rec, template)
			for _, name := range unresolved {
				warn(Warning{Code: WarnUnresolvedPlaceholder, Target: target, Source: name})
			}
			formatted.Set(target, value)
		}

		out = append(out, formatted)
	}

	return out, warnings
}

// hasMerge reports whether a target's value will be overwritten by a merge
// rule or template anyway, which makes a duplicate direct mapping harmless.
func hasMerge(store *mapping.Store, target string) bool {
	if len(store.MergeRule(target)) > 0 {
		return true
	}
	_, ok := store.Template(target)
	return ok
}
