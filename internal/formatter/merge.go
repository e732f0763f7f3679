// =============================================================================
// Data Formatter - Merge Rule Evaluation
// =============================================================================
//
// Merge rules build one target value out of several source columns. Two
// flavors exist:
//
//   - ordered concatenation: the raw values of the listed columns, in
//     ascending position order, joined by a single space
//   - templates: a literal string where every {column} token is replaced by
//     that column's raw value
//
// Template expansion is a plain left-to-right token scan, not expression
// evaluation: nothing inside the braces is ever executed, and a token naming
// an unknown column stays in the output verbatim (surfaced as a warning).
//
// =============================================================================

package formatter

import (
	"strings"

	"github.com/ginjaninja78/data-formatter/internal/mapping"
	"github.com/ginjaninja78/data-formatter/internal/record"
)

// concatValue evaluates an ordered concatenation rule against one record.
// Entries are already sorted ascending by position by the mapping store.
// Null cells contribute the empty string.
func concatValue(rec record.Record, entries []mapping.MergeEntry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = rec.Value(e.Column).Text()
	}
	return strings.Join(parts, " ")
}

// expandTemplate replaces every {column} token in the template with that
// column's raw value. Tokens naming columns absent from the record are left
// as-is and returned as unresolved.
func expandTemplate(rec record.Record, template string) (string, []string) {
	var (
		b          strings.Builder
		unresolved []string
	)
	b.Grow(len(template))

	for i := 0; i < len(template); {
		if template[i] != '{' {
			b.WriteByte(template[i])
			i++
			continue
		}

		end := strings.IndexByte(template[i+1:], '}')
		if end < 0 {
			// No closing brace: the rest is literal text.
			b.WriteString(template[i:])
			break
		}

		name := template[i+1 : i+1+end]
		if rec.Has(name) {
			b.WriteString(rec.Value(name).Text())
		} else {
			b.WriteString(template[i : i+2+end])
			unresolved = append(unresolved, name)
		}
		i += end + 2
	}

	return b.String(), unresolved
}
