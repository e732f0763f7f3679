// =============================================================================
// Data Formatter - Record Model
// =============================================================================
//
// This package defines the uniform row model shared by the parser, the
// formatting engine, and the serializer. A parsed file becomes a Dataset of
// Records; every Record carries the same ordered column set, discovered from
// the source header row. Ragged source rows are padded with an explicit null
// marker rather than a plain empty string, so downstream code can tell
// "missing cell" apart from "cell containing the empty string".
//
// The engine produces FormattedRecords: target-label keyed rows whose key
// order is always ascending, independent of the input column order.
//
// =============================================================================

package record

import "sort"

// =============================================================================
// VALUE
// =============================================================================

// Value is a single cell value: either a string or an explicit null marker.
type Value struct {
	text string
	null bool
}

// String builds a string-valued cell.
func String(s string) Value {
	return Value{text: s}
}

// Null builds an explicit null cell (missing in the source row).
func Null() Value {
	return Value{null: true}
}

// IsNull reports whether this cell is the explicit null marker.
func (v Value) IsNull() bool {
	return v.null
}

// Text returns the cell content, with null rendered as the empty string.
func (v Value) Text() string {
	if v.null {
		return ""
	}
	return v.text
}

// =============================================================================
// RECORD
// =============================================================================

// Record is an ordered mapping from source column name to cell value.
// Iteration order is the column order discovered in the source header.
type Record struct {
	columns []string
	values  map[string]Value
}

// New creates an empty Record over the given column set.
// The columns slice is shared with the caller and must not be mutated.
func New(columns []string) Record {
	return Record{
		columns: columns,
		values:  make(map[string]Value, len(columns)),
	}
}

// Columns returns the record's column names in source order.
func (r Record) Columns() []string {
	return r.columns
}

// Set stores a cell value for a column.
func (r Record) Set(column string, v Value) {
	r.values[column] = v
}

// Value returns the cell for a column. Unset columns read as null.
func (r Record) Value(column string) Value {
	v, ok := r.values[column]
	if !ok {
		return Null()
	}
	return v
}

// Has reports whether a column exists in this record's column set.
func (r Record) Has(column string) bool {
	for _, c := range r.columns {
		if c == column {
			return true
		}
	}
	return false
}

// =============================================================================
// DATASET
// =============================================================================

// Dataset is the result of parsing one input file.
type Dataset struct {
	// Headers contains the column names in the order discovered in the
	// source header row. Every Record shares this exact column set.
	Headers []string

	// Records contains the data rows.
	Records []Record

	// SourceFile is the name of the file the data came from.
	SourceFile string

	// RowCount is the number of data rows (excluding the header).
	RowCount int

	// ColumnCount is the number of columns.
	ColumnCount int
}

// =============================================================================
// FORMATTED RECORD
// =============================================================================

// FormattedRecord is one output row: target label -> final string value.
// Keys always enumerate in ascending lexicographic order so that the preview
// and the export have a deterministic column order.
type FormattedRecord struct {
	values map[string]string
}

// NewFormatted creates an empty FormattedRecord.
func NewFormatted() *FormattedRecord {
	return &FormattedRecord{values: make(map[string]string)}
}

// Set stores (or overwrites) the value for a target label.
func (f *FormattedRecord) Set(label, value string) {
	f.values[label] = value
}

// Value returns the value for a target label and whether it is present.
func (f *FormattedRecord) Value(label string) (string, bool) {
	v, ok := f.values[label]
	return v, ok
}

// Has reports whether a target label is present.
func (f *FormattedRecord) Has(label string) bool {
	_, ok := f.values[label]
	return ok
}

// Len returns the number of target labels in this record.
func (f *FormattedRecord) Len() int {
	return len(f.values)
}

// Keys returns the target labels in ascending order.
func (f *FormattedRecord) Keys() []string {
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
