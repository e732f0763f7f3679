// =============================================================================
// Data Formatter - Column Normalization Rules
// =============================================================================
//
// Normalization is keyed by the TARGET label, not the source column: whatever
// messy column feeds "Telefone 1", the result is digits truncated to eleven
// characters. The rules live in a lookup table of label -> transform function
// so new columns can be added without touching the engine.
//
// Every transform degrades instead of failing: an unparseable birth date
// passes through unchanged. A normalization problem never aborts a record.
//
// =============================================================================

package formatter

import (
	"strconv"
	"strings"
	"time"
)

// birthDateLayout is the output format for normalized dates.
const birthDateLayout = "02/01/2006"

// maxPhoneDigits caps phone values (DDD + 9-digit number).
const maxPhoneDigits = 11

// normalizeFunc transforms one raw cell value for a specific target label.
type normalizeFunc func(string) string

// normalizers maps target labels to their transform. Targets absent from
// this table pass values through unchanged.
var normalizers = map[string]normalizeFunc{
	"CNPJ/CPF":        digitsOnly,
	"RG":              digitsOnly,
	"Quantidade":      digitsOnly,
	"Telefone 1":      normalizePhone,
	"Telefone 2":      normalizePhone,
	"Data Nascimento": normalizeBirthDate,
}

// Normalize applies the target label's transform to a raw value. Labels
// without a rule return the value untouched.
func Normalize(target, raw string) string {
	fn, ok := normalizers[target]
	if !ok {
		return raw
	}
	return fn(raw)
}

// digitsOnly strips every non-digit character.
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizePhone strips non-digits and truncates to maxPhoneDigits.
func normalizePhone(s string) string {
	digits := digitsOnly(s)
	if len(digits) > maxPhoneDigits {
		return digits[:maxPhoneDigits]
	}
	return digits
}

// dateLayouts are tried in order when parsing a birth date. Day-first
// layouts come before month-first ones: the data this tool consumes is
// Brazilian, where 03/04/1990 means April 3rd.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006-01-02",
	"2006/01/02",
	"02.01.2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// excelEpoch is day zero of the 1900 date system used by XLSX serials.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// normalizeBirthDate reformats a date value as DD/MM/YYYY. Values that do
// not parse as a date (or as a spreadsheet date serial) pass through
// unchanged; this transform never fails.
func normalizeBirthDate(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(birthDateLayout)
		}
	}

	// Spreadsheet cells sometimes surface dates as raw day serials.
	if serial, err := strconv.ParseFloat(trimmed, 64); err == nil {
		if serial >= 1 && serial < 200000 {
			return excelEpoch.AddDate(0, 0, int(serial)).Format(birthDateLayout)
		}
	}

	return s
}
