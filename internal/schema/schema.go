// =============================================================================
// Data Formatter - Target Schemas
// =============================================================================
//
// This package defines the fixed, ordered target column sets a source file
// can be mapped onto. Two record kinds are supported:
//
//   - customer: registration data (CNPJ/CPF, address, phones, ...)
//   - product : stock data (product code, description, location, ...)
//
// Every schema is terminated by the reserved Discard label. Discard is a
// valid mapping target meaning "drop this source column from the output";
// it is never a real output column.
//
// The labels are the fixed literals the downstream system expects and are
// not translated.
//
// =============================================================================

package schema

import "fmt"

// Discard is the sentinel target label meaning "drop this source column".
const Discard = "Descartar"

// Kind identifies a target schema variant.
type Kind string

const (
	// KindCustomer is the customer registration schema.
	KindCustomer Kind = "customer"

	// KindProduct is the product stock schema.
	KindProduct Kind = "product"
)

// ParseKind converts a user-supplied string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindCustomer:
		return KindCustomer, nil
	case KindProduct:
		return KindProduct, nil
	default:
		return "", fmt.Errorf("unknown schema kind %q (valid: customer, product)", s)
	}
}

// customerLabels is the fixed customer schema, Discard last.
var customerLabels = []string{
	"Código",
	"CNPJ/CPF",
	"Razão Social",
	"Nome Fantasia",
	"Inscrição Estadual",
	"RG",
	"Data Nascimento",
	"Rua",
	"Número",
	"Cep",
	"Complemento",
	"Bairro",
	"Cidade",
	"Estado",
	"Telefone 1",
	"Telefone 2",
	"Email",
	"Vendedor",
	Discard,
}

// productLabels is the fixed product schema, Discard last.
var productLabels = []string{
	"Código Prod.",
	"Descrição Produto",
	"Local de Estoque",
	"Nº de Série",
	"Quantidade",
	Discard,
}

// TargetSchema is an ordered set of distinct target column labels.
type TargetSchema struct {
	kind   Kind
	labels []string
}

// ForKind returns the schema for a record kind.
func ForKind(kind Kind) (TargetSchema, error) {
	switch kind {
	case KindCustomer:
		return TargetSchema{kind: kind, labels: customerLabels}, nil
	case KindProduct:
		return TargetSchema{kind: kind, labels: productLabels}, nil
	default:
		return TargetSchema{}, fmt.Errorf("unknown schema kind %q", kind)
	}
}

// Kind returns the schema's record kind.
func (s TargetSchema) Kind() Kind {
	return s.kind
}

// Labels returns all target labels in schema order, including Discard.
func (s TargetSchema) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// OutputLabels returns the target labels that may appear in the output,
// i.e. all labels except Discard.
func (s TargetSchema) OutputLabels() []string {
	out := make([]string, 0, len(s.labels)-1)
	for _, l := range s.labels {
		if l != Discard {
			out = append(out, l)
		}
	}
	return out
}

// Contains reports whether a label belongs to this schema (Discard included).
func (s TargetSchema) Contains(label string) bool {
	for _, l := range s.labels {
		if l == label {
			return true
		}
	}
	return false
}
