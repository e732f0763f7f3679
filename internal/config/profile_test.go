package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/data-formatter/internal/mapping"
	"github.com/ginjaninja78/data-formatter/internal/schema"
)

const customerProfileYAML = `
kind: customer
columns:
  Nome: Descartar
  Telefone: "Telefone 1"
  Cidade: Cidade
merge:
  "Razão Social":
    - { column: Sobrenome, order: 2 }
    - { column: Nome, order: 1 }
templates:
  "Rua": "{Logradouro}, {Bairro}"
`

func TestLoadProfile(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "profile.yaml", customerProfileYAML)

	p, err := LoadProfile(path)
	require.NoError(t, err)

	assert.Equal(t, "customer", p.Kind)
	assert.Equal(t, "Telefone 1", p.Columns["Telefone"])
	assert.Len(t, p.Merge["Razão Social"], 2)
	assert.Equal(t, "{Logradouro}, {Bairro}", p.Templates["Rua"])

	kind, err := p.SchemaKind()
	require.NoError(t, err)
	assert.Equal(t, schema.KindCustomer, kind)
}

func TestLoadProfileRejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"missing kind", "columns:\n  Nome: Descartar"},
		{"unknown kind", "kind: invoice"},
		{"unknown target label", "kind: customer\ncolumns:\n  Nome: \"Not A Label\""},
		{"merge targeting discard", "kind: customer\nmerge:\n  Descartar:\n    - { column: Nome, order: 1 }"},
		{"merge order below one", "kind: customer\nmerge:\n  \"Razão Social\":\n    - { column: Nome, order: 0 }"},
		{"merge missing column", "kind: customer\nmerge:\n  \"Razão Social\":\n    - { order: 1 }"},
		{"template targeting discard", "kind: customer\ntemplates:\n  Descartar: \"{Nome}\""},
		{"template for unknown target", "kind: customer\ntemplates:\n  \"Not A Label\": \"{Nome}\""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeTemp(t, "profile.yaml", tt.content)
			_, err := LoadProfile(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestProfileApply(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "profile.yaml", customerProfileYAML)
	p, err := LoadProfile(path)
	require.NoError(t, err)

	store := mapping.NewStore()
	store.Reset([]string{"Nome", "Sobrenome", "Telefone", "Cidade"})
	p.Apply(store)

	target, ok := store.Target("Telefone")
	require.True(t, ok)
	assert.Equal(t, "Telefone 1", target)

	// Unmentioned seeded columns keep their Discard default.
	target, ok = store.Target("Sobrenome")
	require.True(t, ok)
	assert.Equal(t, schema.Discard, target)

	// Merge entries come back ascending regardless of file order.
	rule := store.MergeRule("Razão Social")
	require.Len(t, rule, 2)
	assert.Equal(t, mapping.MergeEntry{Column: "Nome", Position: 1}, rule[0])
	assert.Equal(t, mapping.MergeEntry{Column: "Sobrenome", Position: 2}, rule[1])

	template, ok := store.Template("Rua")
	require.True(t, ok)
	assert.Equal(t, "{Logradouro}, {Bairro}", template)
}

func TestProfileRoundTrip(t *testing.T) {
	t.Parallel()

	p := &Profile{
		Kind: "product",
		Columns: map[string]string{
			"SKU": "Código Prod.",
			"Qty": "Quantidade",
		},
		Templates: map[string]string{
			"Descrição Produto": "{Name} ({SKU})",
		},
	}

	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, SaveProfile(path, p))

	got, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}
