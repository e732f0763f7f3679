package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueNullMarker(t *testing.T) {
	t.Parallel()

	assert.True(t, Null().IsNull())
	assert.Equal(t, "", Null().Text())

	v := String("Maria")
	assert.False(t, v.IsNull())
	assert.Equal(t, "Maria", v.Text())

	// An empty string is a real value, not null.
	assert.False(t, String("").IsNull())
}

func TestRecordColumnOrderAndDefaults(t *testing.T) {
	t.Parallel()

	columns := []string{"Nome", "Telefone", "Email"}
	rec := New(columns)
	rec.Set("Nome", String("Maria"))
	rec.Set("Telefone", Null())

	assert.Equal(t, columns, rec.Columns())
	assert.Equal(t, "Maria", rec.Value("Nome").Text())
	assert.True(t, rec.Value("Telefone").IsNull())

	// Unset and unknown columns both read as null.
	assert.True(t, rec.Value("Email").IsNull())
	assert.True(t, rec.Value("Inexistente").IsNull())

	assert.True(t, rec.Has("Telefone"))
	assert.False(t, rec.Has("Inexistente"))
}

func TestFormattedRecordKeysSorted(t *testing.T) {
	t.Parallel()

	f := NewFormatted()
	f.Set("Telefone 1", "11988887777")
	f.Set("Cidade", "São Paulo")
	f.Set("Email", "maria@example.com")

	assert.Equal(t, []string{"Cidade", "Email", "Telefone 1"}, f.Keys())
	assert.Equal(t, 3, f.Len())

	v, ok := f.Value("Cidade")
	assert.True(t, ok)
	assert.Equal(t, "São Paulo", v)

	// Overwrites replace, not duplicate.
	f.Set("Cidade", "Campinas")
	assert.Equal(t, 3, f.Len())
	v, _ = f.Value("Cidade")
	assert.Equal(t, "Campinas", v)
}
