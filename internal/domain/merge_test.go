package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dategen/internal/domain"
	"dategen/internal/domain/entities"
)

// rec builds a record from alternating key/value arguments.
func rec(kv ...any) *entities.Record {
	r := entities.NewRecord()
	for i := 0; i+1 < len(kv); i += 2 {
		r.Set(kv[i].(string), kv[i+1])
	}
	return r
}

func get(t *testing.T, r *entities.Record, key string) any {
	t.Helper()
	v, ok := r.Get(key)
	require.True(t, ok, "missing key %q", key)
	return v
}

func TestOverlay(t *testing.T) {
	t.Parallel()

	t.Run("override wins scalar conflicts", func(t *testing.T) {
		t.Parallel()
		got := domain.Overlay(rec("name", "cldr", "date_order", "DMY"), rec("date_order", "YMD"))
		assert.Equal(t, "YMD", get(t, got, "date_order"))
		assert.Equal(t, "cldr", get(t, got, "name"))
	})

	t.Run("keys keep primary order then override-only keys", func(t *testing.T) {
		t.Parallel()
		got := domain.Overlay(rec("b", "1", "a", "2"), rec("c", "3", "a", "4"))
		assert.Equal(t, []string{"b", "a", "c"}, got.Keys())
	})

	t.Run("sequences concatenate primary first", func(t *testing.T) {
		t.Parallel()
		got := domain.Overlay(rec("january", []any{"janvier", "janv"}), rec("january", []any{"jan"}))
		assert.Equal(t, []any{"janvier", "janv", "jan"}, get(t, got, "january"))
	})

	t.Run("mappings merge recursively", func(t *testing.T) {
		t.Parallel()
		got := domain.Overlay(
			rec("relative-type", rec("1 day ago", []any{"hier"}, "0 day ago", []any{"aujourd'hui"})),
			rec("relative-type", rec("1 day ago", []any{"hier soir"}, "in 1 day", []any{"demain"})),
		)
		inner := get(t, got, "relative-type").(*entities.Record)
		assert.Equal(t, []string{"1 day ago", "0 day ago", "in 1 day"}, inner.Keys())
		assert.Equal(t, []any{"hier", "hier soir"}, get(t, inner, "1 day ago"))
	})

	t.Run("shape mismatch takes the override", func(t *testing.T) {
		t.Parallel()
		got := domain.Overlay(rec("skip", []any{"le"}), rec("skip", rec("x", "y")))
		assert.IsType(t, &entities.Record{}, get(t, got, "skip"))

		got = domain.Overlay(rec("skip", rec("x", "y")), rec("skip", "none"))
		assert.Equal(t, "none", get(t, got, "skip"))
	})

	t.Run("nil sides read as empty", func(t *testing.T) {
		t.Parallel()
		got := domain.Overlay(nil, rec("name", "x"))
		assert.Equal(t, []string{"name"}, got.Keys())
		got = domain.Overlay(rec("name", "x"), nil)
		assert.Equal(t, []string{"name"}, got.Keys())
	})

	t.Run("inputs are not modified", func(t *testing.T) {
		t.Parallel()
		primary := rec("january", []any{"a"})
		got := domain.Overlay(primary, rec("january", []any{"b"}))
		got.Set("extra", "x")
		assert.Equal(t, []any{"a"}, get(t, primary, "january"))
		assert.False(t, primary.Has("extra"))
	})
}

func TestUnderlay(t *testing.T) {
	t.Parallel()

	t.Run("base fills gaps only", func(t *testing.T) {
		t.Parallel()
		got := domain.Underlay(rec("name", "fr"), rec("name", "base", "pertain", []any{"of"}))
		assert.Equal(t, "fr", get(t, got, "name"))
		assert.Equal(t, []any{"of"}, get(t, got, "pertain"))
		assert.Equal(t, []string{"name", "pertain"}, got.Keys())
	})

	t.Run("sequences keep language items first", func(t *testing.T) {
		t.Parallel()
		got := domain.Underlay(rec("skip", []any{"le"}), rec("skip", []any{" ", "."}))
		assert.Equal(t, []any{"le", " ", "."}, get(t, got, "skip"))
	})

	t.Run("shape mismatch keeps the language value", func(t *testing.T) {
		t.Parallel()
		got := domain.Underlay(rec("simplifications", "none"), rec("simplifications", []any{"x"}))
		assert.Equal(t, "none", get(t, got, "simplifications"))
	})
}

func TestDefaultName(t *testing.T) {
	t.Parallel()

	r := rec("date_order", "DMY")
	domain.DefaultName(r, "fr-CA")
	assert.Equal(t, "fr-CA", get(t, r, "name"))

	r = rec("name", "fr")
	domain.DefaultName(r, "fr-CA")
	assert.Equal(t, "fr", get(t, r, "name"))
}
