package normalizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/optkit/normalizer"
)

func TestEnum(t *testing.T) {
	t.Run("member passes through", func(t *testing.T) {
		n := normalizer.NewEnum([]string{"a", "b"})
		v, err := n.Format("a")
		require.NoError(t, err)
		assert.Equal(t, "a", v)
	})

	t.Run("non-member lists allowed values", func(t *testing.T) {
		n := normalizer.NewEnum([]string{"a", "b"})
		_, err := n.Format("c")
		require.Error(t, err)

		verr, ok := normalizer.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "Value must be one of 'a', 'b'", verr.Message)
	})

	t.Run("single-member set uses singular message", func(t *testing.T) {
		n := normalizer.NewEnum([]string{"only"})
		_, err := n.Format("other")
		require.Error(t, err)

		verr, ok := normalizer.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "Value must be 'only'", verr.Message)
	})

	t.Run("membership is case sensitive and exact", func(t *testing.T) {
		n := normalizer.NewEnum([]string{"a", "b"})
		_, err := n.Format("A")
		assert.True(t, normalizer.IsValidationError(err))
		_, err = n.Format(" a")
		assert.True(t, normalizer.IsValidationError(err))
	})

	t.Run("allowed set is copied at construction", func(t *testing.T) {
		allowed := []string{"a", "b"}
		n := normalizer.NewEnum(allowed)
		allowed[0] = "mutated"

		_, err := n.Format("a")
		assert.NoError(t, err)
	})

	t.Run("complete returns the finalized set", func(t *testing.T) {
		n := normalizer.NewEnum([]string{"b", "a"})
		assert.Equal(t, []string{"a ", "b "}, n.Complete(""))
	})
}

func TestEnumList(t *testing.T) {
	t.Run("members with duplicates removed", func(t *testing.T) {
		n := normalizer.NewEnumList([]string{"a", "b"})
		v, err := n.Format("a,b,a")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, v)
	})

	t.Run("first occurrence order preserved", func(t *testing.T) {
		n := normalizer.NewEnumList([]string{"a", "b", "c"})
		v, err := n.Format("c,a,c,b")
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a", "b"}, v)
	})

	t.Run("empty input yields empty slice", func(t *testing.T) {
		n := normalizer.NewEnumList([]string{"a", "b"})
		v, err := n.Format("")
		require.NoError(t, err)
		assert.Equal(t, []string{}, v)
	})

	t.Run("elements are not trimmed before the membership check", func(t *testing.T) {
		n := normalizer.NewEnumList([]string{"a", "b"})
		_, err := n.Format("a, b")
		require.Error(t, err)

		verr, ok := normalizer.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "Value must be a combination of 'a', 'b'", verr.Message)
	})

	t.Run("non-member element rejects the whole value", func(t *testing.T) {
		n := normalizer.NewEnumList([]string{"a", "b"})
		_, err := n.Format("a,c")
		assert.True(t, normalizer.IsValidationError(err))
	})

	t.Run("complete returns the finalized set", func(t *testing.T) {
		n := normalizer.NewEnumList([]string{"b", "a"})
		assert.Equal(t, []string{"a ", "b "}, n.Complete(""))
	})
}
