package normalizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/optkit/normalizer"
)

func TestRegistry(t *testing.T) {
	t.Run("built-in kinds construct", func(t *testing.T) {
		for _, kind := range []string{
			"default", "keyvalue", "list", "number", "bool",
			"file", "json", "datetime", "enum", "enum-list",
		} {
			n, err := normalizer.New(kind, "a", "b")
			require.NoError(t, err, "kind should be registered: %s", kind)
			assert.NotNil(t, n)
		}
	})

	t.Run("enum kind receives the allowed values", func(t *testing.T) {
		n, err := normalizer.New("enum", "a", "b")
		require.NoError(t, err)

		_, err = n.Format("a")
		assert.NoError(t, err)
		_, err = n.Format("c")
		assert.Error(t, err)
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		_, err := normalizer.New("nope")
		assert.ErrorIs(t, err, normalizer.ErrUnknownKind)
	})

	t.Run("custom kinds can be registered", func(t *testing.T) {
		normalizer.Register("custom-upper", func([]string) normalizer.Normalizer {
			return normalizer.NewDefault()
		})

		n, err := normalizer.New("custom-upper")
		require.NoError(t, err)

		v, err := n.Format("as-is")
		require.NoError(t, err)
		assert.Equal(t, "as-is", v)
		assert.Contains(t, normalizer.Kinds(), "custom-upper")
	})
}

func TestDefault(t *testing.T) {
	n := normalizer.NewDefault()

	v, err := n.Format("anything at all")
	require.NoError(t, err)
	assert.Equal(t, "anything at all", v)

	assert.Nil(t, n.Complete("any"))
	assert.NotEmpty(t, n.Describe())
}

func TestList(t *testing.T) {
	n := normalizer.NewList()

	t.Run("splits on commas", func(t *testing.T) {
		v, err := n.Format("a,b,c")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, v)
	})

	t.Run("empty input yields empty slice", func(t *testing.T) {
		v, err := n.Format("")
		require.NoError(t, err)
		assert.Equal(t, []string{}, v)
	})

	t.Run("quoted commas stay literal", func(t *testing.T) {
		v, err := n.Format(`a,'b,c',d`)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b,c", "d"}, v)
	})
}
