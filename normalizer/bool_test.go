package normalizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/optkit/normalizer"
)

func TestBool(t *testing.T) {
	n := normalizer.NewBool()

	t.Run("truthy spellings", func(t *testing.T) {
		for _, raw := range []string{"true", "t", "yes", "y", "1", "TRUE", "Yes", "Y"} {
			v, err := n.Format(raw)
			require.NoError(t, err, "value should be truthy: %s", raw)
			assert.Equal(t, true, v)
		}
	})

	t.Run("falsy spellings", func(t *testing.T) {
		for _, raw := range []string{"false", "f", "no", "n", "0", "FALSE", "No", "N"} {
			v, err := n.Format(raw)
			require.NoError(t, err, "value should be falsy: %s", raw)
			assert.Equal(t, false, v)
		}
	})

	t.Run("unrecognized spelling lists accepted values", func(t *testing.T) {
		_, err := n.Format("maybe")
		require.Error(t, err)

		verr, ok := normalizer.AsValidationError(err)
		require.True(t, ok)
		for _, spelling := range []string{"true", "yes", "false", "no"} {
			assert.Contains(t, verr.Message, spelling)
		}
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		_, err := n.Format("")
		assert.True(t, normalizer.IsValidationError(err))
	})

	t.Run("complete ignores the prefix", func(t *testing.T) {
		assert.Equal(t, []string{"yes ", "no "}, n.Complete(""))
		assert.Equal(t, []string{"yes ", "no "}, n.Complete("zzz"))
	})
}
