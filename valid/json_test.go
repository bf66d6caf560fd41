package valid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("transparent", func(t *testing.T) {
		t.Parallel()

		wrapped, err := Validate(tag("release"))
		require.NoError(t, err)

		viaWrapper, err := json.Marshal(wrapped)
		require.NoError(t, err)

		direct, err := json.Marshal(tag("release"))
		require.NoError(t, err)

		assert.JSONEq(t, string(direct), string(viaWrapper))
	})

	t.Run("zero wrapper", func(t *testing.T) {
		t.Parallel()

		var zero Valid[tag]

		_, err := json.Marshal(zero)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrZeroValid)
	})
}

func TestUnmarshalValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		wrapped, err := UnmarshalValidate[tag]([]byte(`"release"`))
		require.NoError(t, err)
		assert.Equal(t, tag("release"), wrapped.Get())
	})

	t.Run("decodes but fails the predicate", func(t *testing.T) {
		t.Parallel()

		_, err := UnmarshalValidate[tag]([]byte(`""`))
		assert.ErrorIs(t, err, errEmptyTag)
	})

	t.Run("malformed document", func(t *testing.T) {
		t.Parallel()

		_, err := UnmarshalValidate[tag]([]byte(`{`))
		assert.Error(t, err)
	})
}

func TestUnmarshalValidateWith(t *testing.T) {
	t.Parallel()

	store := &roster{members: map[string]bool{"ada": true}}

	wrapped, err := UnmarshalValidateWith[member]([]byte(`"ada"`), store)
	require.NoError(t, err)
	assert.Equal(t, member("ada"), wrapped.Get())

	_, err = UnmarshalValidateWith[member]([]byte(`"grace"`), store)
	assert.ErrorIs(t, err, errNotOnRoster)
}
