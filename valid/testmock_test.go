//go:build validity_testmock

package valid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsafeNewUnvalidated(t *testing.T) {
	t.Parallel()

	// 7 is odd, so this value would be rejected by the predicate; the escape
	// hatch must wrap it anyway.
	_, err := Validate(evenCount(7))
	require.Error(t, err)

	wrapped := UnsafeNewUnvalidated(evenCount(7))
	assert.Equal(t, evenCount(7), wrapped.Get())
	assert.Equal(t, evenCount(7), wrapped.Unwrap())
}
