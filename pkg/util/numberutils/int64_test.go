package numberutils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPositiveInt64(t *testing.T) {
	value, err := ToPositiveInt64("999999")
	require.NoError(t, err)
	assert.Equal(t, int64(999999), value)

	_, err = ToPositiveInt64("abc")
	require.Error(t, err)

	_, err = ToPositiveInt64("0")
	require.ErrorIs(t, err, strconv.ErrRange)

	_, err = ToPositiveInt64("-4")
	require.ErrorIs(t, err, strconv.ErrRange)
}

func TestIsInt64Positive(t *testing.T) {
	assert.True(t, IsInt64Positive(1))
	assert.False(t, IsInt64Positive(0))
	assert.False(t, IsInt64Positive(-1))
}
