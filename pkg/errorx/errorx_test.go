package errorx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(NotFound, "Not found giveaway %d", 42)
	require.Equal(t, NotFound, err.Code)
	require.Equal(t, "Not found giveaway 42", err.Error())

	var errx Error
	require.True(t, errors.As(error(err), &errx))
	require.Equal(t, NotFound, errx.Code)
}

func TestUnknown(t *testing.T) {
	require.Equal(t, "Request failed", Unknown.Error())
	require.NotZero(t, Unknown.Code)
}
