package router

import (
	"errors"
	"testing"

	"github.com/streamdrop-lab/backend/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func Test_newErrorResponse(t *testing.T) {
	resp := newErrorResponse(errorx.New(errorx.NotFound, "Not found giveaway"))
	require.EqualValues(t, errorx.NotFound, resp.Code)
	require.Equal(t, "Not found giveaway", resp.Error)

	// Non-errorx errors never leak their message to the client.
	resp = newErrorResponse(errors.New("dial tcp: connection refused"))
	require.EqualValues(t, errorx.Unknown.Code, resp.Code)
	require.Equal(t, errorx.Unknown.Message, resp.Error)
}

func Test_newResponse(t *testing.T) {
	resp := newResponse(map[string]int{"count": 3})
	require.Zero(t, resp.Code)
	require.Empty(t, resp.Error)
	require.NotNil(t, resp.Data)
}
