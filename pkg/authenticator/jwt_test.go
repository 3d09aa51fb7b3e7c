package authenticator_test

import (
	"testing"
	"time"

	"github.com/streamdrop-lab/backend/pkg/authenticator"
	"github.com/stretchr/testify/require"
)

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine[string]("secret", time.Minute)
	token, err := engine.Generate("sub", "abc")
	require.NoError(t, err)

	msg, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "abc", msg)
}

func TestJWTExpiration(t *testing.T) {
	engine := authenticator.NewTokenEngine[string]("secret", -time.Minute)
	token, err := engine.Generate("sub", "abc")
	require.NoError(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}

func TestJWTInvalidSecret(t *testing.T) {
	engine := authenticator.NewTokenEngine[string]("secret", time.Minute)
	token, err := engine.Generate("sub", "abc")
	require.NoError(t, err)

	other := authenticator.NewTokenEngine[string]("another-secret", time.Minute)
	_, err = other.Verify(token)
	require.Error(t, err)
}
