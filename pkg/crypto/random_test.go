package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandIntn(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n := RandIntn(10)
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 10)
	}

	require.Equal(t, 0, RandIntn(1))
}

func TestRandRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n := RandRange(5, 8)
		require.GreaterOrEqual(t, n, 5)
		require.Less(t, n, 8)
	}
}

func TestGenerateRandomAlphanumeric(t *testing.T) {
	code := GenerateRandomAlphanumeric(8)
	require.Len(t, code, 8)
	for _, c := range code {
		require.True(t, strings.ContainsRune(codeAlphabet, c))
	}
}
