package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	type EnumString string

	bar := New(EnumString("bar"))
	require.Equal(t, bar, EnumString("bar"))

	v, err := ToEnum[EnumString]("bar")
	require.NoError(t, err)
	require.Equal(t, v, bar)

	_, err = ToEnum[EnumString]("foo")
	require.Error(t, err)
}

func TestMembers(t *testing.T) {
	type EnumMember string

	a := New(EnumMember("a"))
	b := New(EnumMember("b"))

	members := Members[EnumMember]()
	require.Len(t, members, 2)
	require.Contains(t, members, a)
	require.Contains(t, members, b)
}
