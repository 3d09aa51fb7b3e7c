package router

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_bindQuery(t *testing.T) {
	type request struct {
		GiveawayID uint64    `json:"giveaway_id"`
		Limit      int       `json:"limit"`
		Code       string    `json:"code"`
		Active     bool      `json:"is_active"`
		After      time.Time `json:"after"`
		Ignored    string    `json:"-"`
	}

	values := url.Values{}
	values.Set("giveaway_id", "42")
	values.Set("limit", "10")
	values.Set("code", "alice-ABC123")
	values.Set("is_active", "true")
	values.Set("after", "2026-01-02T15:04:05Z")

	var req request
	require.NoError(t, bindQuery(values, &req))
	require.EqualValues(t, 42, req.GiveawayID)
	require.Equal(t, 10, req.Limit)
	require.Equal(t, "alice-ABC123", req.Code)
	require.True(t, req.Active)
	require.Equal(t, 2026, req.After.Year())

	// Absent fields keep their zero value.
	var partial request
	require.NoError(t, bindQuery(url.Values{"code": {"x"}}, &partial))
	require.Zero(t, partial.GiveawayID)

	// Invalid numbers are rejected.
	require.Error(t, bindQuery(url.Values{"limit": {"ten"}}, &req))
}
