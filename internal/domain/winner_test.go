package domain

import (
	"context"
	"testing"

	"github.com/streamdrop-lab/backend/internal/model"
	"github.com/streamdrop-lab/backend/internal/repository"
	"github.com/streamdrop-lab/backend/pkg/errorx"
	"github.com/streamdrop-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

// enterEndedGiveaway submits an entry for Giveaway2 through the domain; the
// entry window is not gated by the end date.
func enterEndedGiveaway(ctx context.Context, userID uint64) (*model.Entry, error) {
	resp, err := newTestEntryDomain().Create(
		testutil.NewMockContextWithUserID(ctx, userID),
		&model.CreateEntryRequest{GiveawayID: testutil.Giveaway2.ID})
	if err != nil {
		return nil, err
	}

	return &resp.Entry, nil
}

func newTestWinnerDomain() *winnerDomain {
	return NewWinnerDomain(
		repository.NewGiveawayRepository(),
		repository.NewEntryRepository(),
		repository.NewWinnerRepository(),
		repository.NewUserRepository(),
	)
}

func Test_winnerDomain_Select(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	winnerDomain := newTestWinnerDomain()

	ctxAdmin := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)

	// Only admins draw winners.
	ctxUser2 := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	_, err := winnerDomain.Select(ctxUser2, &model.SelectWinnerRequest{
		GiveawayID: testutil.Giveaway2.ID,
	})
	require.Error(t, err)
	require.Equal(t, errorx.PermissionDenied, err.(errorx.Error).Code)

	// Unknown giveaway.
	_, err = winnerDomain.Select(ctxAdmin, &model.SelectWinnerRequest{GiveawayID: 99999})
	require.Error(t, err)
	require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)

	// Giveaway1 has not ended yet.
	_, err = winnerDomain.Select(ctxAdmin, &model.SelectWinnerRequest{
		GiveawayID: testutil.Giveaway1.ID,
	})
	require.Error(t, err)
	require.Equal(t, errorx.NotEnded, err.(errorx.Error).Code)

	// Giveaway2 has ended but nobody entered.
	_, err = winnerDomain.Select(ctxAdmin, &model.SelectWinnerRequest{
		GiveawayID: testutil.Giveaway2.ID,
	})
	require.Error(t, err)
	require.Equal(t, errorx.NoEntries, err.(errorx.Error).Code)

	// User3 enters the ended giveaway.
	entryRepo := repository.NewEntryRepository()
	entry, err := enterEndedGiveaway(ctx, testutil.User3.ID)
	require.NoError(t, err)

	resp, err := winnerDomain.Select(ctxAdmin, &model.SelectWinnerRequest{
		GiveawayID: testutil.Giveaway2.ID,
	})
	require.NoError(t, err)
	require.Equal(t, testutil.User3.ID, resp.Winner.UserID)
	require.Equal(t, entry.ID, resp.Winner.EntryID)

	// The winning entry is flagged.
	winningEntry, err := entryRepo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	require.True(t, winningEntry.IsWinner)

	// A second draw for the same giveaway is rejected.
	_, err = winnerDomain.Select(ctxAdmin, &model.SelectWinnerRequest{
		GiveawayID: testutil.Giveaway2.ID,
	})
	require.Error(t, err)
	require.Equal(t, errorx.AlreadyExists, err.(errorx.Error).Code)

	// The winner shows up in the listings.
	winners, err := winnerDomain.GetByGiveaway(ctx, &model.GetGiveawayWinnersRequest{
		GiveawayID: testutil.Giveaway2.ID,
	})
	require.NoError(t, err)
	require.Len(t, winners.Winners, 1)

	recent, err := winnerDomain.GetRecent(ctx, &model.GetRecentWinnersRequest{})
	require.NoError(t, err)
	require.Len(t, recent.Winners, 1)
	require.Equal(t, testutil.User3.Username, recent.Winners[0].User.Username)
	require.Equal(t, testutil.Giveaway2.Title, recent.Winners[0].Giveaway.Title)
}

func Test_winnerDomain_Select_winnerAmongEntries(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	winnerDomain := newTestWinnerDomain()

	entered := map[uint64]bool{}
	for _, userID := range []uint64{testutil.User2.ID, testutil.User3.ID} {
		_, err := enterEndedGiveaway(ctx, userID)
		require.NoError(t, err)
		entered[userID] = true
	}

	ctxAdmin := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := winnerDomain.Select(ctxAdmin, &model.SelectWinnerRequest{
		GiveawayID: testutil.Giveaway2.ID,
	})
	require.NoError(t, err)
	require.True(t, entered[resp.Winner.UserID])
}
