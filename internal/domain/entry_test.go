package domain

import (
	"testing"

	"github.com/streamdrop-lab/backend/internal/model"
	"github.com/streamdrop-lab/backend/internal/repository"
	"github.com/streamdrop-lab/backend/pkg/errorx"
	"github.com/streamdrop-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestEntryDomain() *entryDomain {
	return NewEntryDomain(
		repository.NewGiveawayRepository(),
		repository.NewEntryRepository(),
		repository.NewReferralRepository(),
		nil,
	)
}

func Test_entryDomain_Create(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	entryDomain := newTestEntryDomain()

	ctxUser2 := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	resp, err := entryDomain.Create(ctxUser2, &model.CreateEntryRequest{
		GiveawayID: testutil.Giveaway1.ID,
	})
	require.NoError(t, err)
	require.Equal(t, testutil.User2.ID, resp.Entry.UserID)
	require.Equal(t, "direct", resp.Entry.EntrySource)

	// A second submission of the same user is rejected.
	_, err = entryDomain.Create(ctxUser2, &model.CreateEntryRequest{
		GiveawayID: testutil.Giveaway1.ID,
	})
	require.Error(t, err)
	require.Equal(t, errorx.AlreadyExists, err.(errorx.Error).Code)

	// Another user can still enter.
	ctxUser3 := testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	_, err = entryDomain.Create(ctxUser3, &model.CreateEntryRequest{
		GiveawayID: testutil.Giveaway1.ID,
	})
	require.NoError(t, err)

	// Unknown giveaway.
	_, err = entryDomain.Create(ctxUser2, &model.CreateEntryRequest{GiveawayID: 99999})
	require.Error(t, err)
	require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)

	// An ended giveaway still accepts entries; only a missing giveaway and a
	// duplicate submission are rejected.
	resp, err = entryDomain.Create(ctxUser2, &model.CreateEntryRequest{
		GiveawayID: testutil.Giveaway2.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, resp.Entry.ID)

	// Anonymous requests are rejected.
	_, err = entryDomain.Create(ctx, &model.CreateEntryRequest{
		GiveawayID: testutil.Giveaway1.ID,
	})
	require.Error(t, err)
	require.Equal(t, errorx.Unauthenticated, err.(errorx.Error).Code)

	count, err := entryDomain.Count(ctx, &model.GetEntryCountRequest{
		GiveawayID: testutil.Giveaway1.ID,
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, count.Count)
}

func Test_entryDomain_CreateWithReferral(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	entryDomain := newTestEntryDomain()
	referralDomain := NewReferralDomain(
		repository.NewReferralRepository(), repository.NewUserRepository())

	// User2 owns a referral code.
	ctxUser2 := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	codeResp, err := referralDomain.Create(ctxUser2, &model.CreateReferralCodeRequest{
		Code: "alice-FRIENDS",
	})
	require.NoError(t, err)

	// User3 enters with the code. User2 has no entry yet, so a bonus entry is
	// awarded.
	ctxUser3 := testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	resp, err := entryDomain.CreateWithReferral(ctxUser3, &model.CreateEntryWithReferralRequest{
		GiveawayID:   testutil.Giveaway1.ID,
		ReferralCode: "alice-FRIENDS",
	})
	require.NoError(t, err)
	require.Equal(t, "direct", resp.Entry.EntrySource)

	ownerEntries, err := entryDomain.GetByUser(ctx, &model.GetUserEntriesRequest{
		UserID: testutil.User2.ID,
	})
	require.NoError(t, err)
	require.Len(t, ownerEntries.Entries, 1)
	require.Equal(t, "referral_bonus", ownerEntries.Entries[0].EntrySource)
	require.Equal(t, codeResp.ReferralCode.ID, ownerEntries.Entries[0].ReferralCodeID)

	// The bonus entry does not block User2 from entering directly.
	_, err = entryDomain.Create(ctxUser2, &model.CreateEntryRequest{
		GiveawayID: testutil.Giveaway1.ID,
	})
	require.NoError(t, err)

	ownerEntries, err = entryDomain.GetByUser(ctx, &model.GetUserEntriesRequest{
		UserID: testutil.User2.ID,
	})
	require.NoError(t, err)
	require.Len(t, ownerEntries.Entries, 2)

	// Referral stats count the referred entry.
	stats, err := referralDomain.GetStats(ctx, &model.GetReferralStatsRequest{
		UserID: testutil.User2.ID,
	})
	require.NoError(t, err)
	require.Len(t, stats.Stats, 1)
	require.EqualValues(t, 1, stats.Stats[0].EntriesGenerated)
}

func Test_entryDomain_CreateWithReferral_noSelfBonus(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	entryDomain := newTestEntryDomain()
	referralDomain := NewReferralDomain(
		repository.NewReferralRepository(), repository.NewUserRepository())

	ctxUser2 := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	_, err := referralDomain.Create(ctxUser2, &model.CreateReferralCodeRequest{
		Code: "alice-SELF",
	})
	require.NoError(t, err)

	// Entering with your own code records the entry but never the bonus.
	_, err = entryDomain.CreateWithReferral(ctxUser2, &model.CreateEntryWithReferralRequest{
		GiveawayID:   testutil.Giveaway1.ID,
		ReferralCode: "alice-SELF",
	})
	require.NoError(t, err)

	entries, err := entryDomain.GetByUser(ctx, &model.GetUserEntriesRequest{
		UserID: testutil.User2.ID,
	})
	require.NoError(t, err)
	require.Len(t, entries.Entries, 1)
	require.Equal(t, "direct", entries.Entries[0].EntrySource)
}

func Test_entryDomain_CreateWithReferral_ownerAlreadyEntered(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	entryDomain := newTestEntryDomain()
	referralDomain := NewReferralDomain(
		repository.NewReferralRepository(), repository.NewUserRepository())

	ctxUser2 := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	_, err := referralDomain.Create(ctxUser2, &model.CreateReferralCodeRequest{
		Code: "alice-BUSY",
	})
	require.NoError(t, err)

	// The owner enters directly before anyone uses the code.
	_, err = entryDomain.Create(ctxUser2, &model.CreateEntryRequest{
		GiveawayID: testutil.Giveaway1.ID,
	})
	require.NoError(t, err)

	// A referred entry still records the audit but awards no bonus, since the
	// owner already holds an entry for this giveaway.
	ctxUser3 := testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	_, err = entryDomain.CreateWithReferral(ctxUser3, &model.CreateEntryWithReferralRequest{
		GiveawayID:   testutil.Giveaway1.ID,
		ReferralCode: "alice-BUSY",
	})
	require.NoError(t, err)

	ownerEntries, err := entryDomain.GetByUser(ctx, &model.GetUserEntriesRequest{
		UserID: testutil.User2.ID,
	})
	require.NoError(t, err)
	require.Len(t, ownerEntries.Entries, 1)
	require.Equal(t, "direct", ownerEntries.Entries[0].EntrySource)

	stats, err := referralDomain.GetStats(ctx, &model.GetReferralStatsRequest{
		UserID: testutil.User2.ID,
	})
	require.NoError(t, err)
	require.Len(t, stats.Stats, 1)
	require.EqualValues(t, 1, stats.Stats[0].EntriesGenerated)
}

func Test_entryDomain_CreateWithReferral_unknownCode(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	entryDomain := newTestEntryDomain()

	// An unknown code never blocks the entry.
	ctxUser3 := testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	resp, err := entryDomain.CreateWithReferral(ctxUser3, &model.CreateEntryWithReferralRequest{
		GiveawayID:   testutil.Giveaway1.ID,
		ReferralCode: "no-such-code",
	})
	require.NoError(t, err)
	require.NotZero(t, resp.Entry.ID)

	count, err := entryDomain.Count(ctx, &model.GetEntryCountRequest{
		GiveawayID: testutil.Giveaway1.ID,
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, count.Count)
}

func Test_entryDomain_CreateWithReferral_oneBonusPerGiveaway(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	entryDomain := newTestEntryDomain()
	referralDomain := NewReferralDomain(
		repository.NewReferralRepository(), repository.NewUserRepository())

	ctxUser1 := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := referralDomain.Create(ctxUser1, &model.CreateReferralCodeRequest{
		Code: "admin-SHARE",
	})
	require.NoError(t, err)

	// Two different users are referred with the same code. Only the first
	// referral awards a bonus to the owner.
	ctxUser2 := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	_, err = entryDomain.CreateWithReferral(ctxUser2, &model.CreateEntryWithReferralRequest{
		GiveawayID:   testutil.Giveaway1.ID,
		ReferralCode: "admin-SHARE",
	})
	require.NoError(t, err)

	ctxUser3 := testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	_, err = entryDomain.CreateWithReferral(ctxUser3, &model.CreateEntryWithReferralRequest{
		GiveawayID:   testutil.Giveaway1.ID,
		ReferralCode: "admin-SHARE",
	})
	require.NoError(t, err)

	ownerEntries, err := entryDomain.GetByUser(ctx, &model.GetUserEntriesRequest{
		UserID: testutil.User1.ID,
	})
	require.NoError(t, err)
	require.Len(t, ownerEntries.Entries, 1)

	// Both referrals are recorded in the stats regardless.
	stats, err := referralDomain.GetStats(ctx, &model.GetReferralStatsRequest{
		UserID: testutil.User1.ID,
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.Stats[0].EntriesGenerated)
}
