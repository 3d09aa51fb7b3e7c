package domain

import (
	"strings"
	"testing"

	"github.com/streamdrop-lab/backend/internal/model"
	"github.com/streamdrop-lab/backend/internal/repository"
	"github.com/streamdrop-lab/backend/pkg/errorx"
	"github.com/streamdrop-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_referralDomain_Create(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	referralDomain := NewReferralDomain(
		repository.NewReferralRepository(), repository.NewUserRepository())

	// A generated code is prefixed with the username.
	ctxUser2 := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	resp, err := referralDomain.Create(ctxUser2, &model.CreateReferralCodeRequest{})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(resp.ReferralCode.Code, "alice-"))
	require.True(t, resp.ReferralCode.IsActive)

	// A requested code is kept as-is.
	resp, err = referralDomain.Create(ctxUser2, &model.CreateReferralCodeRequest{
		Code: "alice-CUSTOM",
	})
	require.NoError(t, err)
	require.Equal(t, "alice-CUSTOM", resp.ReferralCode.Code)

	// Codes are globally unique.
	ctxUser3 := testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	_, err = referralDomain.Create(ctxUser3, &model.CreateReferralCodeRequest{
		Code: "alice-CUSTOM",
	})
	require.Error(t, err)
	require.Equal(t, errorx.AlreadyExists, err.(errorx.Error).Code)

	// Anonymous requests are rejected.
	_, err = referralDomain.Create(ctx, &model.CreateReferralCodeRequest{})
	require.Error(t, err)
	require.Equal(t, errorx.Unauthenticated, err.(errorx.Error).Code)

	codes, err := referralDomain.GetMine(ctxUser2, &model.GetMyReferralCodesRequest{})
	require.NoError(t, err)
	require.Len(t, codes.ReferralCodes, 2)
}

func Test_referralDomain_GetByCode(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	referralDomain := NewReferralDomain(
		repository.NewReferralRepository(), repository.NewUserRepository())

	ctxUser2 := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	_, err := referralDomain.Create(ctxUser2, &model.CreateReferralCodeRequest{
		Code: "alice-LOOKUP",
	})
	require.NoError(t, err)

	resp, err := referralDomain.GetByCode(ctx, &model.GetReferralCodeRequest{
		Code: "alice-LOOKUP",
	})
	require.NoError(t, err)
	require.Equal(t, testutil.User2.ID, resp.ReferralCode.UserID)

	_, err = referralDomain.GetByCode(ctx, &model.GetReferralCodeRequest{
		Code: "no-such-code",
	})
	require.Error(t, err)
	require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)
}
