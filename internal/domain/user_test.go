package domain

import (
	"testing"

	"github.com/streamdrop-lab/backend/internal/model"
	"github.com/streamdrop-lab/backend/internal/repository"
	"github.com/streamdrop-lab/backend/pkg/errorx"
	"github.com/streamdrop-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_userDomain_FullScenario(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	userDomain := NewUserDomain(repository.NewUserRepository())

	// GetUser with an explicit id.
	resp, err := userDomain.GetUser(ctx, &model.GetUserRequest{ID: testutil.User2.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.User2.Username, resp.Username)
	require.False(t, resp.IsAdmin)

	// GetUser falls back to the requesting user.
	ctxUser3 := testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	resp, err = userDomain.GetUser(ctxUser3, &model.GetUserRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User3.Username, resp.Username)

	_, err = userDomain.GetUser(ctx, &model.GetUserRequest{ID: 99999})
	require.Error(t, err)
	require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)

	// Non-admins cannot grant the admin flag.
	_, err = userDomain.MakeAdmin(ctxUser3, &model.MakeAdminRequest{UserID: testutil.User2.ID})
	require.Error(t, err)
	require.Equal(t, errorx.PermissionDenied, err.(errorx.Error).Code)

	ctxAdmin := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err = userDomain.MakeAdmin(ctxAdmin, &model.MakeAdminRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)

	resp, err = userDomain.GetUser(ctx, &model.GetUserRequest{ID: testutil.User2.ID})
	require.NoError(t, err)
	require.True(t, resp.IsAdmin)

	_, err = userDomain.MakeAdmin(ctxAdmin, &model.MakeAdminRequest{UserID: 99999})
	require.Error(t, err)
	require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)
}
