package domain

import (
	"testing"

	"github.com/streamdrop-lab/backend/internal/model"
	"github.com/streamdrop-lab/backend/internal/repository"
	"github.com/streamdrop-lab/backend/pkg/errorx"
	"github.com/streamdrop-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_authDomain_FullScenario(t *testing.T) {
	ctx := testutil.NewMockContext()
	authDomain := NewAuthDomain(repository.NewUserRepository())

	// Signup successfully.
	signupResp, err := authDomain.Signup(ctx, &model.SignupRequest{
		Username: "carol",
		Password: "super-secret",
		Email:    "carol@example.com",
		FullName: "Carol Jones",
		Country:  "Canada",
	})
	require.NoError(t, err)
	require.Equal(t, "carol", signupResp.User.Username)
	require.NotEmpty(t, signupResp.AccessToken)
	require.False(t, signupResp.User.IsAdmin)

	// Cannot reuse the username.
	_, err = authDomain.Signup(ctx, &model.SignupRequest{
		Username: "carol",
		Password: "another-secret",
		Email:    "carol2@example.com",
	})
	require.Error(t, err)
	require.Equal(t, errorx.AlreadyExists, err.(errorx.Error).Code)

	// Cannot reuse the email either.
	_, err = authDomain.Signup(ctx, &model.SignupRequest{
		Username: "carol2",
		Password: "another-secret",
		Email:    "carol@example.com",
	})
	require.Error(t, err)
	require.Equal(t, errorx.AlreadyExists, err.(errorx.Error).Code)

	// Login with the right password.
	loginResp, err := authDomain.Login(ctx, &model.LoginRequest{
		Username: "carol",
		Password: "super-secret",
	})
	require.NoError(t, err)
	require.Equal(t, signupResp.User.ID, loginResp.User.ID)
	require.NotEmpty(t, loginResp.AccessToken)

	// Login with a wrong password.
	_, err = authDomain.Login(ctx, &model.LoginRequest{
		Username: "carol",
		Password: "wrong-secret",
	})
	require.Error(t, err)
	require.Equal(t, errorx.Unauthenticated, err.(errorx.Error).Code)

	// Login with an unknown username.
	_, err = authDomain.Login(ctx, &model.LoginRequest{
		Username: "nobody",
		Password: "super-secret",
	})
	require.Error(t, err)
	require.Equal(t, errorx.Unauthenticated, err.(errorx.Error).Code)
}

func Test_authDomain_Signup_invalidRequests(t *testing.T) {
	ctx := testutil.NewMockContext()
	authDomain := NewAuthDomain(repository.NewUserRepository())

	_, err := authDomain.Signup(ctx, &model.SignupRequest{
		Password: "super-secret",
		Email:    "dave@example.com",
	})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)

	_, err = authDomain.Signup(ctx, &model.SignupRequest{
		Username: "dave",
		Email:    "dave@example.com",
	})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)

	_, err = authDomain.Signup(ctx, &model.SignupRequest{
		Username: "dave",
		Password: "super-secret",
		Email:    "not-an-email",
	})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
}
