package common

import (
	"context"
	"errors"

	"github.com/streamdrop-lab/backend/internal/repository"
	"github.com/streamdrop-lab/backend/pkg/xcontext"
)

// AdminVerifier checks the requesting user against the admin flag.
type AdminVerifier struct {
	userRepo repository.UserRepository
}

func NewAdminVerifier(userRepo repository.UserRepository) *AdminVerifier {
	return &AdminVerifier{userRepo: userRepo}
}

func (verifier *AdminVerifier) Verify(ctx context.Context) error {
	userID := xcontext.RequestUserID(ctx)
	if userID == 0 {
		return errors.New("no user in context")
	}

	user, err := verifier.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.IsAdmin {
		return errors.New("user is not an admin")
	}

	return nil
}
