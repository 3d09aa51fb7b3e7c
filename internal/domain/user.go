package domain

import (
	"context"
	"errors"

	"github.com/streamdrop-lab/backend/internal/common"
	"github.com/streamdrop-lab/backend/internal/model"
	"github.com/streamdrop-lab/backend/internal/repository"
	"github.com/streamdrop-lab/backend/pkg/errorx"
	"github.com/streamdrop-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDomain interface {
	GetUser(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error)
	MakeAdmin(ctx context.Context, req *model.MakeAdminRequest) (*model.MakeAdminResponse, error)
}

type userDomain struct {
	userRepo      repository.UserRepository
	adminVerifier *common.AdminVerifier
}

func NewUserDomain(userRepo repository.UserRepository) *userDomain {
	return &userDomain{
		userRepo:      userRepo,
		adminVerifier: common.NewAdminVerifier(userRepo),
	}
}

// GetUser returns the requested user, or the requesting user when no id is
// given.
func (d *userDomain) GetUser(
	ctx context.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	id := req.ID
	if id == 0 {
		id = xcontext.RequestUserID(ctx)
	}

	if id == 0 {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty user id")
	}

	user, err := d.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetUserResponse(convertUser(user))
	return &resp, nil
}

func (d *userDomain) MakeAdmin(
	ctx context.Context, req *model.MakeAdminRequest,
) (*model.MakeAdminResponse, error) {
	if err := d.adminVerifier.Verify(ctx); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when making admin: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if err := d.userRepo.GrantAdmin(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot grant admin: %v", err)
		return nil, errorx.Unknown
	}

	return &model.MakeAdminResponse{}, nil
}
