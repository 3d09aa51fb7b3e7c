package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/streamdrop-lab/backend/internal/entity"
	"github.com/streamdrop-lab/backend/internal/model"
	"github.com/streamdrop-lab/backend/internal/repository"
	"github.com/streamdrop-lab/backend/pkg/errorx"
	"github.com/streamdrop-lab/backend/pkg/xcontext"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthDomain interface {
	Signup(ctx context.Context, req *model.SignupRequest) (*model.SignupResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type authDomain struct {
	userRepo repository.UserRepository
}

func NewAuthDomain(userRepo repository.UserRepository) *authDomain {
	return &authDomain{userRepo: userRepo}
}

func (d *authDomain) Signup(
	ctx context.Context, req *model.SignupRequest,
) (*model.SignupResponse, error) {
	if req.Username == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty username")
	}

	if req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty password")
	}

	if !strings.Contains(req.Email, "@") {
		return nil, errorx.New(errorx.BadRequest, "Invalid email address")
	}

	if _, err := d.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "The username is already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get user by username: %v", err)
		return nil, errorx.Unknown
	}

	if _, err := d.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "The email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash the password: %v", err)
		return nil, errorx.Unknown
	}

	user := &entity.User{
		Username:               req.Username,
		Password:               string(hashedPassword),
		Email:                  req.Email,
		FullName:               req.FullName,
		Country:                req.Country,
		SubscribedToNewsletter: req.SubscribedToNewsletter,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "The username or email is already taken")
		}

		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	token, err := xcontext.TokenEngine(ctx).Generate(
		fmt.Sprint(user.ID), model.AccessToken{ID: user.ID, Username: user.Username})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SignupResponse{User: convertUser(user), AccessToken: token}, nil
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	user, err := d.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by username: %v", err)
		return nil, errorx.Unknown
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
	}

	token, err := xcontext.TokenEngine(ctx).Generate(
		fmt.Sprint(user.ID), model.AccessToken{ID: user.ID, Username: user.Username})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LoginResponse{User: convertUser(user), AccessToken: token}, nil
}
