package service

import (
	"context"

	"go-garment-supply/internal/apperr"
	"go-garment-supply/internal/model"
	"go-garment-supply/internal/repository"
	"go-garment-supply/pkg/jwt"
	"go-garment-supply/pkg/validator"
)

type RegisterParams struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (*model.User, error)
	Login(ctx context.Context, phoneNumber, password string) (*LoginResponse, error)
	// Deregister deletes the user and everything it owns, returning the
	// deleted record's snapshot.
	Deregister(ctx context.Context, userID uint) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *jwt.Manager
}

func NewAuthService(userRepo repository.UserRepository, tokens *jwt.Manager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, params RegisterParams) (*model.User, error) {
	if errs := validator.ValidateStruct(params); len(errs) > 0 {
		return nil, errs[0]
	}

	user := &model.User{
		Username:    params.Username,
		PhoneNumber: params.PhoneNumber,
	}
	if err := user.SetPassword(params.Password); err != nil {
		return nil, err
	}

	// Uniqueness of the phone number is enforced by the index, not
	// pre-checked; the repo reports a duplicate as Conflict.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, phoneNumber, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	if !user.CheckPassword(password) {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: *user}, nil
}

func (s *authService) Deregister(ctx context.Context, userID uint) (*model.User, error) {
	return s.userRepo.Delete(ctx, userID)
}
