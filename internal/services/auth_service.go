package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/request_models"
	"wedplan/internal/models/response_models"
	"wedplan/internal/repositories"
	"wedplan/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterRequest) (*db_models.User, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*response_models.TokenResponse, error)
}

type AuthService struct {
	users  repositories.UserRepository
	jwt    *utils.JWTManager
	logger zerolog.Logger
}

func NewAuthService(users repositories.UserRepository, jwt *utils.JWTManager, logger zerolog.Logger) AuthServiceInterface {
	return &AuthService{users: users, jwt: jwt, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, req request_models.RegisterRequest) (*db_models.User, error) {
	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if exists {
		return nil, fmt.Errorf("%w: email already registered", utils.ErrConflict)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Self-registration never grants elevated roles.
	user := &db_models.User{
		Email:          req.Email,
		HashedPassword: hashed,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Role:           db_models.RoleUser,
		IsActive:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info().Uint("user_id", user.ID).Str("email", user.Email).Msg("user registered")
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.TokenResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil || !user.IsActive {
		return nil, fmt.Errorf("%w: invalid credentials", utils.ErrUnauthorized)
	}

	if err := utils.ComparePasswords(user.HashedPassword, req.Password); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", utils.ErrUnauthorized)
	}

	return s.issueTokens(user.ID)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*response_models.TokenResponse, error) {
	claims, err := s.jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid refresh token", utils.ErrUnauthorized)
	}
	if claims.TokenType != utils.TokenTypeRefresh {
		return nil, fmt.Errorf("%w: token is not a refresh token", utils.ErrUnauthorized)
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil || !user.IsActive {
		return nil, fmt.Errorf("%w: account disabled", utils.ErrUnauthorized)
	}

	return s.issueTokens(user.ID)
}

func (s *AuthService) issueTokens(userID uint) (*response_models.TokenResponse, error) {
	access, err := s.jwt.CreateAccessToken(userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	refresh, err := s.jwt.CreateRefreshToken(userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := response_models.NewTokenResponse(access, refresh)
	return &resp, nil
}
