package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skillsync-ai/internal/pkg/jwt"
	"skillsync-ai/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (UserItem, TokenPair, error)
	Login(ctx context.Context, in LoginInput) (UserItem, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	users repository.UserRepository
	jwt   jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (a *Auth) Register(ctx context.Context, in RegisterInput) (UserItem, TokenPair, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if username == "" || email == "" || !strings.Contains(email, "@") {
		return UserItem{}, TokenPair{}, ErrInvalidInput
	}
	if len(in.Password) < minPasswordLength {
		return UserItem{}, TokenPair{}, ErrInvalidInput
	}

	exists, err := a.users.ExistsByEmail(ctx, email)
	if err != nil {
		return UserItem{}, TokenPair{}, ErrInternal
	}
	if exists {
		return UserItem{}, TokenPair{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserItem{}, TokenPair{}, ErrInternal
	}

	item := UserItem{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	err = a.users.Create(ctx, repository.User{
		ID:           item.ID,
		Username:     item.Username,
		Email:        item.Email,
		PasswordHash: string(hash),
		CreatedAt:    item.CreatedAt,
	})
	if err != nil {
		return UserItem{}, TokenPair{}, ErrInternal
	}

	pair, err := a.issueTokens(item.ID, item.Email)
	if err != nil {
		return UserItem{}, TokenPair{}, ErrInternal
	}
	return item, pair, nil
}

func (a *Auth) Login(ctx context.Context, in LoginInput) (UserItem, TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return UserItem{}, TokenPair{}, ErrInvalidCredentials
	}

	u, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserItem{}, TokenPair{}, ErrInvalidCredentials
		}
		return UserItem{}, TokenPair{}, ErrInternal
	}
	if u.PasswordHash == "" {
		return UserItem{}, TokenPair{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return UserItem{}, TokenPair{}, ErrInvalidCredentials
	}

	item := UserItem{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
	pair, err := a.issueTokens(u.ID, u.Email)
	if err != nil {
		return UserItem{}, TokenPair{}, ErrInternal
	}
	return item, pair, nil
}

func (a *Auth) Refresh(_ context.Context, refreshToken string) (TokenPair, error) {
	claims, err := a.jwt.ValidateToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrUnauthorized
	}
	if claims.TokenType != jwt.TokenTypeRefresh || claims.UserID == uuid.Nil {
		return TokenPair{}, ErrUnauthorized
	}
	pair, err := a.issueTokens(claims.UserID, claims.Email)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return pair, nil
}

func (a *Auth) issueTokens(userID uuid.UUID, email string) (TokenPair, error) {
	access, err := a.jwt.GenerateAccessToken(userID, email)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := a.jwt.GenerateRefreshToken(userID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
