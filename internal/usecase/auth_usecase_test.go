package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"skillsync-ai/internal/pkg/jwt"
	"skillsync-ai/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func newTestJWT() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestAuthUsecase_Register_ShortPassword(t *testing.T) {
	uc := NewAuthUsecase(&mockUserRepo{}, newTestJWT())

	_, _, err := uc.Register(context.Background(), RegisterInput{Username: "ari", Email: "ari@example.com", Password: "short"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthUsecase_Register(t *testing.T) {
	repo := &mockUserRepo{}
	uc := NewAuthUsecase(repo, newTestJWT())

	item, pair, err := uc.Register(context.Background(), RegisterInput{Username: "ari", Email: "ari@example.com", Password: "correct horse battery"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected token pair")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 created user, got %d", len(repo.created))
	}
	if repo.created[0].PasswordHash == "" || repo.created[0].PasswordHash == "correct horse battery" {
		t.Fatalf("password must be stored hashed")
	}
	if item.Email != "ari@example.com" {
		t.Fatalf("unexpected email: %s", item.Email)
	}
}

func TestAuthUsecase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse battery"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	stored := repository.User{Email: "ari@example.com", PasswordHash: string(hash)}
	repo := &mockUserRepo{byEmail: map[string]repository.User{"ari@example.com": stored}}
	uc := NewAuthUsecase(repo, newTestJWT())

	_, pair, err := uc.Login(context.Background(), LoginInput{Email: "Ari@Example.com", Password: "correct horse battery"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pair.AccessToken == "" {
		t.Fatalf("expected access token")
	}

	_, _, err = uc.Login(context.Background(), LoginInput{Email: "ari@example.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthUsecase_Login_RepositoryFailure(t *testing.T) {
	uc := NewAuthUsecase(&mockUserRepo{err: errors.New("connection refused")}, newTestJWT())

	// A database outage is a server fault, never bad credentials.
	_, _, err := uc.Login(context.Background(), LoginInput{Email: "ari@example.com", Password: "correct horse battery"})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	uc := NewAuthUsecase(&mockUserRepo{byEmail: map[string]repository.User{}}, newTestJWT())

	_, _, err := uc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "whatever"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthUsecase_Refresh(t *testing.T) {
	svc := newTestJWT()
	repo := &mockUserRepo{}
	uc := NewAuthUsecase(repo, svc)

	_, pair, err := uc.Register(context.Background(), RegisterInput{Username: "ari", Email: "ari@example.com", Password: "correct horse battery"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	next, err := uc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if next.AccessToken == "" || next.RefreshToken == "" {
		t.Fatalf("expected refreshed token pair")
	}

	// An access token is not a refresh token.
	if _, err := uc.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
