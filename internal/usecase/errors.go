package usecase

import "errors"

var (
	ErrInternal               = errors.New("internal error")
	ErrInvalidInput           = errors.New("invalid input")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidSkillLevel      = errors.New("invalid skill level")
	ErrAIUnavailable          = errors.New("ai provider not configured")
	ErrRefreshInProgress      = errors.New("refresh already in progress")
)
