package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"wordrush/domain"
)

// argon2id rejects passwords past this point anyway; failing early gives
// the client a proper reason tag.
const maxPasswordLength = 128

var usernameFormat = regexp.MustCompile("^[a-z0-9_]{3,20}$")

type service struct {
	userRepo       UserRepo
	passwordHasher PasswordHasher
	tokenManager   TokenManager
}

func NewService(userRepo UserRepo, passwordHasher PasswordHasher, tokenManager TokenManager) *service {
	return &service{userRepo: userRepo, passwordHasher: passwordHasher, tokenManager: tokenManager}
}

func (as *service) Signup(ctx context.Context, username, password string) (string, error) {
	if !usernameFormat.MatchString(username) {
		return "", ErrInvalidUsernameFormat
	}
	if utf8.RuneCountInString(password) < 8 {
		return "", ErrWeakPassword
	}
	if utf8.RuneCountInString(password) > maxPasswordLength {
		return "", ErrPasswordTooLong
	}

	passwordHash, err := as.passwordHasher.Hash(password)
	if err != nil {
		return "", err
	}

	id, err := as.userRepo.CreateUser(ctx, username, passwordHash)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return "", ErrUsernameAlreadyExists
		}
		return "", fmt.Errorf("signup: %w", err)
	}

	return as.tokenManager.Generate(id, time.Now())
}

func (as *service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := as.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", ErrUsernameNotFound
		}
		return "", fmt.Errorf("login: %w", err)
	}

	match, err := as.passwordHasher.Compare(user.PasswordHash, password)
	if err != nil {
		return "", err
	}
	if !match {
		return "", ErrIncorrectPassword
	}

	return as.tokenManager.Generate(user.Id, time.Now())
}

// VerifyToken returns the user id carried by a valid token.
func (as *service) VerifyToken(token string) (string, error) {
	return as.tokenManager.Verify(token)
}

// RefreshToken re-issues a token for a still-valid session, confirming
// the account still exists first.
func (as *service) RefreshToken(ctx context.Context, token string) (string, error) {
	id, err := as.tokenManager.Verify(token)
	if err != nil {
		return "", err
	}
	if _, err := as.userRepo.GetUserById(ctx, id); err != nil {
		return "", fmt.Errorf("refresh: %w", err)
	}
	return as.tokenManager.Generate(id, time.Now())
}
