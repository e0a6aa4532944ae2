package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/bikestores/bikestore/internal/domain/errors"
	"github.com/bikestores/bikestore/internal/domain/model"
	"github.com/bikestores/bikestore/internal/domain/repository"
	pkgAuth "github.com/bikestores/bikestore/internal/pkg/auth"
)

// AuthUseCase verifies credentials and manages session tokens.
type AuthUseCase struct {
	users    repository.UserRepository
	hasher   pkgAuth.PasswordHasher
	sessions pkgAuth.SessionCodec
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, sessions pkgAuth.SessionCodec) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, sessions: sessions}
}

// Authenticate validates credentials and returns the user plus a signed
// session token. Unknown emails and wrong passwords fail identically so
// the response does not reveal whether an account exists.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.sessions.Issue(usr.ID, usr.Email)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseSession extracts the session identity from a token.
func (u *AuthUseCase) ParseSession(token string) (*pkgAuth.Session, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidSession
	}
	return u.sessions.Parse(token)
}
