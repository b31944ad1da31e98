package service

import (
	"context"
	"errors"
	"time"

	"github.com/jnbreid/todo-backend/internal/auth"
	"github.com/jnbreid/todo-backend/internal/domain"
	"github.com/jnbreid/todo-backend/internal/logger"
)

// UserStore is the credential store as the service consumes it.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Delete(ctx context.Context, username string) error
}

// UserService implements registration, login and account self-deletion.
// These are the only three operations allowed to invoke the password
// hasher: bcrypt is deliberately expensive and stays off every other path.
type UserService struct {
	users  UserStore
	hasher *auth.PasswordHasher
	codec  *auth.TokenCodec
	now    func() time.Time
}

func NewUserService(users UserStore, hasher *auth.PasswordHasher, codec *auth.TokenCodec) *UserService {
	return &UserService{users: users, hasher: hasher, codec: codec, now: time.Now}
}

// Register creates an account. A taken username is reported as
// ErrDuplicateUsername whether the pre-check or the unique index catches
// it; the race between the two collapses to the same condition.
func (s *UserService) Register(ctx context.Context, username, password string) error {
	if err := domain.ValidateUsername(username); err != nil {
		return err
	}
	if password == "" {
		return domain.ValidationError{Field: "password", Reason: "must not be empty"}
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.ValidationError{Field: "password", Reason: err.Error()}
	}

	if err := s.users.Create(ctx, &domain.User{Username: username, PasswordHash: hash}); err != nil {
		return err
	}
	logger.Info("user registered", "username", username)
	return nil
}

// Login verifies the credentials and issues an identity token. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}
	return s.codec.Issue(u.Username, s.now())
}

// DeleteSelf removes an account. The caller must re-prove the credentials
// of the target account and be authenticated as that same account.
func (s *UserService) DeleteSelf(ctx context.Context, ident *auth.Identity, username, password string) error {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return domain.ErrInvalidCredentials
	}
	if err := auth.AuthorizeSelf(ident, username); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, username); err != nil {
		return err
	}
	logger.Info("user deleted", "username", username)
	return nil
}
