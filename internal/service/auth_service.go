package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/adufour/goddit/internal/domain"
	"github.com/adufour/goddit/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// timingPad is compared against when the username lookup comes back empty,
// so an unknown user costs the same bcrypt work as a wrong password.
var timingPad = func() []byte {
	digest, err := bcrypt.GenerateFromPassword([]byte("goddit-timing-pad"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return digest
}()

type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
}

func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Register hashes the password before anything touches the datastore and
// creates the user row. The plaintext is never persisted or logged.
func (s *AuthService) Register(ctx context.Context, username, password string) (uuid.UUID, error) {
	if username == "" || password == "" {
		return uuid.Nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return uuid.Nil, domain.ErrDuplicateUsername
		}
		return uuid.Nil, err
	}
	return user.ID, nil
}

// VerifyCredentials returns ErrInvalidCredentials for an unknown username and
// for a failed password comparison alike; the two cases are indistinguishable
// to the caller.
func (s *AuthService) VerifyCredentials(ctx context.Context, username, password string) (uuid.UUID, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return uuid.Nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(timingPad, []byte(password))
		return uuid.Nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return uuid.Nil, domain.ErrInvalidCredentials
	}
	return user.ID, nil
}

// CreateSession persists a fresh token and returns it only after the insert
// succeeds. Existing sessions for the user are left untouched.
func (s *AuthService) CreateSession(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", err
	}
	session := &domain.Session{
		Token:  token,
		UserID: userID,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", err
	}
	return token, nil
}

// ResolveSession returns (nil, nil) for an unknown token; an unauthenticated
// caller is an expected case, not an error.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}
	return s.sessions.GetUserByToken(ctx, token)
}

// DestroySession deletes every session the user holds: logging out logs the
// user out everywhere, which matches the intended semantics.
func (s *AuthService) DestroySession(ctx context.Context, userID uuid.UUID) error {
	return s.sessions.DeleteByUserID(ctx, userID)
}

func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
