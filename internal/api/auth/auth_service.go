package auth

import (
	"errors"

	"github.com/google/uuid"

	"github.com/shopmesh/auth-service/internal/db"
)

// UserStore is the credential store the flows run against. CreateUser
// must enforce email uniqueness atomically (a unique index, not a
// read-then-write) and report a conflict as ErrDuplicateIdentity.
// GetUserByEmail returns (nil, nil) when no record exists.
type UserStore interface {
	CreateUser(email, passwordHash string, profile db.Profile) (uuid.UUID, error)
	GetUserByEmail(email string) (*db.User, error)
}

type AuthService struct {
	Store  UserStore
	Hasher *PasswordHasher
	Tokens *TokenService
}

func NewAuthService(store UserStore, hasher *PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{
		Store:  store,
		Hasher: hasher,
		Tokens: tokens,
	}
}

var errEmptyCredentials = errors.New("email and password are required")

// Register hashes the password and persists a new user record. The
// store's unique index is the authoritative duplicate check; two
// concurrent registrations for the same email cannot both win.
func (s *AuthService) Register(email, password string, profile db.Profile) (uuid.UUID, error) {
	if email == "" || password == "" {
		return uuid.Nil, errEmptyCredentials
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return uuid.Nil, err
	}

	return s.Store.CreateUser(email, hash, profile)
}

// Login verifies the credentials and issues a token carrying a
// snapshot of the user record. An unknown email and a wrong password
// both come back as ErrInvalidCredentials so callers cannot probe
// which accounts exist.
func (s *AuthService) Login(email, password string) (string, *db.PublicUser, error) {
	user, err := s.Store.GetUserByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := s.Hasher.Check(password, user.PasswordHash); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	public := user.Public()
	return token, &public, nil
}
