package auth

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopmesh/auth-service/internal/db"
)

func newTestService() (*AuthService, *memStore) {
	store := newMemStore()
	svc := NewAuthService(
		store,
		NewPasswordHasher(bcrypt.MinCost),
		NewTokenService("test-secret", time.Hour),
	)
	return svc, store
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	profile := db.Profile{FirstName: "Ana", LastName: "Souza", Age: 30}

	id, err := svc.Register("ana@example.com", "secret1", profile)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	token, user, err := svc.Login("ana@example.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, id, user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, profile, user.Profile)

	// the issued token carries the registered profile as claims
	claims, err := svc.Tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, profile, claims.Profile)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	t.Parallel()

	svc, store := newTestService()

	_, err := svc.Register("", "secret1", db.Profile{})
	assert.Error(t, err)

	_, err = svc.Register("ana@example.com", "", db.Profile{})
	assert.Error(t, err)

	assert.Equal(t, 0, store.count())
}

func TestAuthService_DuplicateRegister(t *testing.T) {
	t.Parallel()

	svc, store := newTestService()

	_, err := svc.Register("ana@example.com", "secret1", db.Profile{})
	require.NoError(t, err)

	_, err = svc.Register("ana@example.com", "other-password", db.Profile{})
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
	assert.Equal(t, 1, store.count())
}

func TestAuthService_ConcurrentRegister(t *testing.T) {
	t.Parallel()

	svc, store := newTestService()

	const workers = 8
	results := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register("race@example.com", "secret1", db.Profile{})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, duplicates int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrDuplicateIdentity):
			duplicates++
		}
	}

	// exactly one registration wins; the store never holds two
	// records for the same email
	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, duplicates)
	assert.Equal(t, 1, store.count())
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	_, err := svc.Register("ana@example.com", "secret1", db.Profile{})
	require.NoError(t, err)

	_, _, err = svc.Login("ana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	// an unknown account must be indistinguishable from a wrong
	// password
	_, _, err := svc.Login("nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
