package service_test

import (
	"context"
	"testing"

	"github.com/adufour/goddit/internal/domain"
	"github.com/adufour/goddit/internal/repository/postgres"
	"github.com/adufour/goddit/internal/service"
	"github.com/adufour/goddit/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, repos.Session)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		setup    func()
		wantErr  error
	}{
		{
			name:     "successful registration",
			username: "newuser",
			password: "password123",
		},
		{
			name:     "empty username",
			username: "",
			password: "password123",
			wantErr:  domain.ErrValidation,
		},
		{
			name:     "empty password",
			username: "someuser",
			password: "",
			wantErr:  domain.ErrValidation,
		},
		{
			name:     "duplicate username",
			username: "existinguser",
			password: "password123",
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					Build(t, testDB.DB)
			},
			wantErr: domain.ErrDuplicateUsername,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			userID, err := authService.Register(ctx, tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, userID)
		})
	}
}

func TestAuthService_Register_DuplicateLeavesNoRow(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, repos.Session)
	ctx := context.Background()

	_, err := authService.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = authService.Register(ctx, "alice", "pw2")
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	var count int64
	require.NoError(t, testDB.DB.Model(&domain.User{}).Where("username = ?", "alice").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAuthService_VerifyCredentials(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, repos.Session)
	ctx := context.Background()

	registeredID, err := authService.Register(ctx, "loginuser", "correctpassword")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		wantID   uuid.UUID
		wantErr  error
	}{
		{
			name:     "correct credentials return the registered id",
			username: "loginuser",
			password: "correctpassword",
			wantID:   registeredID,
		},
		{
			name:     "wrong password",
			username: "loginuser",
			password: "wrongpassword",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "unknown user gets the same error",
			username: "nonexistent",
			password: "anypassword",
			wantErr:  domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := authService.VerifyCredentials(ctx, tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, userID)
		})
	}
}

func TestAuthService_Sessions(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, repos.Session)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().WithUsername("sessionuser").Build(t, testDB.DB)

	t.Run("create and resolve", func(t *testing.T) {
		token, err := authService.CreateSession(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, token, 64) // 32 random bytes, hex-encoded

		resolved, err := authService.ResolveSession(ctx, token)
		require.NoError(t, err)
		require.NotNil(t, resolved)
		assert.Equal(t, user.ID, resolved.ID)
		assert.Equal(t, user.Username, resolved.Username)
	})

	t.Run("unknown token resolves to nil without error", func(t *testing.T) {
		resolved, err := authService.ResolveSession(ctx, "not-a-real-token")
		require.NoError(t, err)
		assert.Nil(t, resolved)
	})

	t.Run("two sessions are independent tokens", func(t *testing.T) {
		first, err := authService.CreateSession(ctx, user.ID)
		require.NoError(t, err)
		second, err := authService.CreateSession(ctx, user.ID)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)

		// Creating the second did not invalidate the first.
		resolved, err := authService.ResolveSession(ctx, first)
		require.NoError(t, err)
		assert.NotNil(t, resolved)
	})

	t.Run("destroy removes every session for the user", func(t *testing.T) {
		tokenA, err := authService.CreateSession(ctx, user.ID)
		require.NoError(t, err)
		tokenB, err := authService.CreateSession(ctx, user.ID)
		require.NoError(t, err)

		require.NoError(t, authService.DestroySession(ctx, user.ID))

		for _, token := range []string{tokenA, tokenB} {
			resolved, err := authService.ResolveSession(ctx, token)
			require.NoError(t, err)
			assert.Nil(t, resolved)
		}

		// Destroying again is a no-op, not an error.
		require.NoError(t, authService.DestroySession(ctx, user.ID))
	})
}

func TestAuthService_RegisterThenVerifyRoundtrip(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, repos.Session)
	ctx := context.Background()

	registeredID, err := authService.Register(ctx, "roundtrip", "secret")
	require.NoError(t, err)

	verifiedID, err := authService.VerifyCredentials(ctx, "roundtrip", "secret")
	require.NoError(t, err)
	assert.Equal(t, registeredID, verifiedID)
}
