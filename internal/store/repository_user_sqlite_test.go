package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-user-gateway/internal/config"
	"github.com/MKhiriev/go-user-gateway/internal/logger"
	"github.com/MKhiriev/go-user-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteStorages opens a migrated in-memory SQLite database.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	ctx := context.Background()

	s, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Migrate(ctx))
	require.NoError(t, s.Ping(ctx))
	return s
}

func TestUserRepository_SQLite_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteStorages(t).UserRepository

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	first, err := repo.CreateUser(ctx, models.User{Name: "Mayck", Email: "mayck@email.com", Password: "hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := repo.CreateUser(ctx, models.User{Name: "Other", Email: "other@email.com", Password: "hash"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, models.User{Name: "Dup", Email: "mayck@email.com", Password: "hash"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	found, err := repo.GetUserByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "other@email.com", found.Email)

	_, err = repo.GetUserByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	newName := "Renamed"
	updated, err := repo.UpdateUser(ctx, models.UserUpdate{ID: first.ID, Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "mayck@email.com", updated.Email)

	taken := "other@email.com"
	_, err = repo.UpdateUser(ctx, models.UserUpdate{ID: first.ID, Email: &taken})
	assert.True(t, errors.Is(err, ErrEmailAlreadyExists), "got %v", err)

	_, err = repo.UpdateUser(ctx, models.UserUpdate{ID: 9999, Name: &newName})
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	exists, err := repo.EmailExists(ctx, "other@email.com", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmailExists(ctx, "other@email.com", second.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	users, err = repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first.ID, users[0].ID)
}
