package bloglist_test

import (
	"context"
	"errors"
	"testing"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/michal-p/bloglist"
	"github.com/stretchr/testify/assert"
)

func TestUserProvider_VerifyIdentity(t *testing.T) {
	ctx := context.Background()

	hash, err := bloglist.HashPassword("Str0ng!pw")
	assert.NoError(t, err)

	record := &bloglist.User{
		ID:           uuid.MustParse("8c1f3e30-8b3a-4f0e-9c74-2c9c86f0a111"),
		Username:     "mluukkai",
		Name:         "Matti Luukkainen",
		PasswordHash: hash,
	}

	t.Run("verifies known user with correct password", func(t *testing.T) {
		store := &MockUserStore{}
		store.On("GetByIdentifier", ctx, "mluukkai").Return(record, nil)

		provider := bloglist.NewUserProvider(store)

		identity, err := provider.VerifyIdentity(ctx, "mluukkai", "Str0ng!pw")

		assert.NoError(t, err)
		assert.Equal(t, record.ID.String(), identity.ID())
		assert.Equal(t, "mluukkai", identity.Username())
		assert.Equal(t, "Matti Luukkainen", identity.Name())
		store.AssertExpectations(t)
	})

	t.Run("wrong password yields credential error", func(t *testing.T) {
		store := &MockUserStore{}
		store.On("GetByIdentifier", ctx, "mluukkai").Return(record, nil)

		provider := bloglist.NewUserProvider(store)

		identity, err := provider.VerifyIdentity(ctx, "mluukkai", "Wr0ng!pw")

		assert.Nil(t, identity)
		assert.ErrorIs(t, err, bloglist.ErrInvalidCredentials)
	})

	t.Run("unknown user yields the identical credential error", func(t *testing.T) {
		store := &MockUserStore{}
		store.On("GetByIdentifier", ctx, "nobody").
			Return(nil, repository.NewRecordNotFound())

		provider := bloglist.NewUserProvider(store)

		identity, err := provider.VerifyIdentity(ctx, "nobody", "Str0ng!pw")

		assert.Nil(t, identity)
		assert.ErrorIs(t, err, bloglist.ErrInvalidCredentials)
	})

	t.Run("store failures are not credential errors", func(t *testing.T) {
		store := &MockUserStore{}
		store.On("GetByIdentifier", ctx, "mluukkai").
			Return(nil, errors.New("connection refused"))

		provider := bloglist.NewUserProvider(store)

		identity, err := provider.VerifyIdentity(ctx, "mluukkai", "Str0ng!pw")

		assert.Nil(t, identity)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, bloglist.ErrInvalidCredentials)
	})
}

func TestUserProvider_FindIdentityByID(t *testing.T) {
	ctx := context.Background()

	record := &bloglist.User{
		ID:       uuid.MustParse("8c1f3e30-8b3a-4f0e-9c74-2c9c86f0a111"),
		Username: "mluukkai",
	}

	t.Run("resolves stored user", func(t *testing.T) {
		store := &MockUserStore{}
		store.On("GetByID", ctx, record.ID.String()).Return(record, nil)

		provider := bloglist.NewUserProvider(store)

		identity, err := provider.FindIdentityByID(ctx, record.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, "mluukkai", identity.Username())
	})

	t.Run("missing user maps to identity not found", func(t *testing.T) {
		store := &MockUserStore{}
		store.On("GetByID", ctx, "missing").
			Return(nil, repository.NewRecordNotFound())

		provider := bloglist.NewUserProvider(store)

		identity, err := provider.FindIdentityByID(ctx, "missing")

		assert.Nil(t, identity)
		assert.ErrorIs(t, err, bloglist.ErrIdentityNotFound)
	})
}
