package bloglist_test

import (
	"context"
	"testing"
	"time"

	"github.com/michal-p/bloglist"
	"github.com/stretchr/testify/assert"
)

func TestAuther_Login(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig{signingKey: "test-signing-key", ttl: time.Hour}

	identity := staticIdentity{
		id:       "8c1f3e30-8b3a-4f0e-9c74-2c9c86f0a111",
		username: "mluukkai",
		name:     "Matti Luukkainen",
	}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		provider := &MockIdentityProvider{}
		provider.On("VerifyIdentity", ctx, "mluukkai", "Str0ng!pw").
			Return(identity, nil)

		auther := bloglist.NewAuthenticator(provider, cfg)

		token, err := auther.Login(ctx, "mluukkai", "Str0ng!pw")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := auther.ClaimsFromToken(token)
		assert.NoError(t, err)
		assert.Equal(t, identity.id, claims.UserID())
		assert.Equal(t, identity.username, claims.Username())
		provider.AssertExpectations(t)
	})

	t.Run("propagates credential failures", func(t *testing.T) {
		provider := &MockIdentityProvider{}
		provider.On("VerifyIdentity", ctx, "mluukkai", "wrong").
			Return(nil, bloglist.ErrInvalidCredentials)

		auther := bloglist.NewAuthenticator(provider, cfg)

		token, err := auther.Login(ctx, "mluukkai", "wrong")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, bloglist.ErrInvalidCredentials)
	})

	t.Run("rejects provider returning empty identity", func(t *testing.T) {
		provider := &MockIdentityProvider{}
		provider.On("VerifyIdentity", ctx, "mluukkai", "Str0ng!pw").
			Return(staticIdentity{}, nil)

		auther := bloglist.NewAuthenticator(provider, cfg)

		token, err := auther.Login(ctx, "mluukkai", "Str0ng!pw")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, bloglist.ErrInvalidCredentials)
	})
}

func TestAuther_IdentityFromClaims(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig{signingKey: "test-signing-key", ttl: time.Hour}

	identity := staticIdentity{
		id:       "8c1f3e30-8b3a-4f0e-9c74-2c9c86f0a111",
		username: "mluukkai",
	}

	t.Run("resolves claims back to a stored identity", func(t *testing.T) {
		provider := &MockIdentityProvider{}
		provider.On("VerifyIdentity", ctx, "mluukkai", "Str0ng!pw").
			Return(identity, nil)
		provider.On("FindIdentityByID", ctx, identity.id).
			Return(identity, nil)

		auther := bloglist.NewAuthenticator(provider, cfg)

		token, err := auther.Login(ctx, "mluukkai", "Str0ng!pw")
		assert.NoError(t, err)

		claims, err := auther.ClaimsFromToken(token)
		assert.NoError(t, err)

		resolved, err := auther.IdentityFromClaims(ctx, claims)
		assert.NoError(t, err)
		assert.Equal(t, identity.id, resolved.ID())
	})

	t.Run("nil claims require authentication", func(t *testing.T) {
		provider := &MockIdentityProvider{}
		auther := bloglist.NewAuthenticator(provider, cfg)

		resolved, err := auther.IdentityFromClaims(ctx, nil)

		assert.Nil(t, resolved)
		assert.ErrorIs(t, err, bloglist.ErrAuthenticationRequired)
	})

	t.Run("claims referencing a deleted user are malformed", func(t *testing.T) {
		provider := &MockIdentityProvider{}
		provider.On("FindIdentityByID", ctx, identity.id).
			Return(nil, bloglist.ErrIdentityNotFound)

		auther := bloglist.NewAuthenticator(provider, cfg)

		service := auther.TokenService()
		token, err := service.Generate(identity)
		assert.NoError(t, err)

		claims, err := service.Validate(token)
		assert.NoError(t, err)

		resolved, err := auther.IdentityFromClaims(ctx, claims)

		assert.Nil(t, resolved)
		assert.ErrorIs(t, err, bloglist.ErrTokenMalformed)
	})
}
