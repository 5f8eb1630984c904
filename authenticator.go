package bloglist

import (
	"context"

	"github.com/goliatone/go-errors"
)

// Auther is the concrete Authenticator wiring the identity provider to the
// token service
type Auther struct {
	provider     IdentityProvider
	signingKey   []byte
	logger       Logger
	tokenService TokenService
}

// Verify interface compliance
var _ Authenticator = (*Auther)(nil)

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, cfg Config) *Auther {
	tokenService := NewTokenService(
		[]byte(cfg.GetSigningKey()),
		cfg.GetTokenTTL(),
		defLogger{},
	)

	return &Auther{
		provider:     provider,
		signingKey:   []byte(cfg.GetSigningKey()),
		logger:       defLogger{},
		tokenService: tokenService,
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// Login verifies the credentials and mints a signed identity token
func (s *Auther) Login(ctx context.Context, identifier, password string) (string, error) {
	identity, err := s.provider.VerifyIdentity(ctx, identifier, password)
	if err != nil {
		s.logger.Error("Login verify identity error: %v", err)
		return "", err
	}

	if identity == nil || identity.ID() == "" {
		s.logger.Error("Login identity is nil or zero value")
		return "", ErrInvalidCredentials
	}

	token, err := s.tokenService.Generate(identity)
	if err != nil {
		s.logger.Error("Login token generation error: %v", err)
		return "", err
	}

	return token, nil
}

// ClaimsFromToken validates a raw bearer credential and returns its claims
func (s *Auther) ClaimsFromToken(raw string) (AuthClaims, error) {
	claims, err := s.tokenService.Validate(raw)
	if err != nil {
		s.logger.Error("ClaimsFromToken validation failed: %v", err)
		return nil, err
	}
	return claims, nil
}

// IdentityFromClaims resolves the claims' subject against the user store.
// A token referencing a user that no longer exists is treated as invalid;
// we never fabricate an identity from claims alone.
func (s *Auther) IdentityFromClaims(ctx context.Context, claims AuthClaims) (Identity, error) {
	if claims == nil {
		return nil, ErrAuthenticationRequired
	}

	identity, err := s.provider.FindIdentityByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, ErrIdentityNotFound) {
			s.logger.Error("IdentityFromClaims token references unknown user: %s", claims.UserID())
			return nil, ErrTokenMalformed
		}
		return nil, err
	}

	return identity, nil
}
