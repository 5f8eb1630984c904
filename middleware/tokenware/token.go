// Package tokenware provides a Fiber middleware that guards routes with
// bearer token validation. Validation itself is delegated through a small
// interface so the middleware carries no signing key of its own.
package tokenware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/michal-p/bloglist"
)

var ErrTokenMissingOrMalformed = errors.New("missing or malformed token")

// Config configures the middleware. Validator is required.
type Config struct {
	// Validator checks the raw token and returns its claims.
	Validator bloglist.TokenValidator

	// ContextKey is the Locals key the validated claims are stored under.
	// Defaults to "user".
	ContextKey string

	// AuthScheme is the expected Authorization scheme. Defaults to "Bearer".
	// The match is case sensitive per RFC 6750's scheme production.
	AuthScheme string

	// Optional lets requests without an Authorization header through
	// unauthenticated. A header that is present but invalid is still
	// rejected.
	Optional bool

	// ErrorHandler renders validation failures. Defaults to a plain 401.
	ErrorHandler func(c *fiber.Ctx, err error) error

	// ContextEnricher propagates claims into the standard context attached
	// to the request, for code downstream of the handler layer.
	ContextEnricher func(ctx context.Context, claims bloglist.AuthClaims) context.Context
}

// New builds the middleware from the given config.
func New(config ...Config) fiber.Handler {
	cfg := configDefault(config...)

	return func(c *fiber.Ctx) error {
		raw, err := ExtractRawToken(c.Get(fiber.HeaderAuthorization), cfg.AuthScheme)
		if err != nil {
			if cfg.Optional && c.Get(fiber.HeaderAuthorization) == "" {
				return c.Next()
			}
			return cfg.ErrorHandler(c, err)
		}

		claims, err := cfg.Validator.Validate(raw)
		if err != nil {
			return cfg.ErrorHandler(c, err)
		}

		c.Locals(cfg.ContextKey, claims)

		if cfg.ContextEnricher != nil {
			c.SetUserContext(cfg.ContextEnricher(c.UserContext(), claims))
		}

		return c.Next()
	}
}

// ExtractRawToken pulls the token out of an Authorization header value.
// The scheme must match exactly: "bearer x" is not a bearer credential.
func ExtractRawToken(header, authScheme string) (string, error) {
	prefix := authScheme + " "
	if len(header) <= len(prefix) || !strings.HasPrefix(header, prefix) {
		return "", ErrTokenMissingOrMalformed
	}

	raw := strings.TrimSpace(header[len(prefix):])
	if raw == "" {
		return "", ErrTokenMissingOrMalformed
	}

	return raw, nil
}

func configDefault(config ...Config) (cfg Config) {
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Validator == nil {
		panic("tokenware: Validator is required")
	}

	if cfg.ContextKey == "" {
		cfg.ContextKey = "user"
	}

	if cfg.AuthScheme == "" {
		cfg.AuthScheme = "Bearer"
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
			if errors.Is(err, ErrTokenMissingOrMalformed) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": ErrTokenMissingOrMalformed.Error(),
				})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}
	}

	return cfg
}
