package bloglist_test

import (
	"context"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/michal-p/bloglist"
	"github.com/stretchr/testify/mock"
)

// MockIdentity implements bloglist.Identity for testing
type MockIdentity struct {
	mock.Mock
}

func (m *MockIdentity) ID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockIdentity) Username() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockIdentity) Name() string {
	args := m.Called()
	return args.String(0)
}

// MockLogger implements bloglist.Logger for testing
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Info(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Error(format string, args ...any) {
	m.Called(format, args)
}

// MockUserStore implements bloglist.UserStore for testing
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByIdentifier(ctx context.Context, identifier string, criteria ...repository.SelectCriteria) (*bloglist.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bloglist.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id string, criteria ...repository.SelectCriteria) (*bloglist.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bloglist.User), args.Error(1)
}

// MockIdentityProvider implements bloglist.IdentityProvider for testing
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) VerifyIdentity(ctx context.Context, identifier, password string) (bloglist.Identity, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bloglist.Identity), args.Error(1)
}

func (m *MockIdentityProvider) FindIdentityByID(ctx context.Context, id string) (bloglist.Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bloglist.Identity), args.Error(1)
}

// staticIdentity is a plain value identity for tests that do not need
// expectation tracking
type staticIdentity struct {
	id       string
	username string
	name     string
}

func (s staticIdentity) ID() string       { return s.id }
func (s staticIdentity) Username() string { return s.username }
func (s staticIdentity) Name() string     { return s.name }

// testConfig implements bloglist.Config
type testConfig struct {
	signingKey string
	ttl        time.Duration
}

func (c testConfig) GetSigningKey() string      { return c.signingKey }
func (c testConfig) GetTokenTTL() time.Duration { return c.ttl }
func (c testConfig) GetAuthScheme() string      { return "Bearer" }
func (c testConfig) GetContextKey() string      { return "user" }
