// Package server wires the HTTP surface: public blog reads, protected blog
// writes, account registration, and login.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/michal-p/bloglist"
	"github.com/michal-p/bloglist/middleware/tokenware"
)

// Server owns the fiber app and the collaborators the handlers need.
type Server struct {
	app        *fiber.App
	repo       bloglist.RepositoryManager
	auther     *bloglist.Auther
	register   *bloglist.RegisterUserHandler
	logger     bloglist.Logger
	contextKey string
}

type Option func(*Server) *Server

func WithLogger(logger bloglist.Logger) Option {
	return func(s *Server) *Server {
		if logger != nil {
			s.logger = logger
		}
		return s
	}
}

// New builds the server and registers all routes.
func New(cfg bloglist.Config, repo bloglist.RepositoryManager, auther *bloglist.Auther, opts ...Option) *Server {
	s := &Server{
		repo:       repo,
		auther:     auther,
		register:   bloglist.NewRegisterUserHandler(repo),
		logger:     noopLogger{},
		contextKey: cfg.GetContextKey(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "bloglist",
		ErrorHandler: s.errorHandler,
	})

	s.registerRoutes(cfg)

	return s
}

func (s *Server) registerRoutes(cfg bloglist.Config) {
	protected := tokenware.New(tokenware.Config{
		Validator:       s.auther.TokenService(),
		ContextKey:      s.contextKey,
		AuthScheme:      cfg.GetAuthScheme(),
		ErrorHandler:    s.tokenErrorHandler,
		ContextEnricher: bloglist.WithClaimsContext,
	})

	api := s.app.Group("/api")

	blogs := api.Group("/blogs")
	blogs.Get("/", s.listBlogs)
	// static route before the :id wildcard
	blogs.Get("/stats", s.blogStats)
	blogs.Get("/:id", s.getBlog)
	blogs.Post("/", protected, s.createBlog)
	blogs.Put("/:id", protected, s.updateBlogLikes)
	blogs.Delete("/:id", protected, s.deleteBlog)

	users := api.Group("/users")
	users.Get("/", s.listUsers)
	users.Post("/", s.createUser)

	api.Post("/login", s.login)
}

// App exposes the underlying fiber app, mostly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// identityFromRequest resolves the validated claims stored by the token
// middleware into a full identity backed by the user store.
func (s *Server) identityFromRequest(c *fiber.Ctx) (bloglist.Identity, error) {
	claims, ok := c.Locals(s.contextKey).(bloglist.AuthClaims)
	if !ok || claims == nil {
		return nil, bloglist.ErrAuthenticationRequired
	}

	return s.auther.IdentityFromClaims(c.UserContext(), claims)
}
