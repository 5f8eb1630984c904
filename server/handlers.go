package server

import (
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/michal-p/bloglist"
	"github.com/michal-p/bloglist/stats"

	"github.com/gofiber/fiber/v2"
)

type createBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int64 `json:"likes"`
}

type updateLikesRequest struct {
	Likes *int64 `json:"likes"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type statsResponse struct {
	TotalLikes   int64              `json:"totalLikes"`
	FavoriteBlog *stats.Favorite    `json:"favoriteBlog"`
	MostBlogs    *stats.AuthorBlogs `json:"mostBlogs"`
	MostLikes    *stats.AuthorLikes `json:"mostLikes"`
}

func (s *Server) listBlogs(c *fiber.Ctx) error {
	records, err := s.repo.Blogs().ListWithOwners(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(records)
}

// blogStats folds the current collection through the aggregate functions.
// Aggregates with no meaningful value on an empty collection render as null.
func (s *Server) blogStats(c *fiber.Ctx) error {
	records, err := s.repo.Blogs().ListWithOwners(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(statsResponse{
		TotalLikes:   stats.TotalLikes(records),
		FavoriteBlog: stats.FavoriteBlog(records),
		MostBlogs:    stats.MostBlogs(records),
		MostLikes:    stats.MostLikes(records),
	})
}

func (s *Server) getBlog(c *fiber.Ctx) error {
	id, err := blogID(c)
	if err != nil {
		return err
	}

	record, err := s.repo.Blogs().GetWithOwner(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(record)
}

func (s *Server) createBlog(c *fiber.Ctx) error {
	identity, err := s.identityFromRequest(c)
	if err != nil {
		return err
	}

	payload := createBlogRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	blog := &bloglist.Blog{
		ID:     uuid.New(),
		Title:  payload.Title,
		Author: payload.Author,
		URL:    payload.URL,
	}

	if payload.Likes != nil {
		blog.Likes = *payload.Likes
	}

	if err := blog.Validate(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, err.Error()).
			WithCode(goerrors.CodeBadRequest)
	}

	ownerID, err := uuid.Parse(identity.ID())
	if err != nil {
		return bloglist.ErrTokenMalformed
	}
	blog.UserID = &ownerID

	if _, err := s.repo.Blogs().Create(c.UserContext(), blog); err != nil {
		return err
	}

	record, err := s.repo.Blogs().GetWithOwner(c.UserContext(), blog.ID.String())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// updateBlogLikes replaces the like counter. Any authenticated user may do
// this; liking is not an owner-only action.
func (s *Server) updateBlogLikes(c *fiber.Ctx) error {
	if _, err := s.identityFromRequest(c); err != nil {
		return err
	}

	id, err := blogID(c)
	if err != nil {
		return err
	}

	payload := updateLikesRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	if payload.Likes == nil || *payload.Likes < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "likes must be a non negative number")
	}

	record, err := s.repo.Blogs().UpdateLikes(c.UserContext(), id, *payload.Likes)
	if err != nil {
		return err
	}

	return c.JSON(record)
}

func (s *Server) deleteBlog(c *fiber.Ctx) error {
	identity, err := s.identityFromRequest(c)
	if err != nil {
		return err
	}

	id, err := blogID(c)
	if err != nil {
		return err
	}

	record, err := s.repo.Blogs().GetWithOwner(c.UserContext(), id)
	if err != nil {
		return err
	}

	if err := bloglist.AuthorizeOwner(identity, record.OwnerID()); err != nil {
		return err
	}

	if err := s.repo.Blogs().DeleteByID(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) listUsers(c *fiber.Ctx) error {
	records, err := s.repo.Users().ListWithBlogs(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(records)
}

func (s *Server) createUser(c *fiber.Ctx) error {
	payload := bloglist.RegisterUserMessage{}
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	user, err := s.register.Execute(c.UserContext(), payload)
	if err != nil {
		return err
	}

	s.logger.Info("registered user %s", user.Username)

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (s *Server) login(c *fiber.Ctx) error {
	payload := loginRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	token, err := s.auther.Login(c.UserContext(), payload.Username, payload.Password)
	if err != nil {
		return err
	}

	// credentials verified above; the record lookup only fills the
	// response profile
	user, err := s.repo.Users().GetByIdentifier(c.UserContext(), payload.Username)
	if err != nil {
		return err
	}

	return c.JSON(loginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	})
}

func blogID(c *fiber.Ctx) (string, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "malformed blog id")
	}
	return id.String(), nil
}
