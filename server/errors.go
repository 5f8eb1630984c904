package server

import (
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/michal-p/bloglist"
	"github.com/michal-p/bloglist/middleware/tokenware"
)

// errorHandler maps domain errors onto HTTP statuses. Internal details never
// reach the response body; anything unclassified collapses to a 500.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	status, message := classify(err)

	if status == fiber.StatusInternalServerError {
		s.logger.Error("request failed: %s %s: %v", c.Method(), c.Path(), err)
		message = "internal server error"
	}

	return c.Status(status).JSON(fiber.Map{"error": message})
}

// tokenErrorHandler renders token middleware failures through the same
// classification so expired and malformed tokens keep their messages.
func (s *Server) tokenErrorHandler(c *fiber.Ctx, err error) error {
	return s.errorHandler(c, err)
}

func classify(err error) (int, string) {
	if err == nil {
		return fiber.StatusOK, ""
	}

	var fiberErr *fiber.Error
	if goerrors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	if goerrors.Is(err, tokenware.ErrTokenMissingOrMalformed) {
		return fiber.StatusUnauthorized, err.Error()
	}

	if repository.IsRecordNotFound(err) {
		return fiber.StatusNotFound, "not found"
	}

	var rich *goerrors.Error
	if goerrors.As(err, &rich) {
		switch rich.Category {
		case goerrors.CategoryAuth:
			return fiber.StatusUnauthorized, rich.Message
		case goerrors.CategoryAuthz:
			return fiber.StatusForbidden, rich.Message
		case goerrors.CategoryValidation, goerrors.CategoryBadInput, goerrors.CategoryConflict:
			// duplicate usernames surface as a 400 like any other
			// validation failure, not a 409
			return fiber.StatusBadRequest, rich.Message
		case goerrors.CategoryNotFound:
			return fiber.StatusNotFound, rich.Message
		}
	}

	return fiber.StatusInternalServerError, err.Error()
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

var _ bloglist.Logger = noopLogger{}
