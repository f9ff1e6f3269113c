package handler // handler defines http handlers

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/bertdev/bookmarks-api/internal/repository"
)

// UserStore is the slice of the credential store the handlers depend on.
// *repository.UserRepo satisfies it; tests substitute in-memory fakes.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (repository.User, error)
	GetByEmail(ctx context.Context, email string) (repository.User, error)
	GetByID(ctx context.Context, id uint64) (repository.User, error)
	UpdateEmail(ctx context.Context, id uint64, email *string) (repository.User, error)
}

// BookmarkStore is satisfied by *repository.BookmarkRepo.
type BookmarkStore interface {
	Create(ctx context.Context, ownerID uint64, title, link string, description *string) (repository.Bookmark, error)
	ListByOwner(ctx context.Context, ownerID uint64) ([]repository.Bookmark, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (repository.Bookmark, error)
	Update(ctx context.Context, id, ownerID uint64, title, link, description *string) (repository.Bookmark, error)
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error
}

// getUserID extracts the authenticated user id placed in the context by the
// JWT middleware and converts it to uint64.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	}
	return 0, errors.New("invalid user_id in context")
}
