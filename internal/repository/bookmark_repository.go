package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Bookmark mirrors the 'bookmarks' table. Description is nullable and
// serializes as JSON null when unset.
type Bookmark struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"userId"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ErrBookmarkNotFound is returned when a bookmark does not exist or belongs
// to another owner. The two cases are deliberately indistinguishable so ids
// owned by other users are never revealed.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// BookmarkRepo encapsulates all database queries related to bookmarks.
// Every query is scoped to an owner; there is no unscoped access path.
type BookmarkRepo struct {
	db *sql.DB
}

// NewBookmarkRepo constructs a BookmarkRepo with the provided DB handle.
func NewBookmarkRepo(db *sql.DB) *BookmarkRepo {
	return &BookmarkRepo{db: db}
}

const bookmarkColumns = "id, user_id, title, link, description, created_at, updated_at"

// Create inserts a bookmark attributed to ownerID and returns the stored
// row including generated id and timestamps.
func (r *BookmarkRepo) Create(ctx context.Context, ownerID uint64, title, link string, description *string) (Bookmark, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO bookmarks (user_id, title, link, description) VALUES (?, ?, ?, ?)",
		ownerID, title, link, description)
	if err != nil {
		return Bookmark{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Bookmark{}, err
	}
	return r.GetByIDAndOwner(ctx, uint64(id), ownerID)
}

// ListByOwner returns all bookmarks for the owner ordered by id. An owner
// with no bookmarks gets an empty slice, not an error.
func (r *BookmarkRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]Bookmark, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookmarkColumns+" FROM bookmarks WHERE user_id = ? ORDER BY id",
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Bookmark{}
	for rows.Next() {
		var b Bookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Link, &b.Description, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDAndOwner fetches a bookmark only if it belongs to the specified
// owner, otherwise ErrBookmarkNotFound.
func (r *BookmarkRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (Bookmark, error) {
	var b Bookmark
	err := r.db.QueryRowContext(ctx,
		"SELECT "+bookmarkColumns+" FROM bookmarks WHERE id = ? AND user_id = ? LIMIT 1",
		id, ownerID).Scan(&b.ID, &b.UserID, &b.Title, &b.Link, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Bookmark{}, ErrBookmarkNotFound
	}
	return b, err
}

// Update applies the supplied fields to the owner's bookmark; nil fields
// keep their stored values. The mutation itself is scoped by id and owner,
// so a row deleted concurrently simply surfaces as ErrBookmarkNotFound from
// the follow-up read.
func (r *BookmarkRepo) Update(ctx context.Context, id, ownerID uint64, title, link, description *string) (Bookmark, error) {
	_, err := r.db.ExecContext(ctx,
		"UPDATE bookmarks SET title = COALESCE(?, title), link = COALESCE(?, link), description = COALESCE(?, description), updated_at = CURRENT_TIMESTAMP WHERE id = ? AND user_id = ?",
		title, link, description, id, ownerID)
	if err != nil {
		return Bookmark{}, err
	}
	return r.GetByIDAndOwner(ctx, id, ownerID)
}

// DeleteByIDAndOwner permanently removes the owner's bookmark. When no row
// is affected (absent or not owned) it returns ErrBookmarkNotFound.
func (r *BookmarkRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM bookmarks WHERE id = ? AND user_id = ?",
		id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}
