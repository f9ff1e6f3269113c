// Package repository contains data access logic separated from HTTP
// handlers. Repositories are plain structs over *sql.DB; they hold no
// business rules and report failures through a small set of sentinel
// errors so callers never inspect driver codes.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
)

// User mirrors the 'users' table. The password hash is kept out of JSON
// responses; handlers return User values directly.
type User struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ErrEmailTaken is returned when an insert or update violates the unique
// constraint on users.email.
var ErrEmailTaken = errors.New("email already taken")

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepo encapsulates all database queries related to users.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the provided DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = "id, email, password_hash, created_at, updated_at"

// mysqlDuplicateEntry is the server error number for a unique key violation.
const mysqlDuplicateEntry = 1062

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}

// Create inserts a user with an already-hashed password and returns the
// stored row including generated id and timestamps. A duplicate email maps
// to ErrEmailTaken.
func (r *UserRepo) Create(ctx context.Context, email, passwordHash string) (User, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (email, password_hash) VALUES (?, ?)",
		email, passwordHash)
	if err != nil {
		if isDuplicate(err) {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return User{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByEmail fetches a user by exact email match.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = ? LIMIT 1",
		email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ? LIMIT 1",
		id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	return u, err
}

// UpdateEmail applies a partial update to the user row; a nil email keeps
// the stored value. Returns the updated row.
func (r *UserRepo) UpdateEmail(ctx context.Context, id uint64, email *string) (User, error) {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET email = COALESCE(?, email), updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		email, id)
	if err != nil {
		if isDuplicate(err) {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	return r.GetByID(ctx, id)
}
