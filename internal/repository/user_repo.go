package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bloglist/internal/apperrors"
	"bloglist/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (id, username, name, password_hash) VALUES (?, ?, ?, ?)`
	selectUsersSQL          = `SELECT id, username, name, password_hash FROM users`
	selectUserByUsernameSQL = `SELECT id, username, name, password_hash FROM users WHERE username = ?`
)

// Create inserts a new user. A uniqueness violation on username (the losing
// side of a concurrent registration race) is reported as a duplicate-username
// failure rather than an opaque driver error.
func (r *UserRepository) Create(ctx context.Context, u models.User) error {
	if _, err := r.db.ExecContext(ctx, insertUserSQL, u.ID, u.Username, u.Name, u.PasswordHash); err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicateUsername
		}
		return fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return nil
}

// FindAll returns every stored user.
func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return users, nil
}

// FindByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username).
		Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// isUniqueViolation matches SQLite's UNIQUE constraint error text. The
// modernc driver exposes no typed error for it.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
