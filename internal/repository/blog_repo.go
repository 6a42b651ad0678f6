package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bloglist/internal/models"
)

type BlogRepository struct {
	db *sql.DB
}

func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

var _ Blogs = (*BlogRepository)(nil)

const (
	insertBlogSQL     = `INSERT INTO blogs (id, title, author, url, likes) VALUES (?, ?, ?, ?, ?)`
	selectBlogsSQL    = `SELECT id, title, author, url, likes FROM blogs`
	selectBlogByIDSQL = `SELECT id, title, author, url, likes FROM blogs WHERE id = ?`
	updateBlogSQL     = `UPDATE blogs SET title = ?, author = ?, url = ?, likes = ? WHERE id = ?`
	deleteBlogSQL     = `DELETE FROM blogs WHERE id = ?`
)

// Create inserts a new blog row.
func (r *BlogRepository) Create(ctx context.Context, b models.Blog) error {
	if _, err := r.db.ExecContext(ctx, insertBlogSQL, b.ID, b.Title, b.Author, b.URL, b.Likes); err != nil {
		return fmt.Errorf("insert blog %q: %w", b.ID, err)
	}
	return nil
}

// FindAll returns every stored blog in insertion order.
func (r *BlogRepository) FindAll(ctx context.Context) ([]models.Blog, error) {
	rows, err := r.db.QueryContext(ctx, selectBlogsSQL)
	if err != nil {
		return nil, fmt.Errorf("select blogs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	blogs := make([]models.Blog, 0)
	for rows.Next() {
		var b models.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes); err != nil {
			return nil, fmt.Errorf("scan blog row: %w", err)
		}
		blogs = append(blogs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blog rows: %w", err)
	}
	return blogs, nil
}

// FindByID fetches a blog by id. Returns (nil, nil) if not found.
func (r *BlogRepository) FindByID(ctx context.Context, id string) (*models.Blog, error) {
	var b models.Blog
	err := r.db.QueryRowContext(ctx, selectBlogByIDSQL, id).
		Scan(&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select blog %q: %w", id, err)
	}
	return &b, nil
}

// Update persists the full field set of an existing blog.
func (r *BlogRepository) Update(ctx context.Context, b models.Blog) error {
	if _, err := r.db.ExecContext(ctx, updateBlogSQL, b.Title, b.Author, b.URL, b.Likes, b.ID); err != nil {
		return fmt.Errorf("update blog %q: %w", b.ID, err)
	}
	return nil
}

// Delete removes a blog row. Deleting an absent id is not an error.
func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteBlogSQL, id); err != nil {
		return fmt.Errorf("delete blog %q: %w", id, err)
	}
	return nil
}
