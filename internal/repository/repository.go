package repository

import (
	"context"
	"database/sql"

	"bloglist/internal/models"
)

// Blogs is the persistence surface for blog entries.
type Blogs interface {
	Create(ctx context.Context, b models.Blog) error
	FindAll(ctx context.Context) ([]models.Blog, error)
	FindByID(ctx context.Context, id string) (*models.Blog, error)
	Update(ctx context.Context, b models.Blog) error
	Delete(ctx context.Context, id string) error
}

// Users is the persistence surface for user accounts.
type Users interface {
	Create(ctx context.Context, u models.User) error
	FindAll(ctx context.Context) ([]models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type Repository struct {
	Blogs Blogs
	Users Users
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Blogs: NewBlogRepository(db),
		Users: NewUserRepository(db),
	}
}
