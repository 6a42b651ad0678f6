package service

import (
	"context"

	"bloglist/internal/models"
	"bloglist/internal/repository"
)

// Blogs exposes the catalog operations over blog entries.
type Blogs interface {
	Create(ctx context.Context, input CreateBlogInput) (models.Blog, error)
	List(ctx context.Context) ([]models.Blog, error)
	Get(ctx context.Context, id string) (models.Blog, error)
	Update(ctx context.Context, id string, input UpdateBlogInput) (models.Blog, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (BlogStats, error)
}

// Users exposes account registration and listing.
type Users interface {
	Register(ctx context.Context, input RegisterUserInput) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// Authorization issues and parses access tokens.
type Authorization interface {
	GenerateToken(ctx context.Context, username, password string) (TokenResult, error)
	ParseToken(accessToken string) (string, error)
}

// Service aggregates all sub-services behind one handle for the HTTP layer.
type Service struct {
	Blogs
	Users
	Authorization
}

func NewService(repos *repository.Repository) *Service {
	return &Service{
		Blogs:         NewBlogService(repos.Blogs),
		Users:         NewUserService(repos.Users),
		Authorization: NewAuthService(repos.Users),
	}
}
