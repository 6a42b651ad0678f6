package service

import (
	"context"
	"fmt"

	"bloglist/internal/apperrors"
	"bloglist/internal/models"
	"bloglist/internal/repository"
	"bloglist/internal/validation"

	"github.com/google/uuid"
)

// CreateBlogInput carries the fields accepted on creation. Likes is a
// pointer so an omitted value can default to zero.
type CreateBlogInput struct {
	Title  string
	Author string
	URL    string
	Likes  *int
}

// UpdateBlogInput carries a partial field set; nil fields stay unchanged.
type UpdateBlogInput struct {
	Title  *string
	Author *string
	URL    *string
	Likes  *int
}

// BlogStats is an aggregate view over the whole catalog.
type BlogStats struct {
	Count      int `json:"count"`
	TotalLikes int `json:"totalLikes"`
}

// BlogService validates and persists blog entries. Validators run before any
// write, so a rejected payload leaves no partial state behind.
type BlogService struct {
	blogRepo repository.Blogs
}

func NewBlogService(repo repository.Blogs) *BlogService {
	return &BlogService{blogRepo: repo}
}

var _ Blogs = (*BlogService)(nil)

// Create validates the payload, assigns a fresh id, and persists the entry.
func (s *BlogService) Create(ctx context.Context, input CreateBlogInput) (models.Blog, error) {
	blog := models.Blog{
		ID:     uuid.NewString(),
		Title:  input.Title,
		Author: input.Author,
		URL:    input.URL,
	}
	if input.Likes != nil {
		blog.Likes = *input.Likes
	}
	if err := validation.ValidateBlog(blog); err != nil {
		return models.Blog{}, err
	}
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return models.Blog{}, err
	}
	return blog, nil
}

// List returns every stored blog.
func (s *BlogService) List(ctx context.Context) ([]models.Blog, error) {
	return s.blogRepo.FindAll(ctx)
}

// Get fetches one blog. A syntactically invalid id is a distinct failure
// from a well-formed id with no record behind it.
func (s *BlogService) Get(ctx context.Context, id string) (models.Blog, error) {
	if err := checkID(id); err != nil {
		return models.Blog{}, err
	}
	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return models.Blog{}, err
	}
	if blog == nil {
		return models.Blog{}, apperrors.ErrNotFound
	}
	return *blog, nil
}

// Update merges the supplied fields into the existing entry and persists it.
func (s *BlogService) Update(ctx context.Context, id string, input UpdateBlogInput) (models.Blog, error) {
	if err := checkID(id); err != nil {
		return models.Blog{}, err
	}
	existing, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return models.Blog{}, err
	}
	if existing == nil {
		return models.Blog{}, apperrors.ErrNotFound
	}

	updated := *existing
	if input.Title != nil {
		updated.Title = *input.Title
	}
	if input.Author != nil {
		updated.Author = *input.Author
	}
	if input.URL != nil {
		updated.URL = *input.URL
	}
	if input.Likes != nil {
		updated.Likes = *input.Likes
	}
	if err := validation.ValidateBlog(updated); err != nil {
		return models.Blog{}, err
	}
	if err := s.blogRepo.Update(ctx, updated); err != nil {
		return models.Blog{}, err
	}
	return updated, nil
}

// Delete removes a blog. Deletion is deliberately forgiving: a well-formed
// id that no longer exists still succeeds.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return s.blogRepo.Delete(ctx, id)
}

// Stats aggregates the catalog into a count and a like total.
func (s *BlogService) Stats(ctx context.Context) (BlogStats, error) {
	blogs, err := s.blogRepo.FindAll(ctx)
	if err != nil {
		return BlogStats{}, err
	}
	return BlogStats{Count: len(blogs), TotalLikes: TotalLikes(blogs)}, nil
}

// TotalLikes sums likes across a list of blogs.
func TotalLikes(blogs []models.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// checkID verifies the store's identifier syntax.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", apperrors.ErrMalformedID, id)
	}
	return nil
}
