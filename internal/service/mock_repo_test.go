package service

import (
	"context"

	"bloglist/internal/apperrors"
	"bloglist/internal/models"
	"bloglist/internal/repository"
)

// ---- Repository Fakes ----

type fakeBlogRepo struct {
	blogs []models.Blog
	err   error
}

var _ repository.Blogs = (*fakeBlogRepo)(nil)

func (f *fakeBlogRepo) Create(ctx context.Context, b models.Blog) error {
	if f.err != nil {
		return f.err
	}
	f.blogs = append(f.blogs, b)
	return nil
}

func (f *fakeBlogRepo) FindAll(ctx context.Context) ([]models.Blog, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Blog(nil), f.blogs...), nil
}

func (f *fakeBlogRepo) FindByID(ctx context.Context, id string) (*models.Blog, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.blogs {
		if f.blogs[i].ID == id {
			b := f.blogs[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBlogRepo) Update(ctx context.Context, b models.Blog) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.blogs {
		if f.blogs[i].ID == b.ID {
			f.blogs[i] = b
		}
	}
	return nil
}

func (f *fakeBlogRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	kept := f.blogs[:0]
	for _, b := range f.blogs {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	f.blogs = kept
	return nil
}

type fakeUserRepo struct {
	users []models.User
	err   error
}

var _ repository.Users = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) Create(ctx context.Context, u models.User) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return apperrors.ErrDuplicateUsername
		}
	}
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Username == username {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}
