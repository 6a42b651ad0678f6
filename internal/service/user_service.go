package service

import (
	"context"

	"bloglist/internal/apperrors"
	"bloglist/internal/credentials"
	"bloglist/internal/models"
	"bloglist/internal/repository"
	"bloglist/internal/validation"

	"github.com/google/uuid"
)

// RegisterUserInput carries the fields accepted on registration.
type RegisterUserInput struct {
	Username string
	Name     string
	Password string
}

// UserService handles account registration and listing. Registration checks
// run in a fixed order: taken username, password policy, schema validators.
type UserService struct {
	userRepo repository.Users
}

func NewUserService(repo repository.Users) *UserService {
	return &UserService{userRepo: repo}
}

var _ Users = (*UserService)(nil)

// Register creates a new account. The pre-insert existence check is not
// transactional with the insert; the users table carries a UNIQUE constraint
// and the repo maps its violation to the same duplicate-username failure, so
// the losing side of a concurrent registration still gets the mapped answer.
func (s *UserService) Register(ctx context.Context, input RegisterUserInput) (models.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		return models.User{}, err
	}
	if existing != nil {
		return models.User{}, apperrors.ErrDuplicateUsername
	}

	if err := credentials.CheckPolicy(input.Password); err != nil {
		return models.User{}, err
	}
	if err := validation.ValidateUsername(input.Username); err != nil {
		return models.User{}, err
	}

	hash, err := credentials.Hash(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// List returns every stored user.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.FindAll(ctx)
}
