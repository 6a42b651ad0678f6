package service

import (
	"context"
	"errors"
	"testing"

	"bloglist/internal/apperrors"
	"bloglist/internal/credentials"
	"bloglist/internal/models"

	"github.com/google/uuid"
)

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name     string
		existing []models.User
		input    RegisterUserInput
		check    func(t *testing.T, err error)
	}{
		{
			name:  "success",
			input: RegisterUserInput{Username: "romiski", Name: "Romiski", Password: "sekret"},
			check: func(t *testing.T, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			},
		},
		{
			name:     "duplicate username wins over other checks",
			existing: []models.User{{ID: "id-1", Username: "romiski"}},
			input:    RegisterUserInput{Username: "romiski", Password: "x"},
			check: func(t *testing.T, err error) {
				if !errors.Is(err, apperrors.ErrDuplicateUsername) {
					t.Fatalf("expected duplicate username, got %v", err)
				}
			},
		},
		{
			name:  "password policy checked before username schema",
			input: RegisterUserInput{Username: "ab", Password: "pw"},
			check: func(t *testing.T, err error) {
				if !apperrors.IsPolicyViolation(err) {
					t.Fatalf("expected policy violation, got %v", err)
				}
				if err.Error() != "Password doesn't meet the requirements" {
					t.Fatalf("unexpected message: %q", err.Error())
				}
			},
		},
		{
			name:  "username shorter than minimum",
			input: RegisterUserInput{Username: "ab", Password: "sekret"},
			check: func(t *testing.T, err error) {
				if !apperrors.IsValidation(err) {
					t.Fatalf("expected validation failure, got %v", err)
				}
				if !contains(err.Error(), "username 'ab'") {
					t.Fatalf("message must cite the username: %q", err.Error())
				}
			},
		},
		{
			name:  "username with special characters",
			input: RegisterUserInput{Username: "rom!ski", Password: "sekret"},
			check: func(t *testing.T, err error) {
				if !apperrors.IsValidation(err) {
					t.Fatalf("expected validation failure, got %v", err)
				}
				if !contains(err.Error(), "special characters") {
					t.Fatalf("unexpected message: %q", err.Error())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeUserRepo{users: tt.existing}
			s := NewUserService(repo)

			user, err := s.Register(context.Background(), tt.input)
			tt.check(t, err)

			if err != nil {
				if len(repo.users) != len(tt.existing) {
					t.Fatalf("rejected registration must not persist: %d users", len(repo.users))
				}
				return
			}
			if _, perr := uuid.Parse(user.ID); perr != nil {
				t.Fatalf("generated id %q is not well-formed: %v", user.ID, perr)
			}
			if user.PasswordHash == tt.input.Password {
				t.Fatalf("password stored in plaintext")
			}
			if verr := credentials.Verify(user.PasswordHash, tt.input.Password); verr != nil {
				t.Fatalf("stored hash does not verify: %v", verr)
			}
		})
	}
}

func TestUserService_List(t *testing.T) {
	repo := &fakeUserRepo{users: []models.User{
		{ID: "id-1", Username: "romiski"},
		{ID: "id-2", Username: "cevichito"},
	}}
	s := NewUserService(repo)

	users, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
