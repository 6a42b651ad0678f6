package service

import (
	"context"
	"errors"
	"testing"

	"bloglist/internal/apperrors"
	"bloglist/internal/credentials"
	"bloglist/internal/models"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	hash, err := credentials.Hash("sekret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &fakeUserRepo{users: []models.User{
		{ID: "id-1", Username: "romiski", Name: "Romiski", PasswordHash: hash},
	}}
	return NewAuthService(repo), repo
}

func TestAuthService_GenerateToken(t *testing.T) {
	s, _ := newAuthFixture(t)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := s.GenerateToken(context.Background(), "romiski", "sekret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Token == "" || result.Username != "romiski" || result.Name != "Romiski" {
			t.Fatalf("unexpected result: %+v", result)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := s.GenerateToken(context.Background(), "nobody", "sekret")
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Fatalf("expected invalid credentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.GenerateToken(context.Background(), "romiski", "wrong")
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Fatalf("expected invalid credentials, got %v", err)
		}
	})
}

func TestAuthService_ParseToken(t *testing.T) {
	s, _ := newAuthFixture(t)

	result, err := s.GenerateToken(context.Background(), "romiski", "sekret")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	userID, err := s.ParseToken(result.Token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != "id-1" {
		t.Fatalf("user id: got %q, want %q", userID, "id-1")
	}

	if _, err := s.ParseToken("not.a.token"); !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}
