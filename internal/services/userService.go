package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/stayvista/stayvista-server/internal/httperr"
	"github.com/stayvista/stayvista-server/internal/models"
	"github.com/stayvista/stayvista-server/internal/store"
)

var validate = validator.New()

type UserService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

// SaveUser is the upsert-on-first-sight write keyed by email. An existing
// record is only touched when the caller asks to become a host
// (status "Requested"); any other re-save returns the stored record as is.
func (s *UserService) SaveUser(ctx context.Context, user models.User) (models.User, error) {
	if err := validate.Struct(user); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", httperr.ErrInvalidInput, err)
	}

	existing, err := s.users.GetByEmail(ctx, user.Email)
	if err == nil {
		if user.Status == models.StatusRequested {
			if err := s.users.SetStatus(ctx, user.Email, user.Status); err != nil {
				return models.User{}, err
			}
			existing.Status = user.Status
		}
		return existing, nil
	}
	if !errors.Is(err, httperr.ErrNotFound) {
		return models.User{}, err
	}

	// First sight: new users start as guests.
	if user.Role == "" {
		user.Role = models.RoleGuest
	}
	user.Timestamp = time.Now()
	if err := s.users.Upsert(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, email string) (models.User, error) {
	return s.users.GetByEmail(ctx, email)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// UpdateUserRole applies an admin-driven role change. Only role and status
// are mutable; everything else on the record is left untouched.
func (s *UserService) UpdateUserRole(ctx context.Context, email, role, status string) error {
	switch role {
	case models.RoleGuest, models.RoleHost, models.RoleAdmin:
	default:
		return fmt.Errorf("%w: unknown role %q", httperr.ErrInvalidInput, role)
	}
	return s.users.UpdateRole(ctx, email, role, status)
}
