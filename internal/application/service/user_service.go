package service

import (
	"context"
	"strings"

	"pdv-client/internal/domain/entity"
	"pdv-client/internal/infrastructure/session"
	"pdv-client/pkg/apperror"
)

// UserService is the admin surface over operator accounts. Listing and
// mutation are admin-only; the check runs client-side so the menu and the
// API agree, and the backend enforces it again regardless.
type UserService struct{}

// NewUserService creates a new user service.
func NewUserService() *UserService {
	return &UserService{}
}

// ListUsers returns all operator accounts.
func (s *UserService) ListUsers(ctx context.Context, sess *session.Session) ([]entity.User, error) {
	if !sess.User.IsAdmin() {
		return nil, apperror.ErrForbidden
	}
	return sess.API.ListUsers(ctx)
}

// CreateUser validates and forwards a new account. A password is required
// on creation only.
func (s *UserService) CreateUser(ctx context.Context, sess *session.Session, input *entity.UserInput) (*entity.User, error) {
	if !sess.User.IsAdmin() {
		return nil, apperror.ErrForbidden
	}
	if err := validateUserInput(input, true); err != nil {
		return nil, err
	}
	return sess.API.CreateUser(ctx, input)
}

// UpdateUser validates and forwards an account update. An empty password
// leaves the current one untouched.
func (s *UserService) UpdateUser(ctx context.Context, sess *session.Session, id uint, input *entity.UserInput) (*entity.User, error) {
	if !sess.User.IsAdmin() {
		return nil, apperror.ErrForbidden
	}
	if err := validateUserInput(input, false); err != nil {
		return nil, err
	}
	return sess.API.UpdateUser(ctx, id, input)
}

// DeleteUser removes an account. Deleting yourself is rejected so an admin
// cannot lock the store out.
func (s *UserService) DeleteUser(ctx context.Context, sess *session.Session, id uint) error {
	if !sess.User.IsAdmin() {
		return apperror.ErrForbidden
	}
	if id == sess.User.ID {
		return apperror.NewBadRequestError("You cannot delete your own account")
	}
	return sess.API.DeleteUser(ctx, id)
}

func validateUserInput(input *entity.UserInput, requirePassword bool) error {
	var fieldErrors []apperror.FieldError

	if strings.TrimSpace(input.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "email", Message: "Email is required"})
	}
	if (requirePassword || input.Password != "") && len(input.Password) < 6 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
