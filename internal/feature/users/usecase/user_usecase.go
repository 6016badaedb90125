package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	domain "scene_backend/internal/domain/entity"
	"scene_backend/internal/feature/users/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 6
)

// ListUsersFilter carries the optional filters and pagination bounds for
// listing users. Empty string fields are skipped.
type ListUsersFilter struct {
	Skip     int64
	Limit    int64
	Username string
	Email    string
	Phone    string
}

// CreateUserInput carries the validated fields for creating a user.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Phone    string
}

// UpdateUserInput carries a partial update. Only non-nil fields are applied.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Phone    *string
}

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the store.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its identifier, soft-deleted or not.
	// It returns ErrUserNotFound when the id is malformed or unknown.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// List returns the users matching the filter, excluding soft-deleted
	// ones, in the store's natural order.
	List(ctx context.Context, filter ListUsersFilter) ([]entity.User, error)

	// Update persists the full current state of an existing user.
	Update(ctx context.Context, user *entity.User) error
}

// UserUsecase implements the user lifecycle business logic.
type UserUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new UserUsecase with the given repository.
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

// validatePassword checks that the password meets the length requirement.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Create registers a new user with a hashed password and fresh timestamps.
// The returned entity's CreateTime and UpdateTime are equal.
func (u *UserUsecase) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		Base:     domain.NewBase(),
		Username: in.Username,
		Email:    in.Email,
		Password: string(hashed),
		Phone:    in.Phone,
		IsActive: true,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns the non-deleted users matching the filter.
func (u *UserUsecase) List(ctx context.Context, filter ListUsersFilter) ([]entity.User, error) {
	return u.users.List(ctx, filter)
}

// GetByID returns the live user with the given id. A soft-deleted user is
// reported as ErrUserNotFound, same as a missing one.
func (u *UserUsecase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.IsDeleted {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update applies the provided fields to an existing user and refreshes the
// update timestamp. Fields left nil are untouched.
func (u *UserUsecase) Update(ctx context.Context, id string, in UpdateUserInput) (*entity.User, error) {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	user.Touch()
	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete soft-deletes a user. The document is never physically removed.
func (u *UserUsecase) Delete(ctx context.Context, id string) error {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.IsDeleted = true
	user.Touch()
	return u.users.Update(ctx, user)
}
