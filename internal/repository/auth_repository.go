package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/Loccar-Locadora/Loccar-Auth-API/internal/errors"
	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/model"
)

// AuthRepository defines persistence operations for the auth flows.
type AuthRepository interface {
	// FindUserByEmail returns the active (or legacy, unspecified-active) user
	// holding the email, roles preloaded, or nil when no such user exists.
	// Absence is not an error.
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	// RegisterUser persists a new user, attaching any pre-existing roles by
	// id without re-inserting them. Returns errors.ErrUserAlreadyExists when
	// the email unique index rejects the insert.
	RegisterUser(ctx context.Context, user *model.User) error
}

type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository builds a GORM-backed repository.
func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, nil
	}

	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("LOWER(email) = ? AND (is_active = ? OR is_active IS NULL)", strings.ToLower(email), true).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (r *authRepository) RegisterUser(ctx context.Context, user *model.User) error {
	if user.IsActive == nil {
		active := true
		user.IsActive = &active
	}

	// Roles arrive as id-only references to shared reference data. Keep just
	// the id stubs and skip upserting the roles table: Omit("Roles.*") still
	// writes the user_roles join rows, so existing roles are attached without
	// risking duplicate-key failures on them.
	attached := make([]model.Role, 0, len(user.Roles))
	for _, role := range user.Roles {
		if role.ID != 0 {
			attached = append(attached, model.Role{ID: role.ID})
		}
	}
	user.Roles = attached

	err := r.db.WithContext(ctx).Omit("Roles.*").Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrUserAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("register user: %w", err)
	}
	return nil
}
