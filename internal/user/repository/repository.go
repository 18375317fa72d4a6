// Package repository provides identity lookups for the user module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	userModel "github.com/openscholar/review-service/internal/user/model"
)

// Repository defines the interface for identity resolution.
type Repository interface {
	// GetByID finds a user by id.
	GetByID(ctx context.Context, userID string) (*userModel.User, error)

	// GetByEmail finds a user by email.
	GetByEmail(ctx context.Context, email string) (*userModel.User, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new user repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByID finds a user by id.
func (r *repository) GetByID(ctx context.Context, userID string) (*userModel.User, error) {
	var user userModel.User
	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userModel.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail finds a user by email.
func (r *repository) GetByEmail(ctx context.Context, email string) (*userModel.User, error) {
	var user userModel.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userModel.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
