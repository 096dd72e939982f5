package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"go-garment-supply/internal/apperr"
	"go-garment-supply/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*model.User, error)
	// Delete removes the user and everything transitively owned (the
	// foreign keys cascade) and returns the pre-deletion snapshot.
	Delete(ctx context.Context, id uint) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("phone number %w", apperr.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %w", apperr.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "phone_number = ?", phoneNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %w", apperr.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Delete(ctx context.Context, id uint) (*model.User, error) {
	user, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return user, nil
}
