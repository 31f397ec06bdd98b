package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"minifeed/internal/model"
)

type UserRepository struct {
	DB *gorm.DB
}

// Create inserts the user; an existing username yields ErrDuplicateUser and
// leaves the stored row untouched.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	res := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(user)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUser
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDuplicateUser
	}
	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Exists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.User{}).
		Where("username = ?", username).
		Count(&count).Error
	return count > 0, err
}

// Delete removes the user and, through the foreign keys, everything they wrote.
// Not reachable over HTTP.
func (r *UserRepository) Delete(ctx context.Context, username string) error {
	return r.DB.WithContext(ctx).Where("username = ?", username).Delete(&model.User{}).Error
}
