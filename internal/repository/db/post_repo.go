package db

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"minifeed/internal/model"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	return translate(r.DB.WithContext(ctx).Omit(clause.Associations).Create(post).Error)
}

// ListNewestFirst returns every post; ties on the timestamp fall back to id.
func (r *PostRepository) ListNewestFirst(ctx context.Context) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.WithContext(ctx).
		Order("created DESC, id DESC").
		Find(&list).Error
	return list, err
}

func (r *PostRepository) Delete(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Delete(&model.Post{}, id).Error
}
