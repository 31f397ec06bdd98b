package db

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"minifeed/internal/model"
)

type CommentRepository struct {
	DB *gorm.DB
}

// Create inserts the comment. A post_id with no post behind it is rejected by
// the foreign key and reported as ErrReferenceMissing.
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return translate(r.DB.WithContext(ctx).Omit(clause.Associations).Create(comment).Error)
}

// ListAll returns every comment, oldest first.
func (r *CommentRepository) ListAll(ctx context.Context) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.WithContext(ctx).
		Order("created ASC, id ASC").
		Find(&list).Error
	return list, err
}
