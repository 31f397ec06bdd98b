package db

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"minifeed/internal/model"
)

type ReactionRepository struct {
	DB *gorm.DB
}

// Add stores the reaction unless the (post, author, emoji) triple is already
// present. inserted is false for the duplicate case, which is not an error.
func (r *ReactionRepository) Add(ctx context.Context, reaction *model.Reaction) (inserted bool, err error) {
	res := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}, {Name: "author"}, {Name: "emoji"}},
			DoNothing: true,
		}).
		Omit(clause.Associations).
		Create(reaction)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// CountGrouped returns the number of reactions per (post, emoji).
func (r *ReactionRepository) CountGrouped(ctx context.Context) ([]model.ReactionCount, error) {
	var rows []model.ReactionCount
	err := r.DB.WithContext(ctx).
		Model(&model.Reaction{}).
		Select("post_id, emoji, COUNT(*) AS count").
		Group("post_id, emoji").
		Order("post_id, emoji").
		Scan(&rows).Error
	return rows, err
}

func (r *ReactionRepository) Count(ctx context.Context, postID uint64, author, emoji string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Reaction{}).
		Where("post_id = ? AND author = ? AND emoji = ?", postID, author, emoji).
		Count(&count).Error
	return count, err
}
