package comment

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(c *Comment) error
	// ListByPost returns comments in append order: ascending primary key,
	// the store's own insertion sequence.
	ListByPost(postID uint64) ([]Comment, error)
}

type repo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository { return &repo{db: db} }

func (r *repo) Create(c *Comment) error {
	return r.db.Create(c).Error
}

func (r *repo) ListByPost(postID uint64) ([]Comment, error) {
	var comments []Comment
	err := r.db.
		Where("post_id = ?", postID).
		Order("id asc").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
