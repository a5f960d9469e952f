package post

import (
	"errors"

	"gorm.io/gorm"

	"circle-service/internal/apperr"
)

type Repository interface {
	Create(p *Post) error
	FindByID(id uint64) (*Post, error)
	// ListByCircle returns posts newest first; equal timestamps fall back
	// to descending id, i.e. insertion order.
	ListByCircle(circleID uint64) ([]Post, error)
	// Delete removes the post together with its likes and comments in one
	// transaction; none of them survive the post.
	Delete(postID uint64) error
}

type repo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository { return &repo{db: db} }

func (r *repo) Create(p *Post) error {
	return r.db.Create(p).Error
}

func (r *repo) FindByID(id uint64) (*Post, error) {
	var p Post
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("post not found")
		}
		return nil, err
	}
	return &p, nil
}

func (r *repo) ListByCircle(circleID uint64) ([]Post, error) {
	var posts []Post
	err := r.db.
		Where("circle_id = ?", circleID).
		Order("created_at desc, id desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *repo) Delete(postID uint64) error {
	// Raw table deletes keep this package free of the like/comment model
	// types; the engagement packages own those.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_likes WHERE post_id = ?", postID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM comments WHERE post_id = ?", postID).Error; err != nil {
			return err
		}
		return tx.Delete(&Post{}, postID).Error
	})
}
