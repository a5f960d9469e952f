package like

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Repository interface {
	// Toggle flips uid's presence in the post's like set and returns the
	// resulting state and count. The delete-then-insert runs in one
	// transaction: concurrent togglers by different users never lose an
	// update, and the same user's concurrent toggles serialize on the
	// composite primary key.
	Toggle(ctx context.Context, uid string, postID uint64) (liked bool, count int64, err error)
	Count(ctx context.Context, postID uint64) (int64, error)
}

type repo struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewRepository(db *gorm.DB, rdb *redis.Client) Repository {
	return &repo{db: db, rdb: rdb}
}

func likeKey(postID uint64) string { return fmt.Sprintf("fb:likes:%d", postID) }

func (r *repo) Toggle(ctx context.Context, uid string, postID uint64) (bool, int64, error) {
	var liked bool
	var count int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&PostLike{}, "post_id = ? AND user_id = ?", postID, uid)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if err := tx.Create(&PostLike{PostID: postID, UserID: uid}).Error; err != nil {
				return err
			}
			liked = true
		}
		return tx.Model(&PostLike{}).Where("post_id = ?", postID).Count(&count).Error
	})
	if err != nil {
		return false, 0, err
	}
	if r.rdb != nil {
		_ = r.rdb.Set(ctx, likeKey(postID), count, 0).Err()
	}
	return liked, count, nil
}

func (r *repo) Count(ctx context.Context, postID uint64) (int64, error) {
	if r.rdb != nil {
		if n, err := r.rdb.Get(ctx, likeKey(postID)).Int64(); err == nil {
			return n, nil
		}
	}
	var count int64
	if err := r.db.Model(&PostLike{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	if r.rdb != nil {
		_ = r.rdb.Set(ctx, likeKey(postID), count, 0).Err()
	}
	return count, nil
}
