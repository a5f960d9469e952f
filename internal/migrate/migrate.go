package migrate

import (
	"circle-service/internal/circle"
	"circle-service/internal/comment"
	"circle-service/internal/like"
	"circle-service/internal/post"
	"circle-service/internal/shared/db"
	"circle-service/internal/user"
)

func AutoMigrateAll(store *db.Store) error {
	return store.DB.AutoMigrate(
		&user.User{},
		&circle.Circle{},
		&circle.Member{},
		&post.Post{},
		&like.PostLike{},
		&comment.Comment{},
	)
}
