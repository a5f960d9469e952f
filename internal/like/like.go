package like

import "time"

// PostLike is one user's like on one post; the composite primary key is
// what gives likes their set semantics.
type PostLike struct {
	PostID    uint64    `gorm:"primaryKey;index" json:"post_id"`
	UserID    string    `gorm:"primaryKey;size:64;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ToggleResponse struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}
