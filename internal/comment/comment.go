package comment

import "time"

// Comment is one entry in a post's append-only comment log. Comments are
// never edited or removed on their own; they disappear only when their
// post is deleted.
type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"index" json:"post_id"`
	AuthorID  string    `gorm:"size:64;index" json:"author_id"`
	Content   string    `gorm:"size:500" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReq struct {
	Content string `json:"content"`
}
