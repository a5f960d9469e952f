package post

import "time"

type Post struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	CircleID uint64 `gorm:"index" json:"circle_id"`
	AuthorID string `gorm:"size:64;index" json:"author_id"`
	Content  string `gorm:"type:text" json:"content"`
	// Media is recorded as opaque URLs; the service never fetches or
	// processes it.
	ImageURL  string    `gorm:"size:512" json:"image_url"`
	VideoURL  string    `gorm:"size:512" json:"video_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateReq struct {
	CircleID uint64 `json:"circle_id"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
	VideoURL string `json:"video_url"`
}
