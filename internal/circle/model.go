package circle

import "time"

type Circle struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50" json:"name"`
	Description string `gorm:"size:200" json:"description"`
	// CreatorID is provenance only: there is no admin role, and the
	// creator may leave like any other member.
	CreatorID  string    `gorm:"size:64;index" json:"creator_id"`
	InviteCode string    `gorm:"uniqueIndex;size:64" json:"invite_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Member is one membership row; the composite primary key makes a user's
// membership in a circle unique at the store level.
type Member struct {
	CircleID  uint64    `gorm:"primaryKey" json:"circle_id"`
	UserID    string    `gorm:"primaryKey;size:64" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
