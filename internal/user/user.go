package user

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"uniqueIndex;size:64" json:"user_id"`
	Email     string    `gorm:"uniqueIndex;size:255" json:"email"`
	PassHash  string    `json:"-"`
	Name      string    `gorm:"size:100" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
