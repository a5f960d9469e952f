package user

import (
	"errors"

	"gorm.io/gorm"

	"circle-service/internal/apperr"
)

type Repository interface {
	Create(u *User) (*User, error)
	FindByEmail(email string) (*User, error)
	FindByUserID(uid string) (*User, error)
}

type repo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository { return &repo{db: db} }

func (r *repo) Create(u *User) (*User, error) {
	if err := r.db.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) FindByEmail(email string) (*User, error) {
	var u User
	if err := r.db.First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user not found")
		}
		return nil, err
	}
	return &u, nil
}

func (r *repo) FindByUserID(uid string) (*User, error) {
	var u User
	if err := r.db.First(&u, "user_id = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user not found")
		}
		return nil, err
	}
	return &u, nil
}
