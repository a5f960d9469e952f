package user

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"circle-service/internal/apperr"
)

type Service interface {
	Register(email, password, name string) (*User, error)
	Login(email, password string) (*User, error)
	GetByUserID(uid string) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) Register(email, password, name string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperr.Validationf("valid email is required")
	}
	if password == "" {
		return nil, apperr.Validationf("password is required")
	}
	if exist, _ := s.repo.FindByEmail(email); exist != nil {
		return nil, apperr.Conflictf("email already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(&User{
		UserID:   uuid.NewString(),
		Email:    email,
		PassHash: string(hash),
		Name:     strings.TrimSpace(name),
	})
}

func (s *service) Login(email, password string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, apperr.Unauthenticatedf("wrong credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PassHash), []byte(password)) != nil {
		return nil, apperr.Unauthenticatedf("wrong credentials")
	}
	return u, nil
}

func (s *service) GetByUserID(uid string) (*User, error) {
	return s.repo.FindByUserID(uid)
}
