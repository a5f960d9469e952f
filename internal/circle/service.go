package circle

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"circle-service/configs"
	"circle-service/internal/apperr"
)

// maxCodeAttempts bounds invite-code regeneration when a freshly drawn
// code collides with an existing circle.
const maxCodeAttempts = 5

type Service interface {
	Create(creatorID, name, description string) (*Circle, error)
	ListMine(uid string) ([]Circle, error)
	Join(uid, code string) (*Circle, error)
	Leave(uid string, circleID uint64) error

	// IsMember is the authorization predicate every circle-scoped read
	// and mutation goes through. It reports false for an absent circle.
	IsMember(uid string, circleID uint64) (bool, error)
}

type service struct {
	repo      Repository
	limits    configs.Limits
	codeBytes int
}

func NewService(r Repository, limits configs.Limits, inviteCodeBytes int) Service {
	return &service{repo: r, limits: limits, codeBytes: inviteCodeBytes}
}

func (s *service) Create(creatorID, name, description string) (*Circle, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validationf("circle name is required")
	}
	if utf8.RuneCountInString(name) > s.limits.CircleNameMax {
		return nil, apperr.Validationf("circle name exceeds %d characters", s.limits.CircleNameMax)
	}
	if utf8.RuneCountInString(description) > s.limits.CircleDescMax {
		return nil, apperr.Validationf("description exceeds %d characters", s.limits.CircleDescMax)
	}

	// The uniqueness pre-check in freshInviteCode can race a concurrent
	// Create drawing the same code; the unique index then reports a
	// conflict and we draw again.
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := s.freshInviteCode()
		if err != nil {
			return nil, err
		}
		c := &Circle{
			Name:        name,
			Description: description,
			CreatorID:   creatorID,
			InviteCode:  code,
		}
		err = s.repo.CreateWithCreator(c)
		if apperr.IsConflict(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("could not create circle with a unique invite code after %d attempts", maxCodeAttempts)
}

func (s *service) freshInviteCode() (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := NewInviteCode(s.codeBytes)
		if err != nil {
			return "", err
		}
		if _, err := s.repo.FindByInviteCode(code); apperr.IsNotFound(err) {
			return code, nil
		} else if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("could not generate a unique invite code after %d attempts", maxCodeAttempts)
}

func (s *service) ListMine(uid string) ([]Circle, error) {
	return s.repo.ListForUser(uid)
}

func (s *service) Join(uid, code string) (*Circle, error) {
	c, err := s.repo.FindByInviteCode(code)
	if err != nil {
		return nil, err
	}
	member, err := s.repo.IsMember(uid, c.ID)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, apperr.Conflictf("already a member")
	}
	if err := s.repo.AddMember(c.ID, uid); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Leave(uid string, circleID uint64) error {
	if _, err := s.repo.FindByID(circleID); err != nil {
		return err
	}
	// Removing a non-member is a no-op: leave is safe to retry.
	return s.repo.RemoveMember(circleID, uid)
}

func (s *service) IsMember(uid string, circleID uint64) (bool, error) {
	return s.repo.IsMember(uid, circleID)
}
