package post

import (
	"context"
	"strings"
	"unicode/utf8"

	"circle-service/configs"
	"circle-service/internal/apperr"
	"circle-service/internal/event"
)

// MembershipChecker is the authorization predicate owned by the circle
// registry.
type MembershipChecker interface {
	IsMember(uid string, circleID uint64) (bool, error)
}

// FeedInvalidator drops any cached feed for a circle after its post set
// changes.
type FeedInvalidator interface {
	Invalidate(ctx context.Context, circleID uint64)
}

type Service interface {
	Create(ctx context.Context, authorID string, in CreateReq) (*Post, error)
	GetByID(id uint64) (*Post, error)
	ListByCircle(circleID uint64) ([]Post, error)
	Delete(ctx context.Context, requesterID string, postID uint64) error
}

type service struct {
	repo    Repository
	circles MembershipChecker
	limits  configs.Limits
	events  *event.Writer
	feeds   FeedInvalidator
}

func NewService(r Repository, circles MembershipChecker, limits configs.Limits, events *event.Writer, feeds FeedInvalidator) Service {
	return &service{repo: r, circles: circles, limits: limits, events: events, feeds: feeds}
}

func (s *service) Create(ctx context.Context, authorID string, in CreateReq) (*Post, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, apperr.Validationf("post content is required")
	}
	if utf8.RuneCountInString(content) > s.limits.PostContentMax {
		return nil, apperr.Validationf("post content exceeds %d characters", s.limits.PostContentMax)
	}

	// Membership is checked here, at write time, against current state.
	member, err := s.circles.IsMember(authorID, in.CircleID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, apperr.Forbiddenf("not a member of this circle")
	}

	p := &Post{
		CircleID: in.CircleID,
		AuthorID: authorID,
		Content:  content,
		ImageURL: in.ImageURL,
		VideoURL: in.VideoURL,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	if s.feeds != nil {
		s.feeds.Invalidate(ctx, p.CircleID)
	}
	s.events.Publish(ctx, event.Envelope{
		Type: event.PostCreated, UserID: authorID, CircleID: p.CircleID, PostID: p.ID,
	})
	return p, nil
}

func (s *service) GetByID(id uint64) (*Post, error) {
	return s.repo.FindByID(id)
}

func (s *service) ListByCircle(circleID uint64) ([]Post, error) {
	return s.repo.ListByCircle(circleID)
}

func (s *service) Delete(ctx context.Context, requesterID string, postID uint64) error {
	p, err := s.repo.FindByID(postID)
	if err != nil {
		return err
	}
	if p.AuthorID != requesterID {
		return apperr.Forbiddenf("only the author may delete a post")
	}
	if err := s.repo.Delete(postID); err != nil {
		return err
	}
	if s.feeds != nil {
		s.feeds.Invalidate(ctx, p.CircleID)
	}
	s.events.Publish(ctx, event.Envelope{
		Type: event.PostDeleted, UserID: requesterID, CircleID: p.CircleID, PostID: postID,
	})
	return nil
}
