package comment

import (
	"context"
	"strings"
	"unicode/utf8"

	"circle-service/configs"
	"circle-service/internal/apperr"
	"circle-service/internal/event"
	"circle-service/internal/post"
)

type MembershipChecker interface {
	IsMember(uid string, circleID uint64) (bool, error)
}

type PostFinder interface {
	GetByID(id uint64) (*post.Post, error)
}

type Service interface {
	// Add appends a comment with a server-assigned timestamp and returns
	// the post's full comment log in append order, mirroring what a
	// client renders after commenting.
	Add(ctx context.Context, uid string, postID uint64, content string) ([]Comment, error)
	ListByPost(uid string, postID uint64) ([]Comment, error)
}

type service struct {
	repo    Repository
	posts   PostFinder
	circles MembershipChecker
	limits  configs.Limits
	events  *event.Writer
}

func NewService(r Repository, posts PostFinder, circles MembershipChecker, limits configs.Limits, events *event.Writer) Service {
	return &service{repo: r, posts: posts, circles: circles, limits: limits, events: events}
}

func (s *service) authorize(uid string, postID uint64) (*post.Post, error) {
	p, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}
	member, err := s.circles.IsMember(uid, p.CircleID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, apperr.Forbiddenf("not a member of this circle")
	}
	return p, nil
}

func (s *service) Add(ctx context.Context, uid string, postID uint64, content string) ([]Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.Validationf("comment content is required")
	}
	if utf8.RuneCountInString(content) > s.limits.CommentContentMax {
		return nil, apperr.Validationf("comment content exceeds %d characters", s.limits.CommentContentMax)
	}
	p, err := s.authorize(uid, postID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(&Comment{PostID: postID, AuthorID: uid, Content: content}); err != nil {
		return nil, err
	}
	s.events.Publish(ctx, event.Envelope{
		Type: event.CommentCreated, UserID: uid, CircleID: p.CircleID, PostID: postID,
	})
	return s.repo.ListByPost(postID)
}

func (s *service) ListByPost(uid string, postID uint64) ([]Comment, error) {
	if _, err := s.authorize(uid, postID); err != nil {
		return nil, err
	}
	return s.repo.ListByPost(postID)
}
