package like

import (
	"context"

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
	// Toggle is a true client-visible toggle, not a set-once call: two
	// sequential toggles by the same user flip the like twice and return
	// the count to its original value.
	Toggle(ctx context.Context, uid string, postID uint64) (*ToggleResponse, error)
}

type service struct {
	repo    Repository
	posts   PostFinder
	circles MembershipChecker
	events  *event.Writer
}

func NewService(r Repository, posts PostFinder, circles MembershipChecker, events *event.Writer) Service {
	return &service{repo: r, posts: posts, circles: circles, events: events}
}

func (s *service) Toggle(ctx context.Context, uid string, postID uint64) (*ToggleResponse, error) {
	// A deleted post is simply gone; the toggle fails as not-found.
	p, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}
	// Membership is re-validated against current state on every call, not
	// carried over from an earlier feed read.
	member, err := s.circles.IsMember(uid, p.CircleID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, apperr.Forbiddenf("not a member of this circle")
	}

	liked, count, err := s.repo.Toggle(ctx, uid, postID)
	if err != nil {
		return nil, err
	}
	typ := event.PostUnliked
	if liked {
		typ = event.PostLiked
	}
	s.events.Publish(ctx, event.Envelope{
		Type: typ, UserID: uid, CircleID: p.CircleID, PostID: postID,
	})
	return &ToggleResponse{Liked: liked, Likes: count}, nil
}
