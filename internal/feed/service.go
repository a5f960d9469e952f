// Package feed assembles the visible post list for a (user, circle)
// pair. It is the single read-path authorization gate: content is only
// returned after a live membership check.
package feed

import (
	"context"

	"circle-service/internal/apperr"
	"circle-service/internal/post"
)

type MembershipChecker interface {
	IsMember(uid string, circleID uint64) (bool, error)
}

type PostLister interface {
	ListByCircle(circleID uint64) ([]post.Post, error)
}

type Service interface {
	GetFeed(ctx context.Context, uid string, circleID uint64) ([]post.Post, error)
}

type service struct {
	circles MembershipChecker
	posts   PostLister
	cache   *Cache
}

// NewService wires the gate; cache may be nil, in which case every read
// goes to the store.
func NewService(circles MembershipChecker, posts PostLister, cache *Cache) Service {
	return &service{circles: circles, posts: posts, cache: cache}
}

func (s *service) GetFeed(ctx context.Context, uid string, circleID uint64) ([]post.Post, error) {
	member, err := s.circles.IsMember(uid, circleID)
	if err != nil {
		return nil, err
	}
	if !member {
		// An absent circle also lands here: a non-member cannot probe
		// whether a circle exists.
		return nil, apperr.Forbiddenf("not a member of this circle")
	}

	if s.cache != nil {
		if posts, ok := s.cache.Get(ctx, circleID); ok {
			return posts, nil
		}
	}
	posts, err := s.posts.ListByCircle(circleID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, circleID, posts)
	}
	return posts, nil
}
