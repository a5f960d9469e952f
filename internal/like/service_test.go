package like

import (
	"context"
	"testing"

	"circle-service/internal/apperr"
	"circle-service/internal/post"
)

type fakeRepo struct {
	likes map[uint64]map[string]bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{likes: map[uint64]map[string]bool{}}
}

func (f *fakeRepo) Toggle(ctx context.Context, uid string, postID uint64) (bool, int64, error) {
	set := f.likes[postID]
	if set == nil {
		set = map[string]bool{}
		f.likes[postID] = set
	}
	liked := !set[uid]
	if liked {
		set[uid] = true
	} else {
		delete(set, uid)
	}
	return liked, int64(len(set)), nil
}

func (f *fakeRepo) Count(ctx context.Context, postID uint64) (int64, error) {
	return int64(len(f.likes[postID])), nil
}

type fakePosts map[uint64]*post.Post

func (f fakePosts) GetByID(id uint64) (*post.Post, error) {
	p, ok := f[id]
	if !ok {
		return nil, apperr.NotFoundf("post not found")
	}
	return p, nil
}

type fakeMembers map[string]map[uint64]bool

func (f fakeMembers) IsMember(uid string, circleID uint64) (bool, error) {
	return f[uid][circleID], nil
}

func TestToggleRoundTrip(t *testing.T) {
	posts := fakePosts{10: {ID: 10, CircleID: 1, AuthorID: "u1"}}
	svc := NewService(newFakeRepo(), posts, fakeMembers{"u2": {1: true}}, nil)
	ctx := context.Background()

	first, err := svc.Toggle(ctx, "u2", 10)
	if err != nil {
		t.Fatalf("first Toggle: %v", err)
	}
	if !first.Liked || first.Likes != 1 {
		t.Fatalf("first toggle = %+v, want liked with count 1", first)
	}

	second, err := svc.Toggle(ctx, "u2", 10)
	if err != nil {
		t.Fatalf("second Toggle: %v", err)
	}
	if second.Liked || second.Likes != 0 {
		t.Fatalf("second toggle = %+v, want unliked with count back to 0", second)
	}
}

func TestToggleByTwoUsers(t *testing.T) {
	posts := fakePosts{10: {ID: 10, CircleID: 1, AuthorID: "u1"}}
	members := fakeMembers{"u1": {1: true}, "u2": {1: true}}
	svc := NewService(newFakeRepo(), posts, members, nil)
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, "u1", 10); err != nil {
		t.Fatalf("u1 Toggle: %v", err)
	}
	out, err := svc.Toggle(ctx, "u2", 10)
	if err != nil {
		t.Fatalf("u2 Toggle: %v", err)
	}
	if out.Likes != 2 {
		t.Fatalf("count = %d after two different users liked, want 2", out.Likes)
	}
}

func TestToggleByNonMember(t *testing.T) {
	posts := fakePosts{10: {ID: 10, CircleID: 1, AuthorID: "u1"}}
	svc := NewService(newFakeRepo(), posts, fakeMembers{}, nil)

	_, err := svc.Toggle(context.Background(), "stranger", 10)
	if !apperr.IsForbidden(err) {
		t.Fatalf("Toggle by non-member err = %v, want forbidden", err)
	}
}

func TestToggleMissingPost(t *testing.T) {
	svc := NewService(newFakeRepo(), fakePosts{}, fakeMembers{"u1": {1: true}}, nil)
	_, err := svc.Toggle(context.Background(), "u1", 42)
	if !apperr.IsNotFound(err) {
		t.Fatalf("Toggle on missing post err = %v, want not-found", err)
	}
}
