package comment

import (
	"context"
	"strings"
	"testing"

	"circle-service/configs"
	"circle-service/internal/apperr"
	"circle-service/internal/post"
)

var testLimits = configs.Limits{
	CircleNameMax:     50,
	CircleDescMax:     200,
	PostContentMax:    1000,
	CommentContentMax: 500,
}

type fakeRepo struct {
	comments []Comment
	nextID   uint64
}

func (f *fakeRepo) Create(c *Comment) error {
	f.nextID++
	c.ID = f.nextID
	f.comments = append(f.comments, *c)
	return nil
}

func (f *fakeRepo) ListByPost(postID uint64) ([]Comment, error) {
	var out []Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
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

func newTestService(repo Repository, posts PostFinder, circles MembershipChecker) Service {
	return NewService(repo, posts, circles, testLimits, nil)
}

func TestAddReturnsAppendOrder(t *testing.T) {
	posts := fakePosts{10: {ID: 10, CircleID: 1, AuthorID: "u1"}}
	svc := newTestService(&fakeRepo{}, posts, fakeMembers{"u2": {1: true}})
	ctx := context.Background()

	if _, err := svc.Add(ctx, "u2", 10, "a"); err != nil {
		t.Fatalf("Add a: %v", err)
	}
	comments, err := svc.Add(ctx, "u2", 10, "b")
	if err != nil {
		t.Fatalf("Add b: %v", err)
	}
	if len(comments) != 2 || comments[0].Content != "a" || comments[1].Content != "b" {
		t.Fatalf("comments = %+v, want [a b] in append order", comments)
	}
}

func TestAddValidation(t *testing.T) {
	posts := fakePosts{10: {ID: 10, CircleID: 1}}
	svc := newTestService(&fakeRepo{}, posts, fakeMembers{"u2": {1: true}})
	cases := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace", "  "},
		{"too long", strings.Repeat("x", 501)},
		{"multibyte too long", strings.Repeat("ж", 501)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), "u2", 10, tc.content)
			if !apperr.IsValidation(err) {
				t.Fatalf("err = %v, want validation error", err)
			}
		})
	}
}

func TestAddCountsCharactersNotBytes(t *testing.T) {
	posts := fakePosts{10: {ID: 10, CircleID: 1}}
	svc := newTestService(&fakeRepo{}, posts, fakeMembers{"u2": {1: true}})
	// 500 characters, 1000 bytes: inside the bound.
	if _, err := svc.Add(context.Background(), "u2", 10, strings.Repeat("ж", 500)); err != nil {
		t.Fatalf("Add with multibyte content at the bound: %v", err)
	}
}

func TestRejectedCommentNeverAppears(t *testing.T) {
	repo := &fakeRepo{}
	posts := fakePosts{10: {ID: 10, CircleID: 1}}
	svc := newTestService(repo, posts, fakeMembers{"u2": {1: true}})
	ctx := context.Background()

	if _, err := svc.Add(ctx, "u2", 10, ""); err == nil {
		t.Fatal("empty comment accepted")
	}
	comments, err := svc.ListByPost("u2", 10)
	if err != nil {
		t.Fatalf("ListByPost: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("rejected comment committed: %+v", comments)
	}
}

func TestAddByNonMember(t *testing.T) {
	posts := fakePosts{10: {ID: 10, CircleID: 1}}
	svc := newTestService(&fakeRepo{}, posts, fakeMembers{})
	_, err := svc.Add(context.Background(), "stranger", 10, "hi")
	if !apperr.IsForbidden(err) {
		t.Fatalf("Add by non-member err = %v, want forbidden", err)
	}
}

func TestAddToMissingPost(t *testing.T) {
	svc := newTestService(&fakeRepo{}, fakePosts{}, fakeMembers{"u1": {1: true}})
	_, err := svc.Add(context.Background(), "u1", 42, "hi")
	if !apperr.IsNotFound(err) {
		t.Fatalf("Add to missing post err = %v, want not-found", err)
	}
}

func TestListRequiresMembership(t *testing.T) {
	posts := fakePosts{10: {ID: 10, CircleID: 1}}
	svc := newTestService(&fakeRepo{}, posts, fakeMembers{})
	_, err := svc.ListByPost("stranger", 10)
	if !apperr.IsForbidden(err) {
		t.Fatalf("ListByPost by non-member err = %v, want forbidden", err)
	}
}
