package post

import (
	"context"
	"strings"
	"testing"
	"time"

	"circle-service/configs"
	"circle-service/internal/apperr"
)

var testLimits = configs.Limits{
	CircleNameMax:     50,
	CircleDescMax:     200,
	PostContentMax:    1000,
	CommentContentMax: 500,
}

type fakeRepo struct {
	posts  []*Post
	nextID uint64
}

func (f *fakeRepo) Create(p *Post) error {
	f.nextID++
	p.ID = f.nextID
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	f.posts = append(f.posts, p)
	return nil
}

func (f *fakeRepo) FindByID(id uint64) (*Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperr.NotFoundf("post not found")
}

func (f *fakeRepo) ListByCircle(circleID uint64) ([]Post, error) {
	var out []Post
	for _, p := range f.posts {
		if p.CircleID == circleID {
			out = append(out, *p)
		}
	}
	// created_at desc, id desc — the repository contract.
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			a, b := out[i], out[j]
			if b.CreatedAt.After(a.CreatedAt) ||
				(b.CreatedAt.Equal(a.CreatedAt) && b.ID > a.ID) {
				out[i], out[j] = b, a
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(postID uint64) error {
	for i, p := range f.posts {
		if p.ID == postID {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return apperr.NotFoundf("post not found")
}

type fakeMembers map[string]map[uint64]bool

func (f fakeMembers) IsMember(uid string, circleID uint64) (bool, error) {
	return f[uid][circleID], nil
}

func member(uid string, circleID uint64) fakeMembers {
	return fakeMembers{uid: {circleID: true}}
}

func newTestService(repo Repository, circles MembershipChecker) Service {
	return NewService(repo, circles, testLimits, nil, nil)
}

func TestCreateRequiresMembership(t *testing.T) {
	svc := newTestService(&fakeRepo{}, fakeMembers{})
	_, err := svc.Create(context.Background(), "u1", CreateReq{CircleID: 1, Content: "hello"})
	if !apperr.IsForbidden(err) {
		t.Fatalf("Create by non-member err = %v, want forbidden", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(&fakeRepo{}, member("u1", 1))
	cases := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"too long", strings.Repeat("x", 1001)},
		{"multibyte too long", strings.Repeat("ж", 1001)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "u1", CreateReq{CircleID: 1, Content: tc.content})
			if !apperr.IsValidation(err) {
				t.Fatalf("err = %v, want validation error", err)
			}
		})
	}
}

func TestCreateCountsCharactersNotBytes(t *testing.T) {
	svc := newTestService(&fakeRepo{}, member("u1", 1))
	// 1000 characters, 2000 bytes: inside the bound.
	content := strings.Repeat("ж", 1000)
	if _, err := svc.Create(context.Background(), "u1", CreateReq{CircleID: 1, Content: content}); err != nil {
		t.Fatalf("Create with multibyte content at the bound: %v", err)
	}
}

func TestCreateRecordsOpaqueMediaURLs(t *testing.T) {
	svc := newTestService(&fakeRepo{}, member("u1", 1))
	p, err := svc.Create(context.Background(), "u1", CreateReq{
		CircleID: 1, Content: "hello", ImageURL: "https://cdn.example/a.jpg", VideoURL: "https://cdn.example/b.mp4",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ImageURL != "https://cdn.example/a.jpg" || p.VideoURL != "https://cdn.example/b.mp4" {
		t.Fatalf("media URLs not recorded verbatim: %+v", p)
	}
}

func TestListByCircleNewestFirst(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, member("u1", 1))

	base := time.Now()
	for i, content := range []string{"first", "second", "third"} {
		p, err := svc.Create(context.Background(), "u1", CreateReq{CircleID: 1, Content: content})
		if err != nil {
			t.Fatalf("Create %q: %v", content, err)
		}
		p.CreatedAt = base.Add(time.Duration(i) * time.Minute)
	}

	posts, err := svc.ListByCircle(1)
	if err != nil {
		t.Fatalf("ListByCircle: %v", err)
	}
	got := make([]string, len(posts))
	for i, p := range posts {
		got[i] = p.Content
	}
	want := []string{"third", "second", "first"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("feed order = %v, want %v", got, want)
		}
	}
}

func TestDeleteByNonAuthorForbidden(t *testing.T) {
	repo := &fakeRepo{}
	circles := fakeMembers{"u1": {1: true}, "u2": {1: true}}
	svc := newTestService(repo, circles)

	p, err := svc.Create(context.Background(), "u1", CreateReq{CircleID: 1, Content: "mine"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), "u2", p.ID); !apperr.IsForbidden(err) {
		t.Fatalf("Delete by non-author err = %v, want forbidden", err)
	}
}

func TestDeleteByAuthorThenGone(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, member("u1", 1))

	p, err := svc.Create(context.Background(), "u1", CreateReq{CircleID: 1, Content: "mine"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), "u1", p.ID); err != nil {
		t.Fatalf("Delete by author: %v", err)
	}
	if _, err := svc.GetByID(p.ID); !apperr.IsNotFound(err) {
		t.Fatalf("GetByID after delete err = %v, want not-found", err)
	}
	// Deletion is terminal: a second delete sees no entity.
	if err := svc.Delete(context.Background(), "u1", p.ID); !apperr.IsNotFound(err) {
		t.Fatalf("second Delete err = %v, want not-found", err)
	}
}

func TestDeleteMissingPost(t *testing.T) {
	svc := newTestService(&fakeRepo{}, member("u1", 1))
	if err := svc.Delete(context.Background(), "u1", 42); !apperr.IsNotFound(err) {
		t.Fatalf("Delete missing err = %v, want not-found", err)
	}
}
