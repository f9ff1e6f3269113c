package handler_test

// In-memory store fakes implementing the handler store interfaces. They
// mirror the repository semantics: sentinel errors, owner scoping and
// partial updates via nil fields.

import (
	"context"
	"sort"
	"time"

	"github.com/bertdev/bookmarks-api/internal/repository"
)

type fakeUserStore struct {
	users  map[uint64]repository.User
	nextID uint64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint64]repository.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, email, passwordHash string) (repository.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return repository.User{}, repository.ErrEmailTaken
		}
	}
	f.nextID++
	now := time.Now().UTC()
	u := repository.User{ID: f.nextID, Email: email, PasswordHash: passwordHash, CreatedAt: now, UpdatedAt: now}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (repository.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return repository.User{}, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id uint64) (repository.User, error) {
	u, ok := f.users[id]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) UpdateEmail(_ context.Context, id uint64, email *string) (repository.User, error) {
	u, ok := f.users[id]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	if email != nil {
		for _, other := range f.users {
			if other.ID != id && other.Email == *email {
				return repository.User{}, repository.ErrEmailTaken
			}
		}
		u.Email = *email
	}
	u.UpdatedAt = time.Now().UTC()
	f.users[id] = u
	return u, nil
}

type fakeBookmarkStore struct {
	bookmarks map[uint64]repository.Bookmark
	nextID    uint64
}

func newFakeBookmarkStore() *fakeBookmarkStore {
	return &fakeBookmarkStore{bookmarks: map[uint64]repository.Bookmark{}}
}

func (f *fakeBookmarkStore) Create(_ context.Context, ownerID uint64, title, link string, description *string) (repository.Bookmark, error) {
	f.nextID++
	now := time.Now().UTC()
	b := repository.Bookmark{
		ID: f.nextID, UserID: ownerID,
		Title: title, Link: link, Description: description,
		CreatedAt: now, UpdatedAt: now,
	}
	f.bookmarks[b.ID] = b
	return b, nil
}

func (f *fakeBookmarkStore) ListByOwner(_ context.Context, ownerID uint64) ([]repository.Bookmark, error) {
	out := []repository.Bookmark{}
	for _, b := range f.bookmarks {
		if b.UserID == ownerID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeBookmarkStore) GetByIDAndOwner(_ context.Context, id, ownerID uint64) (repository.Bookmark, error) {
	b, ok := f.bookmarks[id]
	if !ok || b.UserID != ownerID {
		return repository.Bookmark{}, repository.ErrBookmarkNotFound
	}
	return b, nil
}

func (f *fakeBookmarkStore) Update(_ context.Context, id, ownerID uint64, title, link, description *string) (repository.Bookmark, error) {
	b, ok := f.bookmarks[id]
	if !ok || b.UserID != ownerID {
		return repository.Bookmark{}, repository.ErrBookmarkNotFound
	}
	if title != nil {
		b.Title = *title
	}
	if link != nil {
		b.Link = *link
	}
	if description != nil {
		b.Description = description
	}
	b.UpdatedAt = time.Now().UTC()
	f.bookmarks[id] = b
	return b, nil
}

func (f *fakeBookmarkStore) DeleteByIDAndOwner(_ context.Context, id, ownerID uint64) error {
	b, ok := f.bookmarks[id]
	if !ok || b.UserID != ownerID {
		return repository.ErrBookmarkNotFound
	}
	delete(f.bookmarks, id)
	return nil
}
