package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/socialdev/internal/domain"
)

// MemoryStore keeps users and posts in process memory. It backs the "memory"
// store driver for local runs and the service and HTTP tests.
type MemoryStore struct {
	mu    sync.RWMutex
	seq   int64
	now   func() time.Time
	users map[string]*memUser
	posts map[string]*memPost
}

type memUser struct {
	user domain.User
	seq  int64
}

type memPost struct {
	post domain.Post
	seq  int64
}

var (
	_ UserRepository = (*memoryUsers)(nil)
	_ PostRepository = (*memoryPosts)(nil)
)

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:   func() time.Time { return time.Now().UTC() },
		users: make(map[string]*memUser),
		posts: make(map[string]*memPost),
	}
}

// WithClock replaces the timestamp source.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

// Users returns the user repository view of the store.
func (s *MemoryStore) Users() UserRepository {
	return &memoryUsers{s}
}

// Posts returns the post repository view of the store.
func (s *MemoryStore) Posts() PostRepository {
	return &memoryPosts{s}
}

type memoryUsers struct {
	s *MemoryStore
}

func (r *memoryUsers) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.user.Email == user.Email {
			return ErrDuplicate
		}
	}
	now := r.s.now()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.s.seq++
	r.s.users[user.ID] = &memUser{user: *user, seq: r.s.seq}
	return nil
}

func (r *memoryUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entry, ok := r.s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	user := entry.user
	return &user, nil
}

func (r *memoryUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, entry := range r.s.users {
		if entry.user.Email == email {
			user := entry.user
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUsers) List(_ context.Context) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entries := make([]*memUser, 0, len(r.s.users))
	for _, entry := range r.s.users {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return newerFirst(entries[i].user.CreatedAt, entries[i].seq, entries[j].user.CreatedAt, entries[j].seq)
	})

	result := make([]domain.User, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entry.user)
	}
	return result, nil
}

func (r *memoryUsers) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.users), nil
}

// Delete removes the user and, like the SQL foreign key, their posts.
func (r *memoryUsers) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.users, id)
	for postID, entry := range r.s.posts {
		if entry.post.UserID == id {
			delete(r.s.posts, postID)
		}
	}
	return nil
}

type memoryPosts struct {
	s *MemoryStore
}

func (r *memoryPosts) Create(_ context.Context, post *domain.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[post.UserID]; !ok {
		return ErrNotFound
	}
	now := r.s.now()
	post.ID = uuid.NewString()
	post.CreatedAt = now
	post.UpdatedAt = now
	stored := *post
	stored.Author = nil
	r.s.seq++
	r.s.posts[post.ID] = &memPost{post: stored, seq: r.s.seq}
	return nil
}

func (r *memoryPosts) Update(_ context.Context, post *domain.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entry, ok := r.s.posts[post.ID]
	if !ok {
		return ErrNotFound
	}
	entry.post.Content = post.Content
	entry.post.UpdatedAt = r.s.now()
	post.UpdatedAt = entry.post.UpdatedAt
	return nil
}

func (r *memoryPosts) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.posts, id)
	return nil
}

func (r *memoryPosts) GetByID(_ context.Context, id string) (*domain.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entry, ok := r.s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	post := r.s.withAuthor(entry.post)
	return &post, nil
}

func (r *memoryPosts) List(_ context.Context) ([]domain.Post, error) {
	return r.filter(func(domain.Post) bool { return true }), nil
}

func (r *memoryPosts) ListByUser(_ context.Context, userID string) ([]domain.Post, error) {
	return r.filter(func(p domain.Post) bool { return p.UserID == userID }), nil
}

func (r *memoryPosts) CountByUser(_ context.Context, userID string) (int, error) {
	return len(r.filter(func(p domain.Post) bool { return p.UserID == userID })), nil
}

func (r *memoryPosts) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.posts), nil
}

func (r *memoryPosts) filter(keep func(domain.Post) bool) []domain.Post {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entries := make([]*memPost, 0, len(r.s.posts))
	for _, entry := range r.s.posts {
		if keep(entry.post) {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return newerFirst(entries[i].post.CreatedAt, entries[i].seq, entries[j].post.CreatedAt, entries[j].seq)
	})

	result := make([]domain.Post, 0, len(entries))
	for _, entry := range entries {
		result = append(result, r.s.withAuthor(entry.post))
	}
	return result
}

// withAuthor must be called with the lock held.
func (s *MemoryStore) withAuthor(post domain.Post) domain.Post {
	if owner, ok := s.users[post.UserID]; ok {
		author := owner.user.Author()
		post.Author = &author
	}
	return post
}

func newerFirst(a time.Time, aSeq int64, b time.Time, bSeq int64) bool {
	if !a.Equal(b) {
		return a.After(b)
	}
	return aSeq > bSeq
}
