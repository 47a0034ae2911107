package application

import (
	"context"
	"fmt"
	"sync"

	"cateringbot/internal/domain/entities"
)

// memStates is an in-memory StateStore.
type memStates struct {
	mu sync.Mutex
	m  map[int64]string
}

func newMemStates() *memStates { return &memStates{m: make(map[int64]string)} }

func (s *memStates) Get(_ context.Context, userID int64) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.m[userID]
	return token, ok, nil
}

func (s *memStates) Set(_ context.Context, userID int64, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[userID] = token
	return nil
}

func (s *memStates) Clear(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, userID)
	return nil
}

// memDepartments is an in-memory DepartmentRepository.
type memDepartments struct {
	mu     sync.Mutex
	stored map[string][]int64
	added  []string // "department:chatID" in call order
}

func (r *memDepartments) Add(_ context.Context, chatID int64, department string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.added = append(r.added, fmt.Sprintf("%s:%d", department, chatID))
	return nil
}

func (r *memDepartments) All(_ context.Context) (map[string][]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string][]int64, len(r.stored))
	for k, v := range r.stored {
		out[k] = append([]int64(nil), v...)
	}
	return out, nil
}

// fakePublisher records published drafts.
type fakePublisher struct {
	drafts []entities.Draft
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, draft entities.Draft, _ int64) (*entities.Event, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.drafts = append(p.drafts, draft)
	return &entities.Event{ID: int64(len(p.drafts))}, nil
}

func (p *fakePublisher) ListAll(_ context.Context) ([]entities.Event, error) { return nil, nil }

// keyTranslator renders a message as its key, making replies assertable.
type keyTranslator struct{}

func (keyTranslator) T(_, key string, _ map[string]any) string { return key }

// fakeCourier records sends and can fail selected chats.
type fakeCourier struct {
	mu       sync.Mutex
	sent     []string // "kind:chatID"
	failFor  map[int64]bool
	captions []string
}

func (c *fakeCourier) record(kind string, chatID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failFor[chatID] {
		return fmt.Errorf("chat %d unreachable", chatID)
	}
	c.sent = append(c.sent, fmt.Sprintf("%s:%d", kind, chatID))
	return nil
}

func (c *fakeCourier) SendMessage(_ context.Context, chatID int64, _ string) error {
	return c.record("message", chatID)
}

func (c *fakeCourier) SendMarkdown(_ context.Context, chatID int64, _ string) error {
	return c.record("markdown", chatID)
}

func (c *fakeCourier) SendDocument(_ context.Context, chatID int64, _ string, caption string) error {
	if err := c.record("document", chatID); err != nil {
		return err
	}
	c.mu.Lock()
	c.captions = append(c.captions, caption)
	c.mu.Unlock()
	return nil
}
