package contact

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryStore struct {
	mu          sync.Mutex
	submissions map[string]Submission
	order       []string

	now   func() time.Time
	newID func() string
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		submissions: make(map[string]Submission),
		now:         func() time.Time { return time.Now().UTC() },
		newID:       func() string { return uuid.New().String() },
	}
}

func (s *InMemoryStore) Create(ctx context.Context, in Input) (*Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := Submission{
		ID:        s.newID(),
		Input:     in,
		CreatedAt: s.now(),
	}
	s.submissions[sub.ID] = sub
	s.order = append(s.order, sub.ID)

	return &sub, nil
}

func (s *InMemoryStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}
