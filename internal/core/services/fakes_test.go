package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/vncsmyrnk/kairos/internal/core/domain"
)

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	mu      sync.Mutex
	byLink  map[string]*domain.Event
	nextID  int64
	saveErr error
	getErr  error
	saves   int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		byLink: make(map[string]*domain.Event),
		nextID: 1,
	}
}

func (f *fakeEventRepo) Save(ctx context.Context, e *domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	e.ID = f.nextID
	f.nextID++
	f.saves++
	stored := *e
	stored.TimeSlots = append([]string(nil), e.TimeSlots...)
	f.byLink[e.UniqueLink] = &stored
	return nil
}

func (f *fakeEventRepo) GetByUniqueLink(ctx context.Context, link string) (*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if e, ok := f.byLink[link]; ok {
		out := *e
		return &out, nil
	}
	return nil, domain.ErrEventNotFound
}

// fakeVoteRepo collects saved votes in insertion order.
type fakeVoteRepo struct {
	votes   []*domain.Vote
	saveErr error
}

func (f *fakeVoteRepo) SaveVote(ctx context.Context, v *domain.Vote) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	v.ID = int64(len(f.votes) + 1)
	f.votes = append(f.votes, v)
	return nil
}

// sequenceLinks returns link-1, link-2, ... or err when set.
type sequenceLinks struct {
	n   int
	err error
}

func (g *sequenceLinks) NewLink() (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.n++
	return fmt.Sprintf("link-%06d", g.n), nil
}
