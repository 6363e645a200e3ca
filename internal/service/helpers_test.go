package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"behavior-analytics/internal/domain"
	"behavior-analytics/internal/repository"
)

var errStoreDown = errors.New("store down")

// failingStore simula un almacenamiento caido en todas sus operaciones.
type failingStore struct{}

func (failingStore) RegisterUser(context.Context, domain.User) (domain.User, error) {
	return domain.User{}, errors.Join(domain.ErrStorageUnavailable, errStoreDown)
}
func (failingStore) GetUser(context.Context, string) (domain.User, error) {
	return domain.User{}, errors.Join(domain.ErrStorageUnavailable, errStoreDown)
}
func (failingStore) AppendMessage(context.Context, domain.MessageRecord) (int, error) {
	return 0, errors.Join(domain.ErrStorageUnavailable, errStoreDown)
}
func (failingStore) RecentMessages(context.Context, string, int) ([]domain.MessageRecord, error) {
	return nil, errors.Join(domain.ErrStorageUnavailable, errStoreDown)
}
func (failingStore) AllMessages(context.Context, string) ([]domain.MessageRecord, error) {
	return nil, errors.Join(domain.ErrStorageUnavailable, errStoreDown)
}
func (failingStore) MessagesSince(context.Context, string, time.Time) ([]domain.MessageRecord, error) {
	return nil, errors.Join(domain.ErrStorageUnavailable, errStoreDown)
}
func (failingStore) UserSummary(context.Context, string) (domain.UserSummary, error) {
	return domain.UserSummary{}, errors.Join(domain.ErrStorageUnavailable, errStoreDown)
}

var _ repository.HistoryStore = failingStore{}

// countingStore cuenta lecturas de ventana para verificar la cache.
type countingStore struct {
	*repository.MemoryHistoryStore
	recentCalls int
}

func (s *countingStore) RecentMessages(ctx context.Context, userID string, limit int) ([]domain.MessageRecord, error) {
	s.recentCalls++
	return s.MemoryHistoryStore.RecentMessages(ctx, userID, limit)
}

type memoryTraitCache struct {
	items map[string]domain.TraitScores
}

func (c *memoryTraitCache) key(userID string, total int) string {
	return fmt.Sprintf("%s:%d", userID, total)
}

func (c *memoryTraitCache) Get(_ context.Context, userID string, total int) (domain.TraitScores, bool) {
	s, ok := c.items[c.key(userID, total)]
	return s, ok
}

func (c *memoryTraitCache) Set(_ context.Context, userID string, total int, scores domain.TraitScores) {
	if c.items == nil {
		c.items = make(map[string]domain.TraitScores)
	}
	c.items[c.key(userID, total)] = scores
}

func ingestTexts(ctx context.Context, svc *IngestService, userID string, start time.Time, texts ...string) error {
	for i, text := range texts {
		if _, err := svc.Ingest(ctx, IngestInput{UserID: userID, Text: text, SentAt: start.Add(time.Duration(i) * time.Minute)}); err != nil {
			return err
		}
	}
	return nil
}
