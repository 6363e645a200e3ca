package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"behavior-analytics/internal/domain"
)

// MemoryHistoryStore guarda el historial en memoria. Un unico mutex cubre
// append y contador, por lo que ambos cambian juntos.
type MemoryHistoryStore struct {
	mu       sync.RWMutex
	users    map[string]domain.User
	messages map[string][]domain.MessageRecord
}

func NewMemoryHistoryStore() *MemoryHistoryStore {
	return &MemoryHistoryStore{
		users:    make(map[string]domain.User),
		messages: make(map[string][]domain.MessageRecord),
	}
}

func (s *MemoryHistoryStore) RegisterUser(_ context.Context, user domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.users[user.ID]; ok {
		return existing, nil
	}
	user.TotalMessages = 0
	s.users[user.ID] = user
	return user, nil
}

func (s *MemoryHistoryStore) GetUser(_ context.Context, userID string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *MemoryHistoryStore) AppendMessage(_ context.Context, record domain.MessageRecord) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[record.UserID]
	if !ok {
		return 0, domain.ErrUserNotFound
	}
	u.TotalMessages++
	s.users[record.UserID] = u

	msgs := append(s.messages[record.UserID], record)
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	s.messages[record.UserID] = msgs
	return u.TotalMessages, nil
}

func (s *MemoryHistoryStore) RecentMessages(_ context.Context, userID string, limit int) ([]domain.MessageRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := s.messages[userID]
	if limit <= 0 || limit > len(msgs) {
		limit = len(msgs)
	}
	out := make([]domain.MessageRecord, 0, limit)
	for i := len(msgs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, msgs[i])
	}
	return out, nil
}

func (s *MemoryHistoryStore) AllMessages(_ context.Context, userID string) ([]domain.MessageRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.MessageRecord(nil), s.messages[userID]...), nil
}

func (s *MemoryHistoryStore) MessagesSince(_ context.Context, userID string, since time.Time) ([]domain.MessageRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.MessageRecord
	for _, m := range s.messages[userID] {
		if m.CreatedAt.After(since) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *MemoryHistoryStore) UserSummary(_ context.Context, userID string) (domain.UserSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := s.messages[userID]
	if len(msgs) == 0 {
		return domain.UserSummary{}, nil
	}
	var polSum, wordSum float64
	for _, m := range msgs {
		polSum += m.Polarity
		wordSum += float64(m.WordCount)
	}
	first := msgs[0].CreatedAt
	last := msgs[len(msgs)-1].CreatedAt
	n := float64(len(msgs))
	return domain.UserSummary{
		TotalCount:    len(msgs),
		MeanPolarity:  polSum / n,
		MeanWordCount: wordSum / n,
		FirstAt:       &first,
		LastAt:        &last,
	}, nil
}
