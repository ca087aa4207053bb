package visitor

import (
	"sync"
	"time"
)

// MemoryStore 进程内标记存储，供压测工具与测试使用
type MemoryStore struct {
	mu    sync.RWMutex
	marks map[string]time.Time
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{marks: make(map[string]time.Time), now: time.Now}
}

func (s *MemoryStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	exp, ok := s.marks[key]
	return ok && s.now().Before(exp)
}

func (s *MemoryStore) Set(key string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = MarkTTL
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marks[key] = s.now().Add(ttl)
}

func (s *MemoryStore) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.marks, key)
}
