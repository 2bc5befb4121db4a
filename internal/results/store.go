// Package results caches scored result sets so "load more" can page through
// them without rerunning discovery. The store is keyed by search ID, guarded
// by a mutex, and evicts entries on a TTL so abandoned sessions do not
// accumulate.
package results

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/model"
)

// ErrNotFound is returned when a search ID is unknown or already evicted.
var ErrNotFound = eris.New("results: search not found")

type entry struct {
	set     model.ResultSet
	expires time.Time
}

// Store is the keyed, TTL-bounded result cache. Concurrent discovery runs
// never touch each other's sets; a new run for the same session key
// supersedes the old one.
type Store struct {
	mu       sync.Mutex
	entries  map[string]*entry
	byKey    map[string]string
	ttl      time.Duration
	pageSize int
	stop     chan struct{}
	stopOnce sync.Once

	// nowFunc is swapped in tests to control expiry.
	nowFunc func() time.Time
}

// NewStore creates a Store and starts its background sweeper.
func NewStore(ttl, sweepEvery time.Duration, defaultPageSize int) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if sweepEvery <= 0 {
		sweepEvery = time.Minute
	}
	if defaultPageSize <= 0 {
		defaultPageSize = 10
	}
	s := &Store{
		entries:  make(map[string]*entry),
		byKey:    make(map[string]string),
		ttl:      ttl,
		pageSize: defaultPageSize,
		stop:     make(chan struct{}),
		nowFunc:  time.Now,
	}
	go s.sweep(sweepEvery)
	return s
}

// Put stores a result set, assigning it a fresh search ID. A previous set
// under the same session key is dropped, never merged.
func (s *Store) Put(set model.ResultSet) model.ResultSet {
	set.ID = uuid.NewString()
	set.CreatedAt = s.nowFunc()

	s.mu.Lock()
	defer s.mu.Unlock()

	if set.SessionKey != "" {
		if oldID, ok := s.byKey[set.SessionKey]; ok {
			delete(s.entries, oldID)
		}
		s.byKey[set.SessionKey] = set.ID
	}
	s.entries[set.ID] = &entry{set: set, expires: set.CreatedAt.Add(s.ttl)}
	return set
}

// Get returns the full result set for a search ID.
func (s *Store) Get(id string) (model.ResultSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || s.nowFunc().After(e.expires) {
		return model.ResultSet{}, ErrNotFound
	}
	return e.set, nil
}

// Page returns one slice of a cached set. pageSize <= 0 uses the default;
// a page index past the end returns an empty page with HasMore false rather
// than an error.
func (s *Store) Page(id string, pageIndex, pageSize int) (model.Page, error) {
	set, err := s.Get(id)
	if err != nil {
		return model.Page{}, err
	}
	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageSize <= 0 {
		pageSize = s.pageSize
	}

	total := len(set.Companies)
	start := pageIndex * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return model.Page{
		SearchID:   id,
		Companies:  set.Companies[start:end],
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		TotalCount: total,
		HasMore:    end < total,
	}, nil
}

// Stop halts the background sweeper. Entries remain readable until expiry.
func (s *Store) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Store) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

func (s *Store) evictExpired() {
	now := s.nowFunc()

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, id)
			if e.set.SessionKey != "" && s.byKey[e.set.SessionKey] == id {
				delete(s.byKey, e.set.SessionKey)
			}
			evicted++
		}
	}
	if evicted > 0 {
		zap.L().Debug("evicted expired result sets", zap.Int("count", evicted))
	}
}
