// internal/store/memory.go
//
// In-memory record of finished sessions for the current run.
// Nothing is written to disk; the end-of-run summary is built from here.
//
// Characteristics:
//   - Records are keyed by session ID and kept in finish order.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/hangman/internal/game"
)

// ErrNotFound is returned by Get for an unknown session ID.
var ErrNotFound = errors.New("store: session not found")

// Record is a snapshot of a finished session.
type Record struct {
	ID         string
	Difficulty game.Difficulty
	Word       string
	State      game.State
	LivesUsed  int
	Guesses    int
	FinishedAt time.Time
}

// RecordOf snapshots s.
func RecordOf(s *game.Session) Record {
	return Record{
		ID:         s.ID,
		Difficulty: s.Difficulty,
		Word:       s.Word,
		State:      s.State,
		LivesUsed:  s.LivesUsed,
		Guesses:    s.Guesses,
		FinishedAt: time.Now().UTC(),
	}
}

// Summary aggregates the records of a run.
type Summary struct {
	Played       int
	Won          int
	Lost         int
	ByDifficulty map[game.Difficulty]int
}

// Store keeps finished-session records.
type Store interface {
	// Save adds or replaces a record.
	Save(ctx context.Context, r Record) error

	// Get retrieves a record by session ID.
	Get(ctx context.Context, id string) (Record, error)

	// List returns every record in save order.
	List(ctx context.Context) ([]Record, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards records and order
	records map[string]Record // keyed by session ID
	order   []string
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{records: make(map[string]Record)}
}

func (m *memory) Save(ctx context.Context, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[r.ID]; !ok {
		m.order = append(m.order, r.ID)
	}
	m.records[r.ID] = r
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return Record{}, ErrNotFound
}

func (m *memory) List(ctx context.Context) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Record, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.records[id])
	}
	return out, nil
}

// Summarize counts wins and losses across st.
func Summarize(ctx context.Context, st Store) (Summary, error) {
	recs, err := st.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{ByDifficulty: make(map[game.Difficulty]int)}
	for _, r := range recs {
		sum.Played++
		sum.ByDifficulty[r.Difficulty]++
		switch r.State {
		case game.StateWon:
			sum.Won++
		case game.StateLost:
			sum.Lost++
		}
	}
	return sum, nil
}
