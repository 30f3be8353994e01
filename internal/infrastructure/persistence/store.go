package persistence

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// ItemStore is the subset of *gdata.Manager the store needs
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Progress is what survives between runs
type Progress struct {
	LastLevel string   `json:"lastLevel,omitempty"`
	Visited   []string `json:"visited,omitempty"`
}

// HasVisited reports whether level was entered before
func (p Progress) HasVisited(level string) bool {
	return slices.Contains(p.Visited, level)
}

// Store keeps level progress in the platform's app data directory
type Store struct {
	items ItemStore
}

// Open opens the gdata storage for appName
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open save data: %w", err)
	}
	return NewStore(m), nil
}

// NewStore wraps an existing item store
func NewStore(items ItemStore) *Store {
	return &Store{items: items}
}

// Load returns the saved progress, or the zero value when nothing was saved
func (s *Store) Load() (Progress, error) {
	data, err := s.items.LoadItem(progressKey)
	if err != nil {
		return Progress{}, fmt.Errorf("failed to load progress: %w", err)
	}
	if len(data) == 0 {
		return Progress{}, nil
	}

	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return Progress{}, fmt.Errorf("failed to parse progress: %w", err)
	}
	return p, nil
}

// Save writes p
func (s *Store) Save(p Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}
	if err := s.items.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// EnterLevel records level as the last one entered and marks it visited
func (s *Store) EnterLevel(level string) (Progress, error) {
	p, err := s.Load()
	if err != nil {
		return p, err
	}
	p.LastLevel = level
	if !p.HasVisited(level) {
		p.Visited = append(p.Visited, level)
	}
	return p, s.Save(p)
}

// Clear removes saved progress
func (s *Store) Clear() error {
	if err := s.items.SaveItem(progressKey, nil); err != nil {
		return fmt.Errorf("failed to clear progress: %w", err)
	}
	return nil
}
