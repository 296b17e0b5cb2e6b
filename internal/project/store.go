// Package project holds the name of the project being edited.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"click-to-edit/internal/logging"
)

// DefaultName is the name of a fresh project.
const DefaultName = "New Project"

type snapshot struct {
	ProjectName string `json:"projectName"`
}

// Store is the single source of truth for the project name. When path is
// set every mutation is written to it as JSON.
type Store struct {
	mu   sync.RWMutex
	name string
	path string
	log  logging.Logger
}

// NewStore returns an in-memory store holding DefaultName.
func NewStore(log logging.Logger) *Store {
	if log == nil {
		log = logging.Global()
	}
	return &Store{name: DefaultName, log: log}
}

// Open returns a store persisted at path. A missing file yields the default
// name; the file is created on the first mutation.
func Open(path string, log logging.Logger) (*Store, error) {
	s := NewStore(log)
	s.path = path
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse state JSON: %w", err)
	}
	s.name = snap.ProjectName
	s.log.Debug("loaded project name %q from %s", s.name, path)
	return s, nil
}

// Name returns the current project name.
func (s *Store) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// Current matches the inline editor's value accessor.
func (s *Store) Current() (string, error) { return s.Name(), nil }

// UpdateName replaces the project name.
func (s *Store) UpdateName(name string) error {
	s.log.Info("setting project name to %q", name)
	return s.set(name)
}

// Reset restores DefaultName.
func (s *Store) Reset() error {
	s.log.Info("resetting project to default")
	return s.set(DefaultName)
}

func (s *Store) set(name string) error {
	s.mu.Lock()
	prev := s.name
	s.name = name
	s.mu.Unlock()

	if err := s.save(name); err != nil {
		s.mu.Lock()
		s.name = prev
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) save(name string) error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(snapshot{ProjectName: name}, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}
