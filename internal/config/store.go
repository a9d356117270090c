// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kick Presence contributors

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kickpresence/kick-presence/internal/logger"
)

// Store owns a JSON settings document on disk. It is not safe for concurrent
// use and does not coordinate with other processes; the last Save wins.
type Store struct {
	path string
	data Document
	log  *logger.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New resolves path and loads the document stored there.
//
// An empty path selects DefaultPath; failing to create its directory is the
// only error New returns. A missing file is created with the defaults. An
// unreadable or malformed file is logged and left untouched while the store
// falls back to the defaults in memory.
func New(path string, opts ...Option) (*Store, error) {
	s := &Store{log: logger.NewConsole(os.Stderr)}
	for _, opt := range opts {
		opt(s)
	}

	resolved, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("error resolving config path: %w", err)
	}
	s.path = resolved
	s.data = s.load()

	return s, nil
}

func (s *Store) load() Document {
	defaults := Defaults()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			_ = s.write(defaults)
			return defaults
		}
		s.log.Error().Err(err).Str("path", s.path).Msg("error loading config")
		return defaults
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("error loading config")
		return defaults
	}

	mergeDefaults(doc, defaults)
	return doc
}

// Path returns the resolved path of the configuration file.
func (s *Store) Path() string {
	return s.path
}

// Lookup descends the dot separated key and reports whether it exists.
// Mappings are returned as copies.
func (s *Store) Lookup(key string) (any, bool) {
	var node any = map[string]any(s.data)
	for _, segment := range strings.Split(key, ".") {
		m, ok := asMap(node)
		if !ok {
			return nil, false
		}
		if node, ok = m[segment]; !ok {
			return nil, false
		}
	}
	return cloneValue(node), true
}

// Get returns the value at key, or nil when the path does not exist.
func (s *Store) Get(key string) any {
	return s.GetOr(key, nil)
}

// GetOr returns the value at key, or fallback when the path does not exist.
func (s *Store) GetOr(key string, fallback any) any {
	if v, ok := s.Lookup(key); ok {
		return v
	}
	return fallback
}

// GetString returns the string at key, or fallback when the path is missing
// or holds another type.
func (s *Store) GetString(key, fallback string) string {
	if v, ok := s.Lookup(key); ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return fallback
}

// GetBool returns the bool at key, or fallback.
func (s *Store) GetBool(key string, fallback bool) bool {
	if v, ok := s.Lookup(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return fallback
}

// GetInt returns the integer at key, or fallback. Integral floats are
// accepted.
func (s *Store) GetInt(key string, fallback int) int {
	v, ok := s.Lookup(key)
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case int32:
		return int(n)
	case float64:
		if n == float64(int(n)) {
			return int(n)
		}
	}
	return fallback
}

// Set assigns value at the dot separated key, creating intermediate mappings
// as needed. It changes the in-memory document only; call Save to persist.
//
// Descending through an existing value that is not a mapping fails with
// ErrNotAMapping and leaves the document unchanged.
func (s *Store) Set(key string, value any) error {
	segments := strings.Split(key, ".")
	for _, segment := range segments {
		if segment == "" {
			return fmt.Errorf("%w: %q", ErrEmptyKey, key)
		}
	}

	node := map[string]any(s.data)
	for i, segment := range segments[:len(segments)-1] {
		next, ok := node[segment]
		if !ok {
			child := make(map[string]any)
			node[segment] = child
			node = child
			continue
		}

		m, ok := asMap(next)
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotAMapping, strings.Join(segments[:i+1], "."))
		}
		node = m
	}

	node[segments[len(segments)-1]] = cloneValue(value)
	return nil
}

// Save writes the current document to Path.
//
// Failures are logged and returned; the in-memory document is kept either
// way.
func (s *Store) Save() error {
	return s.write(s.data)
}

// SaveDocument writes doc to Path instead of the current document. A nil doc
// saves the current document. The in-memory document is not replaced.
func (s *Store) SaveDocument(doc Document) error {
	if doc == nil {
		doc = s.data
	}
	return s.write(doc)
}

func (s *Store) write(doc Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("error saving config")
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("error saving config")
		return fmt.Errorf("error creating config dir: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("error saving config")
		return fmt.Errorf("error writing config: %w", err)
	}

	return nil
}

// String renders the current document as indented JSON.
func (s *Store) String() string {
	data, err := encodeDocument(s.data)
	if err != nil {
		return fmt.Sprintf("<invalid config: %v>", err)
	}
	return strings.TrimSuffix(string(data), "\n")
}
