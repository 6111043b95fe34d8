// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/akshayghatge/prabhag-pulse/loader"
	"github.com/akshayghatge/prabhag-pulse/models"
)

// signature identifies a source file version without reading its contents.
type signature struct {
	modTimeNano int64
	size        int64
}

// Store is an injected, immutable handle on the loaded table. Loads replace
// the records slice wholesale and never mutate it, so callers may hold the
// returned slice across a whole analysis or report batch. Reload swaps in a
// new table only when the source signature (path + mtime + size) changes.
type Store struct {
	mu       sync.RWMutex
	path     string
	records  []models.VoteRecord
	warnings []string
	hash     string
	sig      signature
	loadedAt time.Time
}

// Open loads the table at path. A load failure is not fatal: the store
// degrades to an empty table and keeps the diagnostic as a warning, so the
// process serves degenerate (empty) results instead of dying.
func Open(path string) *Store {
	s := &Store{path: path}
	s.load()
	return s
}

// Records returns the loaded table. The slice is shared and must be treated
// as read-only.
func (s *Store) Records() []models.VoteRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Hash returns the hex sha256 of the source file contents, or "" when the
// source was unreadable.
func (s *Store) Hash() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hash
}

// Warnings returns the diagnostics collected during the last load.
func (s *Store) Warnings() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.warnings
}

// Path returns the source file path.
func (s *Store) Path() string {
	return s.path
}

// Reload re-checks the source and reloads only when its signature changed.
// It reports whether a reload happened.
func (s *Store) Reload() (bool, error) {
	sig, err := statSignature(s.path)
	if err != nil {
		return false, err
	}

	s.mu.RLock()
	unchanged := sig == s.sig
	s.mu.RUnlock()
	if unchanged {
		return false, nil
	}

	s.load()
	return true, nil
}

func (s *Store) load() {
	records, warnings, err := loader.Read(s.path)
	if err != nil {
		// LoadError: degrade to an empty table, surface the diagnostic.
		slog.Error("table load failed, serving empty table", "path", s.path, "error", err)
		records = nil
		warnings = append(warnings, err.Error())
	}

	sig, sigErr := statSignature(s.path)
	if sigErr != nil {
		sig = signature{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.warnings = warnings
	s.hash = fileHash(s.path)
	s.sig = sig
	s.loadedAt = time.Now()
}

func statSignature(path string) (signature, error) {
	info, err := os.Stat(path)
	if err != nil {
		return signature{}, err
	}
	return signature{modTimeNano: info.ModTime().UnixNano(), size: info.Size()}, nil
}

func fileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	h := sha256.New()
	if _, err := io.Copy(h, file); err != nil {
		return ""
	}
	return hex.EncodeToString(h.Sum(nil))
}
