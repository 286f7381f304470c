// Package theme holds the process-wide display mode preference.
// The auction core never reads it.
package theme

import (
	"context"
	"fmt"
	"sync"

	"toy-exchange/internal/auctionerrors"
	"toy-exchange/utils"
)

type Mode string

const (
	ModeDefault      Mode = "default"
	ModeKids         Mode = "kids"
	ModeProfessional Mode = "professional"
)

// StorageKey is the fixed key the mode is persisted under
const StorageKey = "toy-exchange-theme"

var Modes = []Mode{ModeDefault, ModeKids, ModeProfessional}

// Valid reports whether m is one of the known modes. Matching is exact.
func (m Mode) Valid() bool {
	switch m {
	case ModeDefault, ModeKids, ModeProfessional:
		return true
	}
	return false
}

type Store struct {
	mu   sync.RWMutex
	kv   KV
	mode Mode
}

// NewStore loads the persisted mode, falling back to default when it is missing,
// unknown or the backend cannot be read.
func NewStore(ctx context.Context, kv KV) *Store {
	s := &Store{kv: kv, mode: ModeDefault}

	raw, found, err := kv.Get(ctx, StorageKey)
	switch {
	case err != nil:
		utils.Warn("theme: failed to load stored mode, using default", map[string]any{"error": err.Error()})
	case !found:
	case !Mode(raw).Valid():
		utils.Warn("theme: ignoring unknown stored mode", map[string]any{"stored": string(raw)})
	default:
		s.mode = Mode(raw)
	}
	return s
}

func (s *Store) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode persists and activates mode. The in-process mode only changes once the write succeeds.
func (s *Store) SetMode(ctx context.Context, mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("theme: %w - unknown mode %q", auctionerrors.ErrInvalidInput, mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Set(ctx, StorageKey, []byte(mode)); err != nil {
		return fmt.Errorf("theme: persist mode %q: %w", mode, err)
	}
	s.mode = mode
	return nil
}

// ShouldSubmit reports whether a key press submits a form in the given mode.
// Professional mode needs Enter with meta or ctrl held; other modes submit on any Enter.
func ShouldSubmit(mode Mode, key string, meta, ctrl bool) bool {
	if key != "Enter" {
		return false
	}
	if mode == ModeProfessional {
		return meta || ctrl
	}
	return true
}
