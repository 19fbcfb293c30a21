// Package toml persists the single bearer-token credential slot as a toml
// file, written atomically and readable only by the owner.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bnema/agent-dash-cli/internal/domain"
	"github.com/bnema/agent-dash-cli/internal/ports"
)

const (
	slotFileMode    = 0o600
	slotDirMode     = 0o700
	tempFilePattern = ".token-*.toml.tmp"
)

type slotSchema struct {
	Token   string    `toml:"token"`
	SavedAt time.Time `toml:"saved_at"`
}

type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.TokenStore = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

func (s *Store) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", domain.ErrTokenSlotMissing
		}
		return "", fmt.Errorf("read token slot: %w", err)
	}

	var slot slotSchema
	if err := toml.Unmarshal(data, &slot); err != nil {
		return "", fmt.Errorf("decode token slot: %w", err)
	}
	if slot.Token == "" {
		return "", domain.ErrTokenSlotMissing
	}
	return slot.Token, nil
}

func (s *Store) Save(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoded, err := toml.Marshal(slotSchema{Token: token, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encode token slot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, slotDirMode); err != nil {
		return fmt.Errorf("create token slot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp token slot: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if err := tmp.Chmod(slotFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp token slot: %w", err)
	}
	if _, err := tmp.Write(encoded); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp token slot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp token slot: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace token slot: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token slot: %w", err)
	}
	return nil
}
