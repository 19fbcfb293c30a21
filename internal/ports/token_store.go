package ports

import "context"

// TokenStore persists the single bearer-token credential slot across process
// restarts within a session's lifetime.
type TokenStore interface {
	// Load returns the stored token, or domain.ErrTokenSlotMissing when the
	// slot is empty.
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
