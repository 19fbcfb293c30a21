package ports

import (
	"context"

	"github.com/bnema/agent-dash-cli/internal/domain"
)

// MutationBackend executes the remote side of a mutation intent. A nil
// descriptor means the call committed; the returned record, when non-nil, is
// the server's authoritative version (nil for deletes).
type MutationBackend interface {
	Mutate(ctx context.Context, intent domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor)
}

// SnapshotSource lists the server-owned collections for initial hydration.
type SnapshotSource interface {
	ListTasks(ctx context.Context) ([]domain.Task, *domain.ErrorDescriptor)
	ChatHistory(ctx context.Context) ([]domain.ChatExchange, *domain.ErrorDescriptor)
	ListFiles(ctx context.Context) ([]domain.FileAsset, *domain.ErrorDescriptor)
}

// Authenticator is the slice of the gateway the session manager needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (domain.Session, *domain.ErrorDescriptor)
	Profile(ctx context.Context) (domain.User, *domain.ErrorDescriptor)
}
