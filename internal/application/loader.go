package application

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/agent-dash-cli/internal/domain"
	"github.com/bnema/agent-dash-cli/internal/ports"
	"github.com/bnema/agent-dash-cli/internal/state"
)

// Loader hydrates the store from the backend's authoritative collections.
type Loader struct {
	store  *state.Store
	source ports.SnapshotSource
}

func NewLoader(store *state.Store, source ports.SnapshotSource) *Loader {
	return &Loader{store: store, source: source}
}

func (l *Loader) LoadTasks(ctx context.Context) *domain.ErrorDescriptor {
	tasks, derr := l.source.ListTasks(ctx)
	if derr != nil {
		return derr
	}
	l.store.Dispatch(state.SetTasks{Tasks: tasks})
	return nil
}

func (l *Loader) LoadChatHistory(ctx context.Context) *domain.ErrorDescriptor {
	exchanges, derr := l.source.ChatHistory(ctx)
	if derr != nil {
		return derr
	}
	l.store.Dispatch(state.SetExchanges{Exchanges: exchanges})
	return nil
}

func (l *Loader) LoadFiles(ctx context.Context) *domain.ErrorDescriptor {
	files, derr := l.source.ListFiles(ctx)
	if derr != nil {
		return derr
	}
	l.store.Dispatch(state.SetFiles{Files: files})
	return nil
}

// Hydrate fetches all three collections concurrently. The first failure
// wins; partial results for the other collections still land in the store.
func (l *Loader) Hydrate(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return asErr(l.LoadTasks(ctx)) })
	g.Go(func() error { return asErr(l.LoadChatHistory(ctx)) })
	g.Go(func() error { return asErr(l.LoadFiles(ctx)) })
	return g.Wait()
}

func asErr(derr *domain.ErrorDescriptor) error {
	if derr == nil {
		return nil
	}
	return derr
}
