// Package application hosts the services between the CLI surface and the
// adapters: the optimistic mutation coordinator, the session manager and the
// snapshot loader.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/bnema/agent-dash-cli/internal/domain"
	"github.com/bnema/agent-dash-cli/internal/observability"
	"github.com/bnema/agent-dash-cli/internal/ports"
	"github.com/bnema/agent-dash-cli/internal/state"
)

// Coordinator applies mutation intents speculatively and reconciles them
// against the backend.
//
// Intents are serialized per entity key: at most one mutation per key is in
// flight, later ones queue FIFO behind it, so a stale response can never
// overwrite a newer speculative edit. Intents on different keys settle
// independently. An issued network call is never canceled; a newer intent
// waits for the in-flight one to resolve.
type Coordinator struct {
	store    *state.Store
	backend  ports.MutationBackend
	notifier ports.Notifier
	clock    ports.Clock
	log      *slog.Logger

	mu      sync.Mutex
	queues  map[domain.EntityKey]*keyQueue
	deleted map[domain.EntityKey]struct{}
	wg      sync.WaitGroup
}

type keyQueue struct {
	entries []queueEntry
	running bool
	// deletePending blocks new submissions from the moment a delete intent
	// is accepted; cleared again only if that delete rolls back.
	deletePending bool
}

type queueEntry struct {
	ctx    context.Context
	intent domain.MutationIntent
}

func NewCoordinator(store *state.Store, backend ports.MutationBackend, notifier ports.Notifier, clock ports.Clock, log *slog.Logger) *Coordinator {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = observability.Discard()
	}
	return &Coordinator{
		store:    store,
		backend:  backend,
		notifier: notifier,
		clock:    clock,
		log:      log,
		queues:   map[domain.EntityKey]*keyQueue{},
		deleted:  map[domain.EntityKey]struct{}{},
	}
}

// Submit validates and enqueues an intent, returning immediately. The
// speculative apply, remote call and settlement happen on the key's queue.
// Empty correlation ids are assigned here.
func (c *Coordinator) Submit(ctx context.Context, intent domain.MutationIntent) error {
	if intent.CorrelationID == "" {
		intent.CorrelationID = uuid.NewString()
	}
	if err := validateIntent(intent); err != nil {
		return err
	}
	key := intent.Key()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, gone := c.deleted[key]; gone {
		return fmt.Errorf("%s %s: %w", intent.EntityType, key.ID, domain.ErrEntityDeleted)
	}
	q := c.queues[key]
	if q == nil {
		q = &keyQueue{}
		c.queues[key] = q
	}
	if q.deletePending {
		return fmt.Errorf("%s %s: %w", intent.EntityType, key.ID, domain.ErrEntityDeleted)
	}
	if intent.Kind == domain.MutationDelete {
		q.deletePending = true
	}

	q.entries = append(q.entries, queueEntry{ctx: ctx, intent: intent})
	if !q.running {
		q.running = true
		c.wg.Add(1)
		go c.drain(key, q)
	}
	return nil
}

// Wait blocks until every queue has drained. The CLI calls it before exit;
// tests use it to make settlement deterministic.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

func (c *Coordinator) drain(key domain.EntityKey, q *keyQueue) {
	defer c.wg.Done()
	for {
		c.mu.Lock()
		if len(q.entries) == 0 {
			q.running = false
			c.mu.Unlock()
			return
		}
		entry := q.entries[0]
		q.entries = q.entries[1:]
		gone := false
		if _, ok := c.deleted[key]; ok {
			gone = true
		}
		c.mu.Unlock()

		if gone {
			c.notifier.Error(fmt.Sprintf("%s no longer exists", entry.intent.EntityType))
			continue
		}
		c.process(entry.ctx, key, entry.intent)
	}
}

func (c *Coordinator) process(ctx context.Context, key domain.EntityKey, intent domain.MutationIntent) {
	snap := c.store.Snapshot()

	p, derr := c.plan(snap, intent)
	if derr != nil {
		c.settleInvalid(key, intent, derr)
		return
	}
	if p.noop {
		return
	}

	c.store.Dispatch(p.speculative)

	record, derr := c.backend.Mutate(ctx, intent)
	if derr != nil {
		c.settleFailure(key, intent, p, derr)
		return
	}
	c.settleSuccess(key, intent, record)
}

func (c *Coordinator) settleSuccess(key domain.EntityKey, intent domain.MutationIntent, record domain.Record) {
	if intent.Kind == domain.MutationDelete {
		c.mu.Lock()
		c.deleted[key] = struct{}{}
		c.mu.Unlock()
	} else if record != nil {
		// Reconcile by the pending intent's own id, not by position: for a
		// create this swaps the provisional id for the server-assigned one.
		c.store.Dispatch(state.ReplaceRecord{Type: intent.EntityType, OldID: key.ID, Record: record})
	}
	c.notifier.Success(successMessage(intent))
}

func (c *Coordinator) settleFailure(key domain.EntityKey, intent domain.MutationIntent, p mutationPlan, derr *domain.ErrorDescriptor) {
	if derr.Kind == domain.ErrorAuth {
		// Session teardown already reset the state; nothing to roll back
		// and nothing left worth running for this key.
		c.log.Warn("mutation abandoned, session invalidated", "entity", intent.EntityType, "id", key.ID)
		c.mu.Lock()
		if q := c.queues[key]; q != nil {
			q.entries = nil
			q.deletePending = false
		}
		c.mu.Unlock()
		return
	}

	c.store.Dispatch(p.rollback)
	if intent.Kind == domain.MutationDelete {
		c.mu.Lock()
		if q := c.queues[key]; q != nil {
			q.deletePending = false
		}
		c.mu.Unlock()
	}
	c.log.Warn("mutation rolled back", "entity", intent.EntityType, "id", key.ID, "kind", intent.Kind, "err", derr.Message)
	c.notifier.Error(derr.Message)
}

func (c *Coordinator) settleInvalid(key domain.EntityKey, intent domain.MutationIntent, derr *domain.ErrorDescriptor) {
	if intent.Kind == domain.MutationDelete {
		c.mu.Lock()
		if q := c.queues[key]; q != nil {
			q.deletePending = false
		}
		c.mu.Unlock()
	}
	c.notifier.Error(derr.Message)
}

func validateIntent(intent domain.MutationIntent) error {
	switch intent.Kind {
	case domain.MutationCreate:
		if intent.EntityID != "" {
			return fmt.Errorf("create carries an entity id: %w", domain.ErrInvalidIntent)
		}
	case domain.MutationUpdate, domain.MutationDelete, domain.MutationMove:
		if intent.EntityID == "" {
			return fmt.Errorf("%s requires an entity id: %w", intent.Kind, domain.ErrInvalidIntent)
		}
	default:
		return fmt.Errorf("unknown kind %q: %w", intent.Kind, domain.ErrInvalidIntent)
	}

	switch p := intent.Payload.(type) {
	case domain.TaskDraft:
		if !p.Status.Valid() {
			return fmt.Errorf("status %q: %w", p.Status, domain.ErrInvalidIntent)
		}
	case domain.TaskMove:
		if !p.Status.Valid() {
			return fmt.Errorf("status %q: %w", p.Status, domain.ErrInvalidIntent)
		}
	case domain.TaskPatch:
		if p.Status != nil && !p.Status.Valid() {
			return fmt.Errorf("status %q: %w", *p.Status, domain.ErrInvalidIntent)
		}
	}
	return nil
}

func successMessage(intent domain.MutationIntent) string {
	if intent.EntityType == domain.EntityChat {
		return "message sent"
	}
	switch intent.Kind {
	case domain.MutationCreate:
		return fmt.Sprintf("%s created", intent.EntityType)
	case domain.MutationUpdate:
		return fmt.Sprintf("%s updated", intent.EntityType)
	case domain.MutationMove:
		return fmt.Sprintf("%s moved", intent.EntityType)
	case domain.MutationDelete:
		return fmt.Sprintf("%s deleted", intent.EntityType)
	default:
		return "done"
	}
}
