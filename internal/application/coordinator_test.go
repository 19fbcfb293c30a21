package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/agent-dash-cli/internal/domain"
	"github.com/bnema/agent-dash-cli/internal/ports/mocks"
	"github.com/bnema/agent-dash-cli/internal/state"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

// scriptedBackend answers Mutate from a per-call handler and records every
// intent it saw, in order. Handlers may block on channels to pin down
// interleavings.
type scriptedBackend struct {
	mu      sync.Mutex
	calls   []domain.MutationIntent
	handler func(intent domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor)
}

func (b *scriptedBackend) Mutate(_ context.Context, intent domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor) {
	b.mu.Lock()
	b.calls = append(b.calls, intent)
	b.mu.Unlock()
	return b.handler(intent)
}

func (b *scriptedBackend) seen() []domain.MutationIntent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.MutationIntent(nil), b.calls...)
}

func quietNotifier(t *testing.T) *mocks.MockNotifier {
	t.Helper()
	n := mocks.NewMockNotifier(t)
	n.EXPECT().Success(mock.Anything).Return().Maybe()
	n.EXPECT().Error(mock.Anything).Return().Maybe()
	return n
}

func boardWith(tasks ...domain.Task) *state.Store {
	store := state.NewStore()
	store.Dispatch(state.SetTasks{Tasks: tasks})
	return store
}

func task(id, title string, status domain.TaskStatus) domain.Task {
	at := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	return domain.Task{ID: id, Title: title, Status: status, CreatedAt: at, UpdatedAt: at}
}

func TestFailedMoveRestoresExactPreMutationFragment(t *testing.T) {
	original := task("t1", "fix the dashboard", domain.TaskStatusTodo)
	store := boardWith(original)

	backend := &scriptedBackend{handler: func(domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor) {
		return nil, domain.ServerError("database on fire")
	}}

	n := mocks.NewMockNotifier(t)
	n.EXPECT().Error("database on fire").Return().Once()

	c := NewCoordinator(store, backend, n, fixedClock{at: time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)}, nil)
	require.NoError(t, c.Submit(context.Background(), domain.MutationIntent{
		EntityType: domain.EntityTask,
		EntityID:   "t1",
		Kind:       domain.MutationMove,
		Payload:    domain.TaskMove{Status: domain.TaskStatusDoing},
	}))
	c.Wait()

	got, found := store.Snapshot().TaskByID("t1")
	require.True(t, found)
	assert.Equal(t, original, got)
}

func TestSameKeyIntentsSettleInSubmissionOrder(t *testing.T) {
	store := boardWith(task("t1", "draft", domain.TaskStatusTodo))

	release := make(chan struct{})
	backend := &scriptedBackend{handler: func(intent domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor) {
		<-release
		patch := intent.Payload.(domain.TaskPatch)
		updated := task("t1", *patch.Title, domain.TaskStatusTodo)
		return updated, nil
	}}

	c := NewCoordinator(store, backend, quietNotifier(t), fixedClock{at: time.Now()}, nil)

	titleA, titleB := "first edit", "second edit"
	require.NoError(t, c.Submit(context.Background(), domain.MutationIntent{
		EntityType: domain.EntityTask, EntityID: "t1", Kind: domain.MutationUpdate,
		Payload: domain.TaskPatch{Title: &titleA},
	}))
	require.NoError(t, c.Submit(context.Background(), domain.MutationIntent{
		EntityType: domain.EntityTask, EntityID: "t1", Kind: domain.MutationUpdate,
		Payload: domain.TaskPatch{Title: &titleB},
	}))
	close(release)
	c.Wait()

	calls := backend.seen()
	require.Len(t, calls, 2)
	assert.Equal(t, "first edit", *calls[0].Payload.(domain.TaskPatch).Title)
	assert.Equal(t, "second edit", *calls[1].Payload.(domain.TaskPatch).Title)

	got, found := store.Snapshot().TaskByID("t1")
	require.True(t, found)
	assert.Equal(t, "second edit", got.Title)
}

func TestIntentsOnDifferentKeysSettleIndependently(t *testing.T) {
	store := boardWith(
		task("t1", "slow one", domain.TaskStatusTodo),
		task("t2", "fast one", domain.TaskStatusTodo),
	)

	blockT1 := make(chan struct{})
	t2Done := make(chan struct{})
	backend := &scriptedBackend{handler: func(intent domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor) {
		if intent.EntityID == "t1" {
			<-blockT1
		}
		moved := task(intent.EntityID, "", intent.Payload.(domain.TaskMove).Status)
		if intent.EntityID == "t2" {
			defer close(t2Done)
		}
		return moved, nil
	}}

	c := NewCoordinator(store, backend, quietNotifier(t), fixedClock{at: time.Now()}, nil)
	require.NoError(t, c.Submit(context.Background(), domain.MutationIntent{
		EntityType: domain.EntityTask, EntityID: "t1", Kind: domain.MutationMove,
		Payload: domain.TaskMove{Status: domain.TaskStatusDoing},
	}))
	require.NoError(t, c.Submit(context.Background(), domain.MutationIntent{
		EntityType: domain.EntityTask, EntityID: "t2", Kind: domain.MutationMove,
		Payload: domain.TaskMove{Status: domain.TaskStatusDone},
	}))

	select {
	case <-t2Done:
	case <-time.After(2 * time.Second):
		t.Fatal("t2 mutation stuck behind unrelated in-flight t1 mutation")
	}

	close(blockT1)
	c.Wait()
}

func TestDeleteIsTerminalForItsKey(t *testing.T) {
	store := boardWith(task("t1", "doomed", domain.TaskStatusTodo))

	release := make(chan struct{})
	backend := &scriptedBackend{handler: func(domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor) {
		<-release
		return nil, nil
	}}

	c := NewCoordinator(store, backend, quietNotifier(t), fixedClock{at: time.Now()}, nil)
	require.NoError(t, c.Submit(context.Background(), domain.MutationIntent{
		EntityType: domain.EntityTask, EntityID: "t1", Kind: domain.MutationDelete,
	}))

	// Queued behind an accepted delete: rejected up front.
	title := "too late"
	err := c.Submit(context.Background(), domain.MutationIntent{
		EntityType: domain.EntityTask, EntityID: "t1", Kind: domain.MutationUpdate,
		Payload: domain.TaskPatch{Title: &title},
	})
	require.ErrorIs(t, err, domain.ErrEntityDeleted)

	close(release)
	c.Wait()

	// Committed delete: still rejected, and the record is gone.
	err = c.Submit(context.Background(), domain.MutationIntent{
		EntityType: domain.EntityTask, EntityID: "t1", Kind: domain.MutationMove,
		Payload: domain.TaskMove{Status: domain.TaskStatusDone},
	})
	require.ErrorIs(t, err, domain.ErrEntityDeleted)
	assert.Empty(t, store.Snapshot().Tasks)
	require.Len(t, backend.seen(), 1)
}

func TestFailedDeleteRollsBackAtOriginalPosition(t *testing.T) {
	store := boardWith(
		task("t1", "a", domain.TaskStatusTodo),
		task("t2", "b", domain.TaskStatusTodo),
		task("t3", "c", domain.TaskStatusTodo),
	)

	backend := &scriptedBackend{handler: func(intent domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor) {
		if intent.Kind == domain.MutationDelete {
			return nil, domain.ServerError("cannot delete")
		}
		return task(intent.EntityID, "b", domain.TaskStatusDoing), nil
	}}

	c := NewCoordinator(store, backend, quietNotifier(t), fixedClock{at: time.Now()}, nil)
	require.NoError(t, c.Submit(context.Background(), domain.MutationIntent{
		EntityType: domain.EntityTask, EntityID: "t2", Kind: domain.MutationDelete,
	}))
	c.Wait()

	snap := store.Snapshot()
	require.Len(t, snap.Tasks, 3)
	assert.Equal(t, "t2", snap.Tasks[1].ID)

	// The rolled-back delete is not terminal; the key accepts intents again.
	require.NoError(t, c.Submit(context.Background(), domain.MutationIntent{
		EntityType: domain.EntityTask, EntityID: "t2", Kind: domain.MutationMove,
		Payload: domain.TaskMove{Status: domain.TaskStatusDoing},
	}))
	c.Wait()

	got, found := store.Snapshot().TaskByID("t2")
	require.True(t, found)
	assert.Equal(t, domain.TaskStatusDoing, got.Status)
}

func TestFailedCreateLeavesNoProvisionalResidue(t *testing.T) {
	store := state.NewStore()

	backend := &scriptedBackend{handler: func(domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor) {
		return nil, domain.ServerError("quota exceeded")
	}}

	c := NewCoordinator(store, backend, quietNotifier(t), fixedClock{at: time.Now()}, nil)
	require.NoError(t, c.Submit(context.Background(), domain.MutationIntent{
		EntityType: domain.EntityTask, Kind: domain.MutationCreate,
		Payload: domain.TaskDraft{Title: "never happened", Status: domain.TaskStatusTodo},
	}))
	c.Wait()

	assert.Empty(t, store.Snapshot().Tasks)
}

func TestCreateReconciliationSwapsProvisionalForServerID(t *testing.T) {
	store := state.NewStore()

	inFlight := make(chan struct{})
	release := make(chan struct{})
	backend := &scriptedBackend{handler: func(intent domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor) {
		close(inFlight)
		<-release
		created := task("srv-9", intent.Payload.(domain.TaskDraft).Title, domain.TaskStatusTodo)
		return created, nil
	}}

	c := NewCoordinator(store, backend, quietNotifier(t), fixedClock{at: time.Now()}, nil)
	require.NoError(t, c.Submit(context.Background(), domain.MutationIntent{
		CorrelationID: "prov-1",
		EntityType:    domain.EntityTask,
		Kind:          domain.MutationCreate,
		Payload:       domain.TaskDraft{Title: "brand new", Status: domain.TaskStatusTodo},
	}))

	<-inFlight
	snap := store.Snapshot()
	provisional, found := snap.TaskByID("prov-1")
	require.True(t, found, "speculative create should be visible while in flight")
	assert.Equal(t, "brand new", provisional.Title)

	close(release)
	c.Wait()

	snap = store.Snapshot()
	require.Len(t, snap.Tasks, 1)
	assert.Equal(t, "srv-9", snap.Tasks[0].ID)
	_, found = snap.TaskByID("prov-1")
	assert.False(t, found)
}

func TestMoveToSameColumnSkipsTheBackend(t *testing.T) {
	store := boardWith(task("t1", "already there", domain.TaskStatusDoing))

	backend := &scriptedBackend{handler: func(domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor) {
		t.Error("no-op move must not reach the backend")
		return nil, nil
	}}

	before := store.Snapshot()
	c := NewCoordinator(store, backend, quietNotifier(t), fixedClock{at: time.Now()}, nil)
	require.NoError(t, c.Submit(context.Background(), domain.MutationIntent{
		EntityType: domain.EntityTask, EntityID: "t1", Kind: domain.MutationMove,
		Payload: domain.TaskMove{Status: domain.TaskStatusDoing},
	}))
	c.Wait()

	assert.Equal(t, before, store.Snapshot())
	assert.Empty(t, backend.seen())
}

func TestAuthFailureAbandonsWithoutRollback(t *testing.T) {
	store := boardWith(task("t1", "a", domain.TaskStatusTodo))

	backend := &scriptedBackend{handler: func(domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor) {
		// The gateway's unauthorized hook fires session teardown before the
		// descriptor reaches the coordinator.
		store.Dispatch(state.ResetAll{})
		return nil, domain.AuthError()
	}}

	n := mocks.NewMockNotifier(t) // no Error, no Success expected

	c := NewCoordinator(store, backend, n, fixedClock{at: time.Now()}, nil)
	require.NoError(t, c.Submit(context.Background(), domain.MutationIntent{
		EntityType: domain.EntityTask, EntityID: "t1", Kind: domain.MutationMove,
		Payload: domain.TaskMove{Status: domain.TaskStatusDoing},
	}))
	c.Wait()

	// No rollback dispatched into the reset state.
	assert.Empty(t, store.Snapshot().Tasks)
}

func TestInvalidIntentsAreRejectedSynchronously(t *testing.T) {
	store := boardWith(task("t1", "a", domain.TaskStatusTodo))
	backend := &scriptedBackend{handler: func(domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor) {
		return nil, nil
	}}
	c := NewCoordinator(store, backend, quietNotifier(t), fixedClock{at: time.Now()}, nil)

	cases := []struct {
		name   string
		intent domain.MutationIntent
	}{
		{"create with entity id", domain.MutationIntent{EntityType: domain.EntityTask, EntityID: "t1", Kind: domain.MutationCreate, Payload: domain.TaskDraft{Status: domain.TaskStatusTodo}}},
		{"update without entity id", domain.MutationIntent{EntityType: domain.EntityTask, Kind: domain.MutationUpdate, Payload: domain.TaskPatch{}}},
		{"unknown kind", domain.MutationIntent{EntityType: domain.EntityTask, EntityID: "t1", Kind: domain.MutationKind("archive")}},
		{"bad status in draft", domain.MutationIntent{EntityType: domain.EntityTask, Kind: domain.MutationCreate, Payload: domain.TaskDraft{Status: domain.TaskStatus("blocked")}}},
		{"bad status in move", domain.MutationIntent{EntityType: domain.EntityTask, EntityID: "t1", Kind: domain.MutationMove, Payload: domain.TaskMove{Status: domain.TaskStatus("parked")}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, c.Submit(context.Background(), tc.intent), domain.ErrInvalidIntent)
		})
	}

	c.Wait()
	assert.Empty(t, backend.seen())
}

func TestUnknownTargetFailsBeforeAnySpeculativeApply(t *testing.T) {
	store := boardWith(task("t1", "a", domain.TaskStatusTodo))
	backend := &scriptedBackend{handler: func(domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor) {
		return nil, nil
	}}

	n := mocks.NewMockNotifier(t)
	n.EXPECT().Error("task ghost not found").Return().Once()

	before := store.Snapshot()
	c := NewCoordinator(store, backend, n, fixedClock{at: time.Now()}, nil)
	require.NoError(t, c.Submit(context.Background(), domain.MutationIntent{
		EntityType: domain.EntityTask, EntityID: "ghost", Kind: domain.MutationMove,
		Payload: domain.TaskMove{Status: domain.TaskStatusDone},
	}))
	c.Wait()

	assert.Equal(t, before, store.Snapshot())
	assert.Empty(t, backend.seen())
}

func TestChatSendShowsPendingExchangeUntilReconciled(t *testing.T) {
	store := state.NewStore()

	inFlight := make(chan struct{})
	release := make(chan struct{})
	backend := &scriptedBackend{handler: func(intent domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor) {
		close(inFlight)
		<-release
		draft := intent.Payload.(domain.ChatDraft)
		return domain.ChatExchange{
			ID:        intent.CorrelationID,
			Message:   draft.Message,
			Response:  "on it",
			Source:    domain.ChatSourceGenerative,
			Timestamp: time.Now(),
		}, nil
	}}

	c := NewCoordinator(store, backend, quietNotifier(t), fixedClock{at: time.Now()}, nil)
	require.NoError(t, c.Submit(context.Background(), domain.MutationIntent{
		CorrelationID: "corr-7",
		EntityType:    domain.EntityChat,
		Kind:          domain.MutationCreate,
		Payload:       domain.ChatDraft{Message: "deploy the fix"},
	}))

	<-inFlight
	pending, found := store.Snapshot().ExchangeByID("corr-7")
	require.True(t, found)
	assert.Equal(t, domain.ChatSourcePending, pending.Source)

	close(release)
	c.Wait()

	settled, found := store.Snapshot().ExchangeByID("corr-7")
	require.True(t, found)
	assert.Equal(t, domain.ChatSourceGenerative, settled.Source)
	assert.Equal(t, "on it", settled.Response)
}

func TestFileDeleteRollsBackOnServerFailure(t *testing.T) {
	store := state.NewStore()
	store.Dispatch(state.SetFiles{Files: []domain.FileAsset{
		{ID: "f1", Name: "spec.pdf"},
		{ID: "f2", Name: "notes.txt"},
	}})

	backend := &scriptedBackend{handler: func(domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor) {
		return nil, domain.ServerError("file is referenced")
	}}

	n := mocks.NewMockNotifier(t)
	n.EXPECT().Error("file is referenced").Return().Once()

	c := NewCoordinator(store, backend, n, fixedClock{at: time.Now()}, nil)
	require.NoError(t, c.Submit(context.Background(), domain.MutationIntent{
		EntityType: domain.EntityFile, EntityID: "f1", Kind: domain.MutationDelete,
	}))
	c.Wait()

	snap := store.Snapshot()
	require.Len(t, snap.Files, 2)
	assert.Equal(t, "f1", snap.Files[0].ID)
}
