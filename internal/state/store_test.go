package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/agent-dash-cli/internal/domain"
)

type unknownAction struct{}

func (unknownAction) isAction() {}

func seedTask(id, title string, status domain.TaskStatus) domain.Task {
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	return domain.Task{
		ID:        id,
		Title:     title,
		Status:    status,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestDispatchKeepsPriorSnapshotUnchanged(t *testing.T) {
	store := NewStore()
	original := seedTask("t1", "write docs", domain.TaskStatusTodo)
	store.Dispatch(SetTasks{Tasks: []domain.Task{original}})

	before := store.Snapshot()
	saved := before.Tasks[0]

	moved := original
	moved.Status = domain.TaskStatusDoing
	after := store.Dispatch(PutRecord{Type: domain.EntityTask, Record: moved})

	assert.Equal(t, saved, before.Tasks[0])
	assert.Equal(t, domain.TaskStatusTodo, before.Tasks[0].Status)
	assert.Equal(t, domain.TaskStatusDoing, after.Tasks[0].Status)
}

func TestUnknownActionIsNoOp(t *testing.T) {
	store := NewStore()
	store.Dispatch(SetTasks{Tasks: []domain.Task{seedTask("t1", "a", domain.TaskStatusTodo)}})

	before := store.Snapshot()
	after := store.Dispatch(unknownAction{})

	assert.Equal(t, before, after)
}

func TestListenersObserveSnapshotsInDispatchOrder(t *testing.T) {
	store := NewStore()

	var first, second []int
	cancel1 := store.Subscribe(func(s domain.Snapshot) { first = append(first, len(s.Tasks)) })
	defer cancel1()
	cancel2 := store.Subscribe(func(s domain.Snapshot) { second = append(second, len(s.Tasks)) })
	defer cancel2()

	store.Dispatch(PutRecord{Type: domain.EntityTask, Record: seedTask("t1", "a", domain.TaskStatusTodo)})
	store.Dispatch(PutRecord{Type: domain.EntityTask, Record: seedTask("t2", "b", domain.TaskStatusTodo)})
	store.Dispatch(RemoveRecord{Type: domain.EntityTask, ID: "t1"})

	assert.Equal(t, []int{1, 2, 1}, first)
	assert.Equal(t, first, second)
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	store := NewStore()

	calls := 0
	cancel := store.Subscribe(func(domain.Snapshot) { calls++ })

	store.Dispatch(ToggleSidebar{})
	cancel()
	store.Dispatch(ToggleSidebar{})

	assert.Equal(t, 1, calls)
}

func TestPutRecordReplacesInPlace(t *testing.T) {
	store := NewStore()
	store.Dispatch(SetTasks{Tasks: []domain.Task{
		seedTask("t1", "a", domain.TaskStatusTodo),
		seedTask("t2", "b", domain.TaskStatusTodo),
		seedTask("t3", "c", domain.TaskStatusTodo),
	}})

	renamed := seedTask("t2", "b renamed", domain.TaskStatusTodo)
	snap := store.Dispatch(PutRecord{Type: domain.EntityTask, Record: renamed})

	require.Len(t, snap.Tasks, 3)
	assert.Equal(t, "t2", snap.Tasks[1].ID)
	assert.Equal(t, "b renamed", snap.Tasks[1].Title)
}

func TestReplaceRecordSwapsIdentityKeepingPosition(t *testing.T) {
	store := NewStore()
	store.Dispatch(SetTasks{Tasks: []domain.Task{
		seedTask("t1", "a", domain.TaskStatusTodo),
		seedTask("prov-1", "speculative", domain.TaskStatusTodo),
		seedTask("t3", "c", domain.TaskStatusTodo),
	}})

	authoritative := seedTask("srv-9", "speculative", domain.TaskStatusTodo)
	snap := store.Dispatch(ReplaceRecord{Type: domain.EntityTask, OldID: "prov-1", Record: authoritative})

	require.Len(t, snap.Tasks, 3)
	assert.Equal(t, "srv-9", snap.Tasks[1].ID)
	_, found := snap.TaskByID("prov-1")
	assert.False(t, found)
}

func TestInsertRecordAtRestoresPosition(t *testing.T) {
	store := NewStore()
	store.Dispatch(SetTasks{Tasks: []domain.Task{
		seedTask("t1", "a", domain.TaskStatusTodo),
		seedTask("t3", "c", domain.TaskStatusTodo),
	}})

	snap := store.Dispatch(InsertRecordAt{Type: domain.EntityTask, Index: 1, Record: seedTask("t2", "b", domain.TaskStatusTodo)})

	require.Len(t, snap.Tasks, 3)
	assert.Equal(t, []string{"t1", "t2", "t3"}, []string{snap.Tasks[0].ID, snap.Tasks[1].ID, snap.Tasks[2].ID})
}

func TestInsertRecordAtClampsOutOfRangeIndex(t *testing.T) {
	store := NewStore()
	snap := store.Dispatch(InsertRecordAt{Type: domain.EntityTask, Index: 7, Record: seedTask("t1", "a", domain.TaskStatusTodo)})
	require.Len(t, snap.Tasks, 1)

	snap = store.Dispatch(InsertRecordAt{Type: domain.EntityTask, Index: -2, Record: seedTask("t0", "z", domain.TaskStatusTodo)})
	require.Len(t, snap.Tasks, 2)
	assert.Equal(t, "t0", snap.Tasks[0].ID)
}

func TestResetAllClearsCollectionsButKeepsUIFlags(t *testing.T) {
	store := NewStore()
	store.Dispatch(SetTheme{Theme: domain.ThemeDark})
	store.Dispatch(ToggleSidebar{})
	store.Dispatch(SetSession{Session: &domain.Session{Token: "tok", User: domain.User{ID: "u1"}}})
	store.Dispatch(SetTasks{Tasks: []domain.Task{seedTask("t1", "a", domain.TaskStatusTodo)}})
	store.Dispatch(SetFiles{Files: []domain.FileAsset{{ID: "f1", Name: "report.pdf"}}})

	snap := store.Dispatch(ResetAll{})

	assert.Nil(t, snap.Session)
	assert.Empty(t, snap.Tasks)
	assert.Empty(t, snap.Exchanges)
	assert.Empty(t, snap.Files)
	assert.Equal(t, domain.ThemeDark, snap.Theme)
	assert.True(t, snap.SidebarCollapsed)
}
