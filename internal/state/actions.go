package state

import "github.com/bnema/agent-dash-cli/internal/domain"

// Action is the closed set of state transitions. Dispatching a value outside
// this set is a no-op, never an error.
type Action interface {
	isAction()
}

// Hydration actions replace a whole collection with the server's view.

type SetTasks struct{ Tasks []domain.Task }

type SetExchanges struct{ Exchanges []domain.ChatExchange }

type SetFiles struct{ Files []domain.FileAsset }

// Record actions are the coordinator's speculative-apply, reconcile and
// rollback primitives. They address one record of one entity type.

// PutRecord upserts: an existing record with the same id is replaced in
// place, otherwise the record is appended.
type PutRecord struct {
	Type   domain.EntityType
	Record domain.Record
}

// ReplaceRecord swaps the record currently stored under OldID for Record,
// keeping its position. Used to reconcile a provisional record with the
// authoritative one. Missing OldID degrades to an append.
type ReplaceRecord struct {
	Type   domain.EntityType
	OldID  string
	Record domain.Record
}

type RemoveRecord struct {
	Type domain.EntityType
	ID   string
}

// InsertRecordAt restores a removed record at its original index, used when
// rolling back a failed delete. Out-of-range indexes clamp.
type InsertRecordAt struct {
	Type   domain.EntityType
	Index  int
	Record domain.Record
}

// Session and UI actions.

type SetSession struct{ Session *domain.Session }

type SetTheme struct{ Theme domain.Theme }

type ToggleSidebar struct{}

// ResetAll empties the session and every entity collection. UI flags keep
// their values across a teardown.
type ResetAll struct{}

func (SetTasks) isAction()       {}
func (SetExchanges) isAction()   {}
func (SetFiles) isAction()       {}
func (PutRecord) isAction()      {}
func (ReplaceRecord) isAction()  {}
func (RemoveRecord) isAction()   {}
func (InsertRecordAt) isAction() {}
func (SetSession) isAction()     {}
func (SetTheme) isAction()       {}
func (ToggleSidebar) isAction()  {}
func (ResetAll) isAction()       {}
