package domain

type EntityType string

const (
	EntityTask EntityType = "task"
	EntityChat EntityType = "chat"
	EntityFile EntityType = "file"
)

type MutationKind string

const (
	MutationCreate MutationKind = "create"
	MutationUpdate MutationKind = "update"
	MutationDelete MutationKind = "delete"
	MutationMove   MutationKind = "move"
)

// Record is any server-owned entity mirrored in the state snapshot.
type Record interface {
	RecordID() string
}

// EntityKey identifies the serialization unit for optimistic mutations:
// at most one mutation per key is in flight at a time.
type EntityKey struct {
	Type EntityType
	ID   string
}

// MutationIntent is a user-issued edit before any network traffic.
//
// CorrelationID is assigned at submission and, for create intents, doubles
// as the provisional record id until the server assigns the real one.
// EntityID is empty exactly when Kind is MutationCreate.
type MutationIntent struct {
	CorrelationID string
	EntityType    EntityType
	EntityID      string
	Kind          MutationKind
	Payload       any
}

// Key returns the serialization key. Create intents key on the correlation
// id so queued follow-ups for the provisional record line up behind them.
func (in MutationIntent) Key() EntityKey {
	id := in.EntityID
	if id == "" {
		id = in.CorrelationID
	}
	return EntityKey{Type: in.EntityType, ID: id}
}
