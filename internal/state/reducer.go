package state

import "github.com/bnema/agent-dash-cli/internal/domain"

// reduce is the pure transition function. It never mutates snap: collections
// that change are rebuilt, everything else is shared with the prior value.
func reduce(snap domain.Snapshot, action Action) domain.Snapshot {
	switch a := action.(type) {
	case SetTasks:
		snap.Tasks = cloneSlice(a.Tasks)
	case SetExchanges:
		snap.Exchanges = cloneSlice(a.Exchanges)
	case SetFiles:
		snap.Files = cloneSlice(a.Files)

	case PutRecord:
		switch a.Type {
		case domain.EntityTask:
			if t, ok := a.Record.(domain.Task); ok {
				snap.Tasks = upsert(snap.Tasks, t)
			}
		case domain.EntityChat:
			if e, ok := a.Record.(domain.ChatExchange); ok {
				snap.Exchanges = upsert(snap.Exchanges, e)
			}
		case domain.EntityFile:
			if f, ok := a.Record.(domain.FileAsset); ok {
				snap.Files = upsert(snap.Files, f)
			}
		}
	case ReplaceRecord:
		switch a.Type {
		case domain.EntityTask:
			if t, ok := a.Record.(domain.Task); ok {
				snap.Tasks = replace(snap.Tasks, a.OldID, t)
			}
		case domain.EntityChat:
			if e, ok := a.Record.(domain.ChatExchange); ok {
				snap.Exchanges = replace(snap.Exchanges, a.OldID, e)
			}
		case domain.EntityFile:
			if f, ok := a.Record.(domain.FileAsset); ok {
				snap.Files = replace(snap.Files, a.OldID, f)
			}
		}
	case RemoveRecord:
		switch a.Type {
		case domain.EntityTask:
			snap.Tasks = removeByID(snap.Tasks, a.ID)
		case domain.EntityChat:
			snap.Exchanges = removeByID(snap.Exchanges, a.ID)
		case domain.EntityFile:
			snap.Files = removeByID(snap.Files, a.ID)
		}
	case InsertRecordAt:
		switch a.Type {
		case domain.EntityTask:
			if t, ok := a.Record.(domain.Task); ok {
				snap.Tasks = insertAt(snap.Tasks, a.Index, t)
			}
		case domain.EntityChat:
			if e, ok := a.Record.(domain.ChatExchange); ok {
				snap.Exchanges = insertAt(snap.Exchanges, a.Index, e)
			}
		case domain.EntityFile:
			if f, ok := a.Record.(domain.FileAsset); ok {
				snap.Files = insertAt(snap.Files, a.Index, f)
			}
		}

	case SetSession:
		snap.Session = a.Session
	case SetTheme:
		snap.Theme = a.Theme
	case ToggleSidebar:
		snap.SidebarCollapsed = !snap.SidebarCollapsed
	case ResetAll:
		snap.Session = nil
		snap.Tasks = nil
		snap.Exchanges = nil
		snap.Files = nil
	}

	return snap
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func upsert[T domain.Record](list []T, rec T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	for i := range out {
		if out[i].RecordID() == rec.RecordID() {
			out[i] = rec
			return out
		}
	}
	return append(out, rec)
}

func replace[T domain.Record](list []T, oldID string, rec T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	for i := range out {
		if out[i].RecordID() == oldID {
			out[i] = rec
			return out
		}
	}
	return append(out, rec)
}

func removeByID[T domain.Record](list []T, id string) []T {
	out := make([]T, 0, len(list))
	for _, rec := range list {
		if rec.RecordID() != id {
			out = append(out, rec)
		}
	}
	return out
}

func insertAt[T any](list []T, index int, rec T) []T {
	if index < 0 {
		index = 0
	}
	if index > len(list) {
		index = len(list)
	}
	out := make([]T, 0, len(list)+1)
	out = append(out, list[:index]...)
	out = append(out, rec)
	out = append(out, list[index:]...)
	return out
}
