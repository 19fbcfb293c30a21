package application

import (
	"github.com/bnema/agent-dash-cli/internal/domain"
	"github.com/bnema/agent-dash-cli/internal/state"
)

// mutationPlan pairs the speculative transition with the action that
// restores the exact pre-mutation fragment. The rollback is recorded before
// anything is dispatched, so a failed call restores the entity verbatim
// without touching unrelated concurrent edits.
type mutationPlan struct {
	speculative state.Action
	rollback    state.Action
	noop        bool
}

func (c *Coordinator) plan(snap domain.Snapshot, intent domain.MutationIntent) (mutationPlan, *domain.ErrorDescriptor) {
	switch intent.EntityType {
	case domain.EntityTask:
		return c.planTask(snap, intent)
	case domain.EntityChat:
		return c.planChat(intent)
	case domain.EntityFile:
		return c.planFile(snap, intent)
	default:
		return mutationPlan{}, domain.ValidationError("unknown entity type " + string(intent.EntityType))
	}
}

func (c *Coordinator) planTask(snap domain.Snapshot, intent domain.MutationIntent) (mutationPlan, *domain.ErrorDescriptor) {
	switch intent.Kind {
	case domain.MutationCreate:
		draft, ok := intent.Payload.(domain.TaskDraft)
		if !ok {
			return mutationPlan{}, domain.ValidationError("task create requires a TaskDraft payload")
		}
		now := c.clock.Now()
		provisional := domain.Task{
			ID:          intent.CorrelationID,
			Title:       draft.Title,
			Description: draft.Description,
			Status:      draft.Status,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return mutationPlan{
			speculative: state.PutRecord{Type: domain.EntityTask, Record: provisional},
			rollback:    state.RemoveRecord{Type: domain.EntityTask, ID: intent.CorrelationID},
		}, nil

	case domain.MutationUpdate:
		patch, ok := intent.Payload.(domain.TaskPatch)
		if !ok {
			return mutationPlan{}, domain.ValidationError("task update requires a TaskPatch payload")
		}
		current, found := snap.TaskByID(intent.EntityID)
		if !found {
			return mutationPlan{}, domain.ValidationError("task " + intent.EntityID + " not found")
		}
		updated := patch.Apply(current)
		updated.UpdatedAt = c.clock.Now()
		return mutationPlan{
			speculative: state.PutRecord{Type: domain.EntityTask, Record: updated},
			rollback:    state.PutRecord{Type: domain.EntityTask, Record: current},
		}, nil

	case domain.MutationMove:
		mv, ok := intent.Payload.(domain.TaskMove)
		if !ok {
			return mutationPlan{}, domain.ValidationError("task move requires a TaskMove payload")
		}
		current, found := snap.TaskByID(intent.EntityID)
		if !found {
			return mutationPlan{}, domain.ValidationError("task " + intent.EntityID + " not found")
		}
		if current.Status == mv.Status {
			return mutationPlan{noop: true}, nil
		}
		moved := current
		moved.Status = mv.Status
		moved.UpdatedAt = c.clock.Now()
		return mutationPlan{
			speculative: state.PutRecord{Type: domain.EntityTask, Record: moved},
			rollback:    state.PutRecord{Type: domain.EntityTask, Record: current},
		}, nil

	case domain.MutationDelete:
		index, current, found := taskIndex(snap.Tasks, intent.EntityID)
		if !found {
			return mutationPlan{}, domain.ValidationError("task " + intent.EntityID + " not found")
		}
		return mutationPlan{
			speculative: state.RemoveRecord{Type: domain.EntityTask, ID: intent.EntityID},
			rollback:    state.InsertRecordAt{Type: domain.EntityTask, Index: index, Record: current},
		}, nil
	}
	return mutationPlan{}, domain.ValidationError("unsupported task mutation " + string(intent.Kind))
}

func (c *Coordinator) planChat(intent domain.MutationIntent) (mutationPlan, *domain.ErrorDescriptor) {
	if intent.Kind != domain.MutationCreate {
		return mutationPlan{}, domain.ValidationError("chat exchanges only support create")
	}
	draft, ok := intent.Payload.(domain.ChatDraft)
	if !ok {
		return mutationPlan{}, domain.ValidationError("chat create requires a ChatDraft payload")
	}
	provisional := domain.ChatExchange{
		ID:        intent.CorrelationID,
		Message:   draft.Message,
		Source:    domain.ChatSourcePending,
		Timestamp: c.clock.Now(),
	}
	return mutationPlan{
		speculative: state.PutRecord{Type: domain.EntityChat, Record: provisional},
		rollback:    state.RemoveRecord{Type: domain.EntityChat, ID: intent.CorrelationID},
	}, nil
}

func (c *Coordinator) planFile(snap domain.Snapshot, intent domain.MutationIntent) (mutationPlan, *domain.ErrorDescriptor) {
	if intent.Kind != domain.MutationDelete {
		return mutationPlan{}, domain.ValidationError("files only support delete; uploads go through the gateway")
	}
	index, current, found := fileIndex(snap.Files, intent.EntityID)
	if !found {
		return mutationPlan{}, domain.ValidationError("file " + intent.EntityID + " not found")
	}
	return mutationPlan{
		speculative: state.RemoveRecord{Type: domain.EntityFile, ID: intent.EntityID},
		rollback:    state.InsertRecordAt{Type: domain.EntityFile, Index: index, Record: current},
	}, nil
}

func taskIndex(tasks []domain.Task, id string) (int, domain.Task, bool) {
	for i, t := range tasks {
		if t.ID == id {
			return i, t, true
		}
	}
	return 0, domain.Task{}, false
}

func fileIndex(files []domain.FileAsset, id string) (int, domain.FileAsset, bool) {
	for i, f := range files {
		if f.ID == id {
			return i, f, true
		}
	}
	return 0, domain.FileAsset{}, false
}
