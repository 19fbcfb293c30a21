package api

import (
	"context"

	"github.com/bnema/agent-dash-cli/internal/domain"
	"github.com/bnema/agent-dash-cli/internal/ports"
)

var (
	_ ports.MutationBackend = (*Client)(nil)
	_ ports.SnapshotSource  = (*Client)(nil)
)

// Mutate maps a mutation intent onto the backend operation it implies:
// create to POST, update/move to PUT, delete to DELETE.
func (c *Client) Mutate(ctx context.Context, intent domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor) {
	switch intent.EntityType {
	case domain.EntityTask:
		return c.mutateTask(ctx, intent)
	case domain.EntityChat:
		return c.mutateChat(ctx, intent)
	case domain.EntityFile:
		return c.mutateFile(ctx, intent)
	default:
		return nil, domain.ValidationError("unknown entity type " + string(intent.EntityType))
	}
}

func (c *Client) mutateTask(ctx context.Context, intent domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor) {
	switch intent.Kind {
	case domain.MutationCreate:
		draft, ok := intent.Payload.(domain.TaskDraft)
		if !ok {
			return nil, domain.ValidationError("task create requires a TaskDraft payload")
		}
		task, derr := c.CreateTask(ctx, draft)
		if derr != nil {
			return nil, derr
		}
		return task, nil
	case domain.MutationUpdate:
		patch, ok := intent.Payload.(domain.TaskPatch)
		if !ok {
			return nil, domain.ValidationError("task update requires a TaskPatch payload")
		}
		task, derr := c.UpdateTask(ctx, intent.EntityID, patch)
		if derr != nil {
			return nil, derr
		}
		return task, nil
	case domain.MutationMove:
		mv, ok := intent.Payload.(domain.TaskMove)
		if !ok {
			return nil, domain.ValidationError("task move requires a TaskMove payload")
		}
		task, derr := c.UpdateTask(ctx, intent.EntityID, domain.TaskPatch{Status: &mv.Status})
		if derr != nil {
			return nil, derr
		}
		return task, nil
	case domain.MutationDelete:
		return nil, c.DeleteTask(ctx, intent.EntityID)
	default:
		return nil, domain.ValidationError("unsupported task mutation " + string(intent.Kind))
	}
}

func (c *Client) mutateChat(ctx context.Context, intent domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor) {
	if intent.Kind != domain.MutationCreate {
		return nil, domain.ValidationError("chat exchanges only support create")
	}
	draft, ok := intent.Payload.(domain.ChatDraft)
	if !ok {
		return nil, domain.ValidationError("chat create requires a ChatDraft payload")
	}

	response, source, derr := c.SendMessage(ctx, draft.Message)
	if derr != nil {
		return nil, derr
	}

	// The send endpoint returns no id; the exchange keeps its provisional
	// one and the history endpoint remains the id authority.
	return domain.ChatExchange{
		ID:        intent.CorrelationID,
		Message:   draft.Message,
		Response:  response,
		Source:    source,
		Timestamp: c.now(),
	}, nil
}

func (c *Client) mutateFile(ctx context.Context, intent domain.MutationIntent) (domain.Record, *domain.ErrorDescriptor) {
	if intent.Kind != domain.MutationDelete {
		return nil, domain.ValidationError("files are uploaded through the gateway, not mutated optimistically")
	}
	return nil, c.DeleteFile(ctx, intent.EntityID)
}
