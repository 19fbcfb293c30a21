package api

import (
	"context"
	"net/http"

	"github.com/bnema/agent-dash-cli/internal/domain"
)

func (c *Client) ListTasks(ctx context.Context) ([]domain.Task, *domain.ErrorDescriptor) {
	res := Request[[]domain.Task](ctx, c, http.MethodGet, "/tasks", nil)
	if !res.OK {
		return nil, res.Err
	}
	return res.Data, nil
}

func (c *Client) CreateTask(ctx context.Context, draft domain.TaskDraft) (domain.Task, *domain.ErrorDescriptor) {
	res := Request[domain.Task](ctx, c, http.MethodPost, "/tasks", draft)
	if !res.OK {
		return domain.Task{}, res.Err
	}
	return res.Data, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (domain.Task, *domain.ErrorDescriptor) {
	res := Request[domain.Task](ctx, c, http.MethodPut, "/tasks/"+id, patch)
	if !res.OK {
		return domain.Task{}, res.Err
	}
	return res.Data, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) *domain.ErrorDescriptor {
	res := Request[struct{}](ctx, c, http.MethodDelete, "/tasks/"+id, nil)
	return res.Err
}
