package api

import (
	"context"
	"net/http"

	"github.com/bnema/agent-dash-cli/internal/domain"
)

type chatReply struct {
	Response string `json:"response"`
	Source   string `json:"source"`
}

func (c *Client) SendMessage(ctx context.Context, message string) (string, domain.ChatSource, *domain.ErrorDescriptor) {
	res := Request[chatReply](ctx, c, http.MethodPost, "/chat", map[string]string{"message": message})
	if !res.OK {
		return "", "", res.Err
	}
	return res.Data.Response, domain.NormalizeChatSource(res.Data.Source), nil
}

func (c *Client) ChatHistory(ctx context.Context) ([]domain.ChatExchange, *domain.ErrorDescriptor) {
	res := Request[[]domain.ChatExchange](ctx, c, http.MethodGet, "/chat/history", nil)
	if !res.OK {
		return nil, res.Err
	}
	exchanges := res.Data
	for i := range exchanges {
		exchanges[i].Source = domain.NormalizeChatSource(string(exchanges[i].Source))
	}
	return exchanges, nil
}
