package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/bnema/agent-dash-cli/internal/domain"
)

// UploadFile describes a file about to be transferred. Size must be known up
// front so the client-side limit check can run before any bytes move.
type UploadFile struct {
	Name   string
	Size   int64
	Reader io.Reader
}

func (c *Client) ListFiles(ctx context.Context) ([]domain.FileAsset, *domain.ErrorDescriptor) {
	res := Request[[]domain.FileAsset](ctx, c, http.MethodGet, "/files", nil)
	if !res.OK {
		return nil, res.Err
	}
	return res.Data, nil
}

func (c *Client) DeleteFile(ctx context.Context, id string) *domain.ErrorDescriptor {
	res := Request[struct{}](ctx, c, http.MethodDelete, "/files/"+id, nil)
	return res.Err
}

// Upload sends file as a multipart transfer. Oversized files are rejected
// locally without issuing a request.
func (c *Client) Upload(ctx context.Context, file UploadFile) Result[domain.FileAsset] {
	if file.Size > c.maxUploadBytes {
		return failure[domain.FileAsset](domain.ValidationError(fmt.Sprintf(
			"file is %d bytes, the upload limit is %d", file.Size, c.maxUploadBytes)))
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", file.Name)
	if err != nil {
		return failure[domain.FileAsset](domain.ValidationError(fmt.Sprintf("build multipart body: %v", err)))
	}
	if _, err := io.Copy(part, file.Reader); err != nil {
		return failure[domain.FileAsset](domain.ValidationError(fmt.Sprintf("read upload source: %v", err)))
	}
	if err := mw.Close(); err != nil {
		return failure[domain.FileAsset](domain.ValidationError(fmt.Sprintf("finalize multipart body: %v", err)))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files/upload", &body)
	if err != nil {
		return failure[domain.FileAsset](domain.ValidationError(fmt.Sprintf("build request: %v", err)))
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return do[domain.FileAsset](c, req)
}
