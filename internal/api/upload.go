package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/soley/admin-cli/internal/utils"
)

// UploadResult is the body returned by the upload endpoint.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// UploadImage sends an image to the upload endpoint as the multipart field
// "file". Wrong type and oversized files are rejected before any request is
// made. An empty contentType is sniffed from the data.
func (c *Client) UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (*UploadResult, error) {
	data, err := io.ReadAll(io.LimitReader(r, utils.MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if err := utils.ValidateImage(contentType, int64(len(data)), utils.MaxImageBytes); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, newError(0, "", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, newError(0, "", err)
	}
	if err := mw.Close(); err != nil {
		return nil, newError(0, "", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &buf)
	if err != nil {
		return nil, newError(0, "", fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	var out UploadResult
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
