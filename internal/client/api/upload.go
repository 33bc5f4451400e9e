package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// UploadImage sends an image to the backend as multipart form data and
// returns the server path under which it was stored.
func (c *Client) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build multipart: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finish multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/image", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-Request-Id", newRequestID())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env struct {
		Detail string `json:"detail"`
		Data   struct {
			FilePath string `json:"file_path"`
		} `json:"data"`
	}
	raw, err := io.ReadAll(resp.Body)
	if err == nil && len(raw) > 0 {
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode != http.StatusCreated || env.Data.FilePath == "" {
		return "", fmt.Errorf("%w: upload failed (status %d)", ErrRejected, resp.StatusCode)
	}
	return env.Data.FilePath, nil
}
