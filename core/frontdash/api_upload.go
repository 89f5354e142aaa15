package frontdash

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

type uploadWire struct {
	URL string `json:"url"`
}

// UploadImage posts one file as multipart form data and returns the stored
// URL, absolutised against the base URL. Unauthenticated: uploads happen
// during registration, before any token exists.
func (c *Client) UploadImage(ctx context.Context, filename, category string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("frontdash: build multipart: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("frontdash: read upload content: %w", err)
	}
	if category != "" {
		if err := writer.WriteField("category", category); err != nil {
			return "", fmt.Errorf("frontdash: build multipart: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("frontdash: build multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, joinURL(c.baseURL, "/images/upload"), &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	var wire uploadWire
	if err := c.http.Do(req, &wire); err != nil {
		return "", wrapErr("file upload failed", err)
	}
	if wire.URL == "" {
		return "", NewPortalError(ErrCodeInvalidRequest, "upload response had no url")
	}
	return absoluteURL(c.baseURL, wire.URL), nil
}
