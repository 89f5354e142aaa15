// Package upload manages the document upload workflow: local validation,
// progress tracking, and the transition to uploaded or error.
package upload

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	coreerrors "github.com/frontdash/partner-desktop/core/errors"
)

// Status is a document's lifecycle position.
type Status int

const (
	// StatusPending — accepted locally, upload not started.
	StatusPending Status = iota
	// StatusUploading — bytes in flight; progress advances toward 90.
	StatusUploading
	// StatusUploaded — server confirmed; progress forced to 100, URL set.
	StatusUploaded
	// StatusError — upload failed; progress reset, no URL.
	StatusError
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusUploading:
		return "uploading"
	case StatusUploaded:
		return "uploaded"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Document is one selected file moving through the workflow.
type Document struct {
	mu sync.RWMutex

	ID       string
	Name     string
	Size     int64
	Category string

	Status    Status
	Progress  int // 0–100
	URL       string
	Err       error
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetStatus returns the current status.
func (d *Document) GetStatus() Status {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.Status
}

// GetProgress returns the current progress percentage.
func (d *Document) GetProgress() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.Progress
}

// GetURL returns the stored URL, empty until uploaded.
func (d *Document) GetURL() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.URL
}

func (d *Document) setProgress(p int) {
	d.mu.Lock()
	if p > d.Progress {
		d.Progress = p
	}
	d.UpdatedAt = time.Now()
	d.mu.Unlock()
}

func (d *Document) setUploading() {
	d.mu.Lock()
	d.Status = StatusUploading
	d.UpdatedAt = time.Now()
	d.mu.Unlock()
}

func (d *Document) setUploaded(url string) {
	d.mu.Lock()
	d.Status = StatusUploaded
	d.Progress = 100
	d.URL = url
	d.Err = nil
	d.UpdatedAt = time.Now()
	d.mu.Unlock()
}

func (d *Document) setError(err error) {
	d.mu.Lock()
	d.Status = StatusError
	d.Progress = 0
	d.URL = ""
	d.Err = err
	d.UpdatedAt = time.Now()
	d.mu.Unlock()
}

// Clone returns a copy safe to hand out.
func (d *Document) Clone() *Document {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return &Document{
		ID:        d.ID,
		Name:      d.Name,
		Size:      d.Size,
		Category:  d.Category,
		Status:    d.Status,
		Progress:  d.Progress,
		URL:       d.URL,
		Err:       d.Err,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Rules are the local acceptance checks a file must pass before its status
// can ever become uploading.
type Rules struct {
	MaxSize           int64
	AllowedExtensions []string
}

// Validate rejects oversized files and disallowed extensions.
func (r Rules) Validate(name string, size int64) error {
	if r.MaxSize > 0 && size > r.MaxSize {
		return coreerrors.New(coreerrors.ErrCodeValidation,
			fmt.Sprintf("file %q exceeds the %d byte limit", name, r.MaxSize))
	}
	if len(r.AllowedExtensions) == 0 {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range r.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return nil
		}
	}
	return coreerrors.New(coreerrors.ErrCodeValidation,
		fmt.Sprintf("file type %q is not allowed", ext))
}
