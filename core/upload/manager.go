package upload

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrDocumentNotFound is returned for unknown document ids.
	ErrDocumentNotFound = errors.New("upload: document not found")
)

// Uploader is the transport seam. The real implementation posts to
// /images/upload; tests and offline harnesses plug in fakes without touching
// the manager.
type Uploader interface {
	Upload(ctx context.Context, filename, category string, content io.Reader) (url string, err error)
}

// UploaderFunc adapts a function to Uploader.
type UploaderFunc func(ctx context.Context, filename, category string, content io.Reader) (string, error)

// Upload implements Uploader.
func (f UploaderFunc) Upload(ctx context.Context, filename, category string, content io.Reader) (string, error) {
	return f(ctx, filename, category, content)
}

// ProgressCallback observes document changes. Called with a clone.
type ProgressCallback func(doc *Document)

// Manager owns the document set and drives uploads with bounded concurrency.
type Manager struct {
	mu        sync.RWMutex
	documents map[string]*Document
	order     []string
	callbacks []ProgressCallback
	cancels   map[string]context.CancelFunc

	uploader      Uploader
	rules         Rules
	maxConcurrent int
	semaphore     chan struct{}

	// categories where only one document may exist at a time
	singleCategories map[string]bool

	wg sync.WaitGroup
}

// ManagerOption configures the manager.
type ManagerOption func(*Manager)

// WithRules sets the local acceptance rules.
func WithRules(rules Rules) ManagerOption {
	return func(m *Manager) {
		m.rules = rules
	}
}

// WithMaxConcurrent bounds parallel uploads.
func WithMaxConcurrent(n int) ManagerOption {
	return func(m *Manager) {
		if n > 0 {
			m.maxConcurrent = n
		}
	}
}

// WithSingleCategory marks a category as replace-on-new-selection.
func WithSingleCategory(categories ...string) ManagerOption {
	return func(m *Manager) {
		for _, c := range categories {
			m.singleCategories[c] = true
		}
	}
}

// NewManager creates a manager around an uploader.
func NewManager(uploader Uploader, opts ...ManagerOption) *Manager {
	m := &Manager{
		documents:        make(map[string]*Document),
		cancels:          make(map[string]context.CancelFunc),
		uploader:         uploader,
		maxConcurrent:    3,
		singleCategories: make(map[string]bool),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	m.semaphore = make(chan struct{}, m.maxConcurrent)
	return m
}

// OnProgress registers a progress callback.
func (m *Manager) OnProgress(cb ProgressCallback) {
	if cb == nil {
		return
	}
	m.mu.Lock()
	m.callbacks = append(m.callbacks, cb)
	m.mu.Unlock()
}

func (m *Manager) notify(doc *Document) {
	m.mu.RLock()
	cbs := append([]ProgressCallback(nil), m.callbacks...)
	m.mu.RUnlock()
	clone := doc.Clone()
	for _, cb := range cbs {
		cb(clone)
	}
}

// Add validates the file locally and, when accepted, starts the upload. A
// rejected file returns the validation error and is never tracked: its
// status never reaches uploading. For single categories the new selection
// replaces any prior documents of that category.
func (m *Manager) Add(ctx context.Context, name, category string, size int64, content io.Reader) (string, error) {
	if err := m.rules.Validate(name, size); err != nil {
		return "", err
	}
	now := time.Now()
	doc := &Document{
		ID:        uuid.New().String(),
		Name:      name,
		Size:      size,
		Category:  category,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	if m.singleCategories[category] {
		for id, existing := range m.documents {
			if existing.Category != category {
				continue
			}
			if cancel, ok := m.cancels[id]; ok {
				cancel()
			}
			delete(m.documents, id)
			m.dropOrder(id)
		}
	}
	m.documents[doc.ID] = doc
	m.order = append(m.order, doc.ID)
	m.mu.Unlock()
	m.notify(doc)

	runCtx, cancel := context.WithCancel(ctx)
	m.mu.Lock()
	m.cancels[doc.ID] = cancel
	m.mu.Unlock()

	m.wg.Add(1)
	go m.run(runCtx, doc, content)
	return doc.ID, nil
}

func (m *Manager) run(ctx context.Context, doc *Document, content io.Reader) {
	defer m.wg.Done()
	if closer, ok := content.(io.Closer); ok {
		defer closer.Close()
	}
	defer func() {
		m.mu.Lock()
		delete(m.cancels, doc.ID)
		m.mu.Unlock()
	}()

	select {
	case m.semaphore <- struct{}{}:
	case <-ctx.Done():
		doc.setError(ctx.Err())
		m.notify(doc)
		return
	}
	defer func() { <-m.semaphore }()

	doc.setUploading()
	m.notify(doc)

	// progress advances with bytes read, capped at 90 until the server
	// confirms
	reader := &progressReader{
		inner: content,
		total: doc.Size,
		report: func(pct int) {
			doc.setProgress(pct)
			m.notify(doc)
		},
	}
	url, err := m.uploader.Upload(ctx, doc.Name, doc.Category, reader)
	if err != nil {
		doc.setError(err)
		m.notify(doc)
		return
	}
	doc.setUploaded(url)
	m.notify(doc)
}

// Get returns a copy of one document.
func (m *Manager) Get(id string) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.documents[id]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	return doc.Clone(), nil
}

// List returns copies of all documents in insertion order.
func (m *Manager) List() []*Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Document, 0, len(m.documents))
	for _, id := range m.order {
		if doc, ok := m.documents[id]; ok {
			out = append(out, doc.Clone())
		}
	}
	return out
}

// ListByCategory filters documents by category.
func (m *Manager) ListByCategory(category string) []*Document {
	all := m.List()
	out := make([]*Document, 0, len(all))
	for _, doc := range all {
		if doc.Category == category {
			out = append(out, doc)
		}
	}
	return out
}

// URLs returns the stored URLs of every uploaded document, the shape the
// registration payload wants.
func (m *Manager) URLs() []string {
	all := m.List()
	out := make([]string, 0, len(all))
	for _, doc := range all {
		if doc.Status == StatusUploaded && doc.URL != "" {
			out = append(out, doc.URL)
		}
	}
	return out
}

// Remove drops a document from the local set, cancelling an in-flight
// upload. Purely client-side: no server deletion is issued.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	_, ok := m.documents[id]
	if !ok {
		m.mu.Unlock()
		return ErrDocumentNotFound
	}
	if cancel, hasCancel := m.cancels[id]; hasCancel {
		cancel()
	}
	delete(m.documents, id)
	m.dropOrder(id)
	m.mu.Unlock()
	return nil
}

// Wait blocks until every started upload has settled. Harness/test helper.
func (m *Manager) Wait() {
	m.wg.Wait()
}

func (m *Manager) dropOrder(id string) {
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}

// progressReader reports read progress as a 0–90 percentage.
type progressReader struct {
	inner  io.Reader
	total  int64
	read   int64
	report func(pct int)
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.inner.Read(p)
	if n > 0 {
		r.read += int64(n)
		if r.total > 0 && r.report != nil {
			pct := int(r.read * 90 / r.total)
			if pct > 90 {
				pct = 90
			}
			r.report(pct)
		}
	}
	return n, err
}
