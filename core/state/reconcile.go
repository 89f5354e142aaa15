package state

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/frontdash/partner-desktop/core/httpclient"
)

// Reconciler periodically refetches the cached slices so local state that
// drifted from the server (optimistic updates, edits from another session)
// converges again. Disabled unless started; each run is best effort and a
// failed refetch leaves the slice's own error recorded.
type Reconciler struct {
	store   *Store
	cron    *cron.Cron
	logger  httpclient.Logger
	timeout time.Duration
}

// NewReconciler builds a reconciler for the given store.
func NewReconciler(store *Store, logger httpclient.Logger) *Reconciler {
	if logger == nil {
		logger = httpclient.NopLogger{}
	}
	return &Reconciler{
		store:   store,
		cron:    cron.New(),
		logger:  logger,
		timeout: 30 * time.Second,
	}
}

// Start schedules refetches on the given cron expression (e.g. "@every 5m").
func (r *Reconciler) Start(schedule string) error {
	if _, err := r.cron.AddFunc(schedule, r.run); err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

// Stop halts the schedule and waits for a running refetch to finish.
func (r *Reconciler) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Reconciler) run() {
	// only refetch while a session exists; anonymous stores have nothing
	// worth reconciling
	if _, err := r.store.Session().RequireToken(); err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if r.store.Profile().HasValue {
		if _, err := r.store.LoadProfile(ctx); err != nil {
			r.logger.Debugf("reconcile profile: %v", err)
		}
	}
	if r.store.Menu().HasValue {
		if _, err := r.store.LoadMenu(ctx); err != nil {
			r.logger.Debugf("reconcile menu: %v", err)
		}
	}
	if r.store.Hours().HasValue {
		if _, err := r.store.LoadHours(ctx); err != nil {
			r.logger.Debugf("reconcile hours: %v", err)
		}
	}
}
