// Package scheduler runs the periodic rental status sweep. Rentals are
// written with a fixed status at creation; the sweep moves records whose
// date range spans the current time to ongoing and closes past ones.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/selin-bardakci/waveriders/internal/config"
	"github.com/selin-bardakci/waveriders/internal/database/rentals"
)

// RentalSweepScheduler reconciles rental statuses on a cron schedule.
type RentalSweepScheduler struct {
	rentals *rentals.Repository
	config  config.Rentals

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewRentalSweepScheduler(repo *rentals.Repository, cfg config.Rentals) *RentalSweepScheduler {
	return &RentalSweepScheduler{
		rentals: repo,
		config:  cfg,
		cron:    cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if the sweep is enabled.
func (s *RentalSweepScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.config.SweepEnabled {
		log.Printf("Rental sweep scheduler: disabled")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.config.SweepSchedule, func() {
		s.runSweep()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule rental sweep: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Rental sweep scheduler: started with schedule '%s'", s.config.SweepSchedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running sweep.
func (s *RentalSweepScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Rental sweep scheduler: stopped")
}

// IsRunning reports whether the scheduler is active.
func (s *RentalSweepScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *RentalSweepScheduler) runSweep() {
	updated, err := s.rentals.ReconcileStatuses(time.Now())
	if err != nil {
		log.Printf("Rental sweep failed: %v", err)
		return
	}
	if updated > 0 {
		log.Printf("Rental sweep updated %d rentals", updated)
	}
}
