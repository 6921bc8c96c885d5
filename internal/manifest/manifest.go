// Package manifest owns the gallery build manifest: a file the static-site
// deploy drops next to the gateway, in whatever shape the bundler of the day
// emits. The store keeps the latest raw snapshot; interpreting it is
// internal/gallery's job.
package manifest

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"

	"github.com/exploride/social-gateway/pkg/config"
	"github.com/exploride/social-gateway/pkg/logger"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type Store struct {
	path   string
	logger logger.Logger

	mu  sync.RWMutex
	raw []byte

	scheduler gocron.Scheduler
}

func New(opts Opts) *Store {
	s := &Store{
		path:   opts.Config.Gallery.ManifestPath,
		logger: opts.Logger.WithComponent("ManifestStore"),
	}

	if err := s.Reload(); err != nil {
		s.logger.Warn("Gallery manifest not loaded, gallery listing will be empty", "error", err)
	}
	return s
}

// Raw returns the current manifest snapshot. Empty when no manifest is
// configured or the last successful load was empty.
func (s *Store) Raw() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.raw
}

// Reload re-reads the manifest file. A failed read keeps the previous
// snapshot.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read manifest %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.raw = data
	s.mu.Unlock()

	s.logger.Info("Gallery manifest loaded", "path", s.path, "bytes", len(data))
	return nil
}

// ScheduleReload starts a periodic job re-reading the manifest so a
// redeployed static bundle is picked up without a restart.
func (s *Store) ScheduleReload(interval time.Duration) error {
	if s.path == "" || interval <= 0 {
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create manifest reload scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if err := s.Reload(); err != nil {
				s.logger.Warn("Manifest reload failed, keeping previous snapshot", "error", err)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule manifest reload: %w", err)
	}

	scheduler.Start()
	s.scheduler = scheduler
	return nil
}

// StopReload shuts down the reload job, if one was scheduled.
func (s *Store) StopReload() {
	if s.scheduler == nil {
		return
	}
	if err := s.scheduler.Shutdown(); err != nil {
		s.logger.Error("Failed to shut down manifest reload scheduler", "error", err)
	}
}
