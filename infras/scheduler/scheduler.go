package scheduler

import (
	"carrental/config"
	"carrental/infras/otel"
	"carrental/shared/constant"
	"carrental/shared/timezone"
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const jobTimeout = 5 * time.Minute

// CarSweeper resets cars whose stored reservation marker has lapsed.
type CarSweeper interface {
	ReleaseLapsedCars(ctx context.Context) (int64, error)
}

type Scheduler struct {
	cron    *cron.Cron
	config  *config.Config
	otel    otel.Otel
	sweeper CarSweeper
}

func New(cfg *config.Config, otl otel.Otel, sweeper CarSweeper) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(timezone.GetLocation()),
			cron.WithSeconds(),
		),
		config:  cfg,
		otel:    otl,
		sweeper: sweeper,
	}
}

// Register adds every job to the cron table. It is a no-op when the scheduler is disabled.
func (s *Scheduler) Register() error {
	if !s.config.Scheduler.Enable {
		log.Info().Msg("Scheduler disabled, read-time projection only")

		return nil
	}

	_, err := s.cron.AddFunc(s.config.Scheduler.ReleaseLapsedCars, s.releaseLapsedCars)
	if err != nil {
		log.Error().Err(err).Str("spec", s.config.Scheduler.ReleaseLapsedCars).Msg("Failed to register ReleaseLapsedCars job")

		return fmt.Errorf("failed to register release lapsed cars job: %w", err)
	}

	log.Info().Int("jobs", len(s.cron.Entries())).Msg("Cron jobs registered")

	return nil
}

func (s *Scheduler) Start() {
	if len(s.cron.Entries()) == 0 {
		return
	}

	s.cron.Start()
	log.Info().Msg("Cron scheduler started")
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("Cron scheduler stopped")
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) releaseLapsedCars() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	ctx, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".ReleaseLapsedCars")
	defer scope.End()

	released, err := s.sweeper.ReleaseLapsedCars(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("ReleaseLapsedCars job failed")

		return
	}

	log.Info().Int64("released", released).Msg("ReleaseLapsedCars job finished")
}
