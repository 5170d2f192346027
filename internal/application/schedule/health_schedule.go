package schedule

import (
	"context"
	"time"

	"go-shortener/internal/domain/model"
	"go-shortener/internal/domain/usecase/health"
	"go-shortener/pkg/log"
	"go-shortener/pkg/msg"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const healthCheckTimeout = 10 * time.Second

// HealthScheduler periodically probes the shortener and logs its status
type HealthScheduler struct {
	cron    *cron.Cron
	useCase health.UseCase
}

func NewHealthScheduler(useCase health.UseCase) *HealthScheduler {
	return &HealthScheduler{cron: cron.New(), useCase: useCase}
}

// InitHealthScheduleTasks registers the probe on cronExpression and starts the scheduler
func (scheduler *HealthScheduler) InitHealthScheduleTasks(cronExpression string) error {
	if _, err := scheduler.cron.AddFunc(cronExpression, scheduler.CheckShortenerHealth); err != nil {
		return err
	}

	scheduler.cron.Start()
	return nil
}

func (scheduler *HealthScheduler) CheckShortenerHealth() {
	log.Debug(msg.GetMessage("health.cron.start"))

	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()

	response := scheduler.useCase.CheckHealth(ctx)
	if response.Shortener.Status != model.StatusUp {
		log.Warn(msg.GetMessage("health.cron.down", response.Shortener.Status, response.Shortener.Details),
			zap.String("status", string(response.Shortener.Status)),
		)
		return
	}

	log.Info(msg.GetMessage("health.cron.up", response.Shortener.Status))
}

// Stop gracefully stops the scheduler
func (scheduler *HealthScheduler) Stop() {
	ctx := scheduler.cron.Stop()
	<-ctx.Done()
}
