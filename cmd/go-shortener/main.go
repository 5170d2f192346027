package main

import (
	"context"

	"go-shortener/configs"
	"go-shortener/internal/application/bootstrap"
	"go-shortener/internal/application/controller"
	"go-shortener/internal/application/middleware"
	"go-shortener/internal/application/publisher"
	"go-shortener/internal/application/schedule"
	"go-shortener/internal/domain/gateway/queue"
	"go-shortener/internal/infra/aws"
	"go-shortener/pkg/log"
	"go-shortener/pkg/msg"
	"go-shortener/pkg/resource"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start", configs.Env.ApplicationName))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	api := e.Group(configs.Env.ContextPath)

	// Init UseCase
	config := bootstrap.ShortUrlConfig()
	shortUrlUseCase := bootstrap.NewShortUrlUseCase(config)
	healthUseCase := bootstrap.NewHealthUseCase(config)

	// Init Publisher
	shortUrlPublisher := publisher.NewShortUrlPublisher(newEventSender(), resource.GetString("app.events.queue-name"))

	// Init Controller
	healthController := controller.NewHealthController(api, healthUseCase)
	shortUrlController := controller.NewShortUrlController(api, shortUrlUseCase, shortUrlPublisher)

	// Init Routes
	healthController.InitHealthRoutes()
	shortUrlController.InitShortUrlRoutes()

	// Init Schedule
	healthScheduler := schedule.NewHealthScheduler(healthUseCase)
	if err := healthScheduler.InitHealthScheduleTasks(resource.GetString("app.health.cron")); err != nil {
		log.Fatal("invalid health cron expression", zap.Error(err))
	}
	defer healthScheduler.Stop()

	// Start Routes
	port := resource.GetString("app.server.port")
	log.Info(msg.GetMessage("app.started", configs.Env.ApplicationName, port))
	e.Logger.Fatal(e.Start(":" + port))
}

// newEventSender returns an SQS sender when app.events.enabled, nil otherwise
func newEventSender() queue.Sender {
	if !resource.GetBool("app.events.enabled") {
		return nil
	}

	awsConfig, err := aws.LoadConfig(context.Background())
	if err != nil {
		log.Fatal("failed to load AWS configuration", zap.Error(err))
	}
	return aws.NewSQSSenderAdapter(aws.NewSqsClient(awsConfig))
}
