// Package bootstrap builds the short URL library from application properties.
package bootstrap

import (
	"go-shortener/internal/domain/gateway/api"
	"go-shortener/internal/domain/gateway/file"
	"go-shortener/internal/domain/model"
	"go-shortener/internal/domain/usecase/health"
	"go-shortener/internal/domain/usecase/shorturl"
	"go-shortener/pkg/http"
	"go-shortener/pkg/log"
	"go-shortener/pkg/resource"
)

// ShortUrlConfig reads the app.shortener and app.qr-code properties.
func ShortUrlConfig() shorturl.Config {
	return shorturl.Config{
		Shortener: model.ShortenerConfig{
			Protocol: resource.GetStringOrDefault("app.shortener.protocol", model.DefaultProtocol),
			Host:     resource.GetString("app.shortener.host"),
			ApiKey:   resource.GetString("app.shortener.api-key"),
		},
		QrCodeBaseURL: resource.GetStringOrDefault("app.qr-code.base-url", shorturl.DefaultQrCodeBaseURL),
		QrCode: model.QrCodePreferences{
			BackgroundColor:      resource.GetString("app.qr-code.bg-color"),
			ForegroundColor:      resource.GetString("app.qr-code.color"),
			ErrorCorrectionLevel: resource.GetString("app.qr-code.error-correction-level"),
			Margin:               resource.GetString("app.qr-code.margin"),
			Size:                 resource.GetString("app.qr-code.size"),
		},
	}
}

// ClientOptions returns the outbound HTTP options shared by both gateways, logging through zap.
func ClientOptions() http.ClientOptions {
	return http.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.shortener.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.shortener.read-timeout"),
		Logger:            http.NewZapLogger(log.Zap(), "X-Api-Key"),
	}
}

// ImageWriter writes QR images to app.qr-code.image-dir, the temp dir by default.
func ImageWriter() file.ImageWriter {
	return file.NewTempImageWriter(
		resource.GetString("app.qr-code.image-dir"),
		resource.GetStringOrDefault("app.qr-code.image-name", file.DefaultImageName),
	)
}

// NewShortUrlUseCase wires the gateways for config.
func NewShortUrlUseCase(config shorturl.Config) shorturl.UseCase {
	options := ClientOptions()
	return shorturl.NewShortUrlUseCase(
		config,
		api.NewShortenerGateway(config.Shortener, options),
		api.NewQrCodeGateway(options),
		ImageWriter(),
	)
}

// NewHealthUseCase wires the health check against the same shortener.
func NewHealthUseCase(config shorturl.Config) health.UseCase {
	return health.NewHealthUseCase(config.Shortener, api.NewShortenerGateway(config.Shortener, ClientOptions()))
}
