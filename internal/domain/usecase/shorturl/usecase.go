package shorturl

import (
	"context"

	"go-shortener/internal/domain/model"
)

// Config is the settings the use case is built with. It is copied at construction.
type Config struct {
	Shortener     model.ShortenerConfig
	QrCodeBaseURL string
	QrCode        model.QrCodePreferences
}

type UseCase interface {
	// CreateShortUrl validates configuration and input, then creates the short URL with a single request.
	CreateShortUrl(ctx context.Context, dto model.CreateShortUrlDTO) (*model.ShortUrlResult, error)
	// DefaultQrCodeOptions returns the configured QR preferences resolved over the built-in defaults.
	DefaultQrCodeOptions() model.QrCodeOptions
	// BuildQrCodeUrl validates options and returns the QR rendering URL of shortCode.
	BuildQrCodeUrl(shortCode string, options model.QrCodeOptions) (string, error)
	FetchQrImage(ctx context.Context, qrUrl string) ([]byte, error)
	// SaveQrImage stores the image for clipboard collaborators and returns its path.
	SaveQrImage(data []byte) (string, error)
}
