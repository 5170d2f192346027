package shorturl

import (
	"context"
	"errors"
	"fmt"

	"go-shortener/internal/domain/gateway/api"
	"go-shortener/internal/domain/gateway/file"
	"go-shortener/internal/domain/model"
	"go-shortener/pkg/log"

	"go.uber.org/zap"
)

type shortUrlUseCase struct {
	config        Config
	gateway       api.ShortenerGateway
	qrCodeGateway api.QrCodeGateway
	imageWriter   file.ImageWriter
}

func NewShortUrlUseCase(config Config, gateway api.ShortenerGateway, qrCodeGateway api.QrCodeGateway, imageWriter file.ImageWriter) UseCase {
	if config.QrCodeBaseURL == "" {
		config.QrCodeBaseURL = DefaultQrCodeBaseURL
	}
	return &shortUrlUseCase{
		config:        config,
		gateway:       gateway,
		qrCodeGateway: qrCodeGateway,
		imageWriter:   imageWriter,
	}
}

func (uc *shortUrlUseCase) CreateShortUrl(ctx context.Context, dto model.CreateShortUrlDTO) (*model.ShortUrlResult, error) {
	if !uc.config.Shortener.IsComplete() {
		return nil, ErrMissingConfiguration
	}
	if err := model.ValidateStruct(dto); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	response, err := uc.gateway.CreateShortUrl(ctx, model.NewShortenRequest(dto))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailure, err)
	}
	if response == nil || response.ShortUrl == "" {
		return nil, fmt.Errorf("%w: response has no shortUrl", ErrRequestFailure)
	}

	result := &model.ShortUrlResult{
		ShortUrl:  response.ShortUrl,
		ShortCode: ShortCode(response.ShortUrl),
	}

	log.Info("short url created",
		zap.String("long_url", dto.LongUrl),
		zap.String("short_url", result.ShortUrl),
		zap.String("short_code", result.ShortCode),
	)

	return result, nil
}

func (uc *shortUrlUseCase) DefaultQrCodeOptions() model.QrCodeOptions {
	return uc.config.QrCode.Options()
}

func (uc *shortUrlUseCase) BuildQrCodeUrl(shortCode string, options model.QrCodeOptions) (string, error) {
	if shortCode == "" {
		return "", fmt.Errorf("%w: short URL has no short code", ErrInvalidInput)
	}
	if err := model.ValidateStruct(options); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return BuildQrCodeUrlWithBase(uc.config.QrCodeBaseURL, shortCode, options), nil
}

func (uc *shortUrlUseCase) FetchQrImage(ctx context.Context, qrUrl string) ([]byte, error) {
	if qrUrl == "" {
		return nil, fmt.Errorf("%w: empty QR code URL", ErrImageFetchFailure)
	}

	image, err := uc.qrCodeGateway.FetchImage(ctx, qrUrl)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageFetchFailure, err)
	}
	return image, nil
}

func (uc *shortUrlUseCase) SaveQrImage(data []byte) (string, error) {
	if uc.imageWriter == nil {
		return "", fmt.Errorf("%w: %w", ErrLocalIoFailure, errors.New("no image writer configured"))
	}

	path, err := uc.imageWriter.WriteImage(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrLocalIoFailure, err)
	}
	return path, nil
}
