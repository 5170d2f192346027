package api

import (
	"context"

	"go-shortener/internal/domain/model"
)

// ShortenerGateway defines the calls made to the URL-shortening REST API
type ShortenerGateway interface {
	// CreateShortUrl posts the request to /rest/v1/short-urls.
	// Any transport failure, non-2xx status or undecodable body is returned as an error.
	CreateShortUrl(ctx context.Context, request model.ShortenRequest) (*model.ShortenResponse, error)

	// Health queries /rest/health
	Health(ctx context.Context) (*model.ShortenerHealthResponse, error)
}
