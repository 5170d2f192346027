package api

import (
	"context"
	"errors"
	"fmt"

	"go-shortener/internal/domain/model"
	"go-shortener/pkg/http"

	"github.com/google/uuid"
)

const (
	shortUrlsPath = "/rest/v1/short-urls"
	healthPath    = "/rest/health"

	apiKeyHeader    = "X-Api-Key"
	requestIDHeader = "X-Request-Id"
)

// shortenerGatewayImpl implements the ShortenerGateway interface
type shortenerGatewayImpl struct {
	httpClient *http.Client
}

// NewShortenerGateway creates a ShortenerGateway for the configured host, authenticating every call with the API key
func NewShortenerGateway(config model.ShortenerConfig, clientOptions http.ClientOptions) ShortenerGateway {
	headers := make(map[string]string, len(clientOptions.DefaultHeaders)+1)
	for k, v := range clientOptions.DefaultHeaders {
		headers[k] = v
	}
	headers[apiKeyHeader] = config.ApiKey
	clientOptions.DefaultHeaders = headers
	clientOptions.DefaultContentType = "application/json"

	return &shortenerGatewayImpl{
		httpClient: http.NewHttpClient(config.BaseURL(), clientOptions),
	}
}

// CreateShortUrl creates (or finds) the short URL for request.LongUrl
func (g *shortenerGatewayImpl) CreateShortUrl(ctx context.Context, request model.ShortenRequest) (*model.ShortenResponse, error) {
	successResp, errResp, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.POST).
		WithPath(shortUrlsPath).
		WithHeaders(map[string]string{requestIDHeader: uuid.NewString()}).
		WithBody(request).
		WithSuccessResp(&model.ShortenResponse{}).
		WithErrorResp(&model.ProblemDetails{}).
		Execute()

	if err == nil {
		response := successResp.(*model.ShortenResponse)
		if response.ShortUrl == "" {
			return nil, errors.New("response has no shortUrl")
		}
		return response, nil
	}

	if errResp != nil {
		problem := errResp.(*model.ProblemDetails)
		if problem.Title != "" || problem.Detail != "" {
			return nil, fmt.Errorf("status %d: %s: %s", status, problem.Title, problem.Detail)
		}
	}

	return nil, err
}

// Health returns the shortener's self-reported status
func (g *shortenerGatewayImpl) Health(ctx context.Context) (*model.ShortenerHealthResponse, error) {
	successResp, _, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(healthPath).
		WithSuccessResp(&model.ShortenerHealthResponse{}).
		Execute()

	if err != nil {
		return nil, err
	}
	return successResp.(*model.ShortenerHealthResponse), nil
}
