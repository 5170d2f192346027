package shorturl_test

import (
	"context"

	"go-shortener/internal/domain/model"

	"github.com/stretchr/testify/mock"
)

type MockShortenerGateway struct {
	mock.Mock
}

func (m *MockShortenerGateway) CreateShortUrl(ctx context.Context, request model.ShortenRequest) (*model.ShortenResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShortenResponse), args.Error(1)
}

func (m *MockShortenerGateway) Health(ctx context.Context) (*model.ShortenerHealthResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShortenerHealthResponse), args.Error(1)
}

type MockQrCodeGateway struct {
	mock.Mock
}

func (m *MockQrCodeGateway) FetchImage(ctx context.Context, qrUrl string) ([]byte, error) {
	args := m.Called(ctx, qrUrl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockImageWriter struct {
	mock.Mock
}

func (m *MockImageWriter) WriteImage(data []byte) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}
