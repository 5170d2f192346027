package controller_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "go-shortener/configs"
	"go-shortener/internal/application/controller"
	"go-shortener/internal/application/publisher"
	"go-shortener/internal/domain/model"
	"go-shortener/internal/domain/usecase/shorturl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShortUrlUseCase struct {
	mock.Mock
}

func (m *MockShortUrlUseCase) CreateShortUrl(ctx context.Context, dto model.CreateShortUrlDTO) (*model.ShortUrlResult, error) {
	args := m.Called(ctx, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShortUrlResult), args.Error(1)
}

func (m *MockShortUrlUseCase) DefaultQrCodeOptions() model.QrCodeOptions {
	return model.DefaultQrCodeOptions()
}

func (m *MockShortUrlUseCase) BuildQrCodeUrl(shortCode string, options model.QrCodeOptions) (string, error) {
	args := m.Called(shortCode, options)
	return args.String(0), args.Error(1)
}

func (m *MockShortUrlUseCase) FetchQrImage(ctx context.Context, qrUrl string) ([]byte, error) {
	args := m.Called(ctx, qrUrl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockShortUrlUseCase) SaveQrImage(data []byte) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendMessage(ctx context.Context, queueName string, body any) error {
	return m.Called(ctx, queueName, body).Error(0)
}

const defaultQrCodeUrl = "https://l.kou-gen.net/xy9/qr-code?bgColor=%23ffffff&color=%23000000&errorCorrection=L&margin=25&size=300"

func newShortUrlServer(useCase shorturl.UseCase, p *publisher.ShortUrlPublisher) *echo.Echo {
	e := echo.New()
	controller.NewShortUrlController(e.Group("/go-shortener"), useCase, p).InitShortUrlRoutes()
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreate_Returns201WithQrCodeUrl(t *testing.T) {
	useCase := new(MockShortUrlUseCase)
	useCase.On("CreateShortUrl", mock.Anything, model.CreateShortUrlDTO{LongUrl: "https://example.com/a", Slug: "xy9"}).
		Return(&model.ShortUrlResult{ShortUrl: "https://d.co/xy9", ShortCode: "xy9"}, nil)
	useCase.On("BuildQrCodeUrl", "xy9", model.DefaultQrCodeOptions()).Return(defaultQrCodeUrl, nil)

	sender := new(MockSender)
	sender.On("SendMessage", mock.Anything, "events", mock.Anything).Return(nil)

	rec := serve(newShortUrlServer(useCase, publisher.NewShortUrlPublisher(sender, "events")),
		http.MethodPost, "/go-shortener/short-url", `{"longUrl":"https://example.com/a","slug":"xy9"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response model.CreateShortUrlResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, model.CreateShortUrlResponse{ShortUrl: "https://d.co/xy9", ShortCode: "xy9", QrCodeUrl: defaultQrCodeUrl}, response)
	useCase.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestCreate_WithoutQrCode(t *testing.T) {
	useCase := new(MockShortUrlUseCase)
	useCase.On("CreateShortUrl", mock.Anything, mock.Anything).
		Return(&model.ShortUrlResult{ShortUrl: "https://d.co/xy9", ShortCode: "xy9"}, nil)

	rec := serve(newShortUrlServer(useCase, nil),
		http.MethodPost, "/go-shortener/short-url", `{"longUrl":"https://example.com/a","generateQrCode":false}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "qrCodeUrl")
	useCase.AssertNotCalled(t, "BuildQrCodeUrl", mock.Anything, mock.Anything)
}

func TestCreate_InvalidQrOptions_StillCreatesShortUrl(t *testing.T) {
	invalid := model.DefaultQrCodeOptions()
	invalid.ErrorCorrectionLevel = "X"

	useCase := new(MockShortUrlUseCase)
	useCase.On("CreateShortUrl", mock.Anything, model.CreateShortUrlDTO{LongUrl: "https://example.com/a"}).
		Return(&model.ShortUrlResult{ShortUrl: "https://d.co/xy9", ShortCode: "xy9"}, nil)
	useCase.On("BuildQrCodeUrl", "xy9", invalid).
		Return("", fmt.Errorf("%w: Field 'errorCorrection' must be one of L M Q H", shorturl.ErrInvalidInput))

	sender := new(MockSender)
	sender.On("SendMessage", mock.Anything, "events", mock.Anything).Return(nil)

	rec := serve(newShortUrlServer(useCase, publisher.NewShortUrlPublisher(sender, "events")),
		http.MethodPost, "/go-shortener/short-url", `{"longUrl":"https://example.com/a","qrCode":{"errorCorrection":"X"}}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response model.CreateShortUrlResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, model.CreateShortUrlResponse{ShortUrl: "https://d.co/xy9", ShortCode: "xy9"}, response)
	useCase.AssertNumberOfCalls(t, "CreateShortUrl", 1)
	sender.AssertExpectations(t)
}

func TestCreate_PublishFailureKeepsCreation(t *testing.T) {
	useCase := new(MockShortUrlUseCase)
	useCase.On("CreateShortUrl", mock.Anything, mock.Anything).
		Return(&model.ShortUrlResult{ShortUrl: "https://d.co/xy9", ShortCode: "xy9"}, nil)

	sender := new(MockSender)
	sender.On("SendMessage", mock.Anything, "events", mock.Anything).Return(errors.New("queue unavailable"))

	rec := serve(newShortUrlServer(useCase, publisher.NewShortUrlPublisher(sender, "events")),
		http.MethodPost, "/go-shortener/short-url", `{"longUrl":"https://example.com/a","generateQrCode":false}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	sender.AssertExpectations(t)
}

func TestCreate_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "missing configuration", err: shorturl.ErrMissingConfiguration, wantStatus: http.StatusServiceUnavailable, wantError: "Invalid configuration"},
		{name: "invalid input", err: fmt.Errorf("%w: Field 'longUrl' is required", shorturl.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantError: "Invalid input"},
		{name: "request failure", err: fmt.Errorf("%w: http error: status 500", shorturl.ErrRequestFailure), wantStatus: http.StatusBadGateway, wantError: "Failed to create short URL"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			useCase := new(MockShortUrlUseCase)
			useCase.On("CreateShortUrl", mock.Anything, mock.Anything).Return(nil, tc.err)

			rec := serve(newShortUrlServer(useCase, nil), http.MethodPost, "/go-shortener/short-url", `{"longUrl":"https://example.com/a"}`)

			assert.Equal(t, tc.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.wantError, body["error"])
		})
	}
}

func TestCreate_InvalidBody(t *testing.T) {
	useCase := new(MockShortUrlUseCase)

	rec := serve(newShortUrlServer(useCase, nil), http.MethodPost, "/go-shortener/short-url", `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	useCase.AssertNotCalled(t, "CreateShortUrl", mock.Anything, mock.Anything)
}

func TestQrCode_ReturnsImage(t *testing.T) {
	options := model.DefaultQrCodeOptions()
	options.SizePx = 512
	options.Logo = model.DisabledLogo()

	useCase := new(MockShortUrlUseCase)
	useCase.On("BuildQrCodeUrl", "xy9", options).Return("https://l.kou-gen.net/xy9/qr-code?size=512&logo=disable", nil)
	useCase.On("FetchQrImage", mock.Anything, "https://l.kou-gen.net/xy9/qr-code?size=512&logo=disable").Return([]byte("png"), nil)

	rec := serve(newShortUrlServer(useCase, nil), http.MethodGet, "/go-shortener/short-url/xy9/qr-code?size=512&logo=disable", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png", rec.Body.String())
	useCase.AssertExpectations(t)
}

func TestQrCode_FetchFailure(t *testing.T) {
	useCase := new(MockShortUrlUseCase)
	useCase.On("BuildQrCodeUrl", "xy9", mock.Anything).Return(defaultQrCodeUrl, nil)
	useCase.On("FetchQrImage", mock.Anything, defaultQrCodeUrl).Return(nil, fmt.Errorf("%w: http error: status 404", shorturl.ErrImageFetchFailure))

	rec := serve(newShortUrlServer(useCase, nil), http.MethodGet, "/go-shortener/short-url/xy9/qr-code", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load QR code image")
}

func TestQrCode_InvalidOptions(t *testing.T) {
	useCase := new(MockShortUrlUseCase)
	useCase.On("BuildQrCodeUrl", "xy9", mock.Anything).Return("", fmt.Errorf("%w: Field 'size' is out of range", shorturl.ErrInvalidInput))

	rec := serve(newShortUrlServer(useCase, nil), http.MethodGet, "/go-shortener/short-url/xy9/qr-code?size=abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	useCase.AssertNotCalled(t, "FetchQrImage", mock.Anything, mock.Anything)
}
