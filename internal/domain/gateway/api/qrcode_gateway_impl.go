package api

import (
	"context"
	"errors"

	"go-shortener/pkg/http"
)

type qrCodeGatewayImpl struct {
	httpClient *http.Client
}

// NewQrCodeGateway creates a QrCodeGateway. qrUrl values passed to FetchImage are absolute, so the client has no base URL.
func NewQrCodeGateway(clientOptions http.ClientOptions) QrCodeGateway {
	clientOptions.DefaultContentType = "image/png"
	clientOptions.FollowRedirect = true

	return &qrCodeGatewayImpl{
		httpClient: http.NewHttpClient("", clientOptions),
	}
}

func (g *qrCodeGatewayImpl) FetchImage(ctx context.Context, qrUrl string) ([]byte, error) {
	var image []byte

	_, _, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(qrUrl).
		WithHeaders(map[string]string{"Accept": "image/png"}).
		WithSuccessResp(&image).
		Execute()

	if err != nil {
		return nil, err
	}
	if len(image) == 0 {
		return nil, errors.New("empty QR code image")
	}
	return image, nil
}
