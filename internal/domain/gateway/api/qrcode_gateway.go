package api

import "context"

// QrCodeGateway downloads rendered QR code images
type QrCodeGateway interface {
	// FetchImage performs a GET on qrUrl and returns the PNG body
	FetchImage(ctx context.Context, qrUrl string) ([]byte, error)
}
