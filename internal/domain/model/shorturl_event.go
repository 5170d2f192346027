package model

import "time"

// ShortUrlCreatedEvent is published after a short URL has been created.
type ShortUrlCreatedEvent struct {
	ID        string    `json:"id"`
	LongUrl   string    `json:"longUrl"`
	ShortUrl  string    `json:"shortUrl"`
	ShortCode string    `json:"shortCode"`
	QrCodeUrl string    `json:"qrCodeUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
