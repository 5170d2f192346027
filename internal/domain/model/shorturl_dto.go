package model

// CreateShortUrlDTO is the user input for a short URL creation.
type CreateShortUrlDTO struct {
	LongUrl string `json:"longUrl" validate:"required"`
	Slug    string `json:"slug,omitempty"`
}

// ShortenRequest is the body sent to the shortener's short-urls endpoint.
type ShortenRequest struct {
	LongUrl      string `json:"longUrl"`
	ValidateUrl  bool   `json:"validateUrl"`
	FindIfExists bool   `json:"findIfExists"`
	CustomSlug   string `json:"customSlug,omitempty"`
}

// NewShortenRequest maps user input to the request body. An empty slug is left to the server.
func NewShortenRequest(dto CreateShortUrlDTO) ShortenRequest {
	return ShortenRequest{
		LongUrl:      dto.LongUrl,
		ValidateUrl:  false,
		FindIfExists: true,
		CustomSlug:   dto.Slug,
	}
}

// ShortenResponse holds the only field consumed from the shortener's reply.
type ShortenResponse struct {
	ShortUrl string `json:"shortUrl"`
}

// ShortUrlResult is the outcome of a successful creation.
type ShortUrlResult struct {
	ShortUrl  string `json:"shortUrl"`
	ShortCode string `json:"shortCode"`
}

// ProblemDetails is the RFC 7807 body returned by the shortener on errors.
type ProblemDetails struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

// ShortenerHealthResponse is the body of the shortener's health endpoint.
type ShortenerHealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// CreateShortUrlRequest is the body accepted by the local API.
type CreateShortUrlRequest struct {
	LongUrl        string          `json:"longUrl"`
	Slug           string          `json:"slug,omitempty"`
	GenerateQrCode *bool           `json:"generateQrCode,omitempty"`
	QrCode         QrCodeOverrides `json:"qrCode"`
}

// CreateShortUrlResponse is returned by the local API after a creation.
type CreateShortUrlResponse struct {
	ShortUrl  string `json:"shortUrl"`
	ShortCode string `json:"shortCode"`
	QrCodeUrl string `json:"qrCodeUrl,omitempty"`
}
