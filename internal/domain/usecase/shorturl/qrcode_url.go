package shorturl

import (
	"net/url"
	"strconv"
	"strings"

	"go-shortener/internal/domain/model"
)

const DefaultQrCodeBaseURL = "https://l.kou-gen.net"

// BuildQrCodeUrl returns the rendering URL of shortCode on the default QR service.
func BuildQrCodeUrl(shortCode string, options model.QrCodeOptions) string {
	return BuildQrCodeUrlWithBase(DefaultQrCodeBaseURL, shortCode, options)
}

// BuildQrCodeUrlWithBase returns {baseURL}/{shortCode}/qr-code with the options encoded as
// bgColor, color, errorCorrection, margin, size and then logo=disable or logoUrl, in that order.
// An empty short code yields "".
func BuildQrCodeUrlWithBase(baseURL, shortCode string, options model.QrCodeOptions) string {
	if shortCode == "" {
		return ""
	}

	var query strings.Builder
	appendParam := func(key, value string) {
		if query.Len() > 0 {
			query.WriteByte('&')
		}
		query.WriteString(key)
		query.WriteByte('=')
		query.WriteString(url.QueryEscape(value))
	}

	appendParam("bgColor", options.BackgroundColor)
	appendParam("color", options.ForegroundColor)
	appendParam("errorCorrection", string(options.ErrorCorrectionLevel))
	appendParam("margin", strconv.Itoa(options.MarginPx))
	appendParam("size", strconv.Itoa(options.SizePx))

	switch options.Logo.Mode {
	case model.LogoDisabled:
		appendParam("logo", "disable")
	case model.LogoExternalUrl:
		appendParam("logoUrl", options.Logo.URL)
	}

	return strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(shortCode) + "/qr-code?" + query.String()
}
