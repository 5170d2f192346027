package model

import (
	"strings"

	"go-shortener/pkg/util/numberutils"
)

// ErrorCorrectionLevel is the QR redundancy tier.
type ErrorCorrectionLevel string

const (
	ErrorCorrectionLow      ErrorCorrectionLevel = "L"
	ErrorCorrectionMedium   ErrorCorrectionLevel = "M"
	ErrorCorrectionQuartile ErrorCorrectionLevel = "Q"
	ErrorCorrectionHigh     ErrorCorrectionLevel = "H"
)

// ParseErrorCorrectionLevel accepts L, M, Q or H in any case.
func ParseErrorCorrectionLevel(s string) (ErrorCorrectionLevel, bool) {
	switch level := ErrorCorrectionLevel(strings.ToUpper(strings.TrimSpace(s))); level {
	case ErrorCorrectionLow, ErrorCorrectionMedium, ErrorCorrectionQuartile, ErrorCorrectionHigh:
		return level, true
	default:
		return "", false
	}
}

// LogoMode selects how the QR renderer handles the center logo.
type LogoMode int

const (
	// LogoEmbeddedDefault lets the renderer use its own logo.
	LogoEmbeddedDefault LogoMode = iota
	// LogoDisabled renders without a logo.
	LogoDisabled
	// LogoExternalUrl renders the image found at LogoSpec.URL.
	LogoExternalUrl
)

type LogoSpec struct {
	Mode LogoMode `json:"mode" validate:"gte=0,lte=2"`
	URL  string   `json:"url,omitempty" validate:"omitempty,url"`
}

func EmbeddedDefaultLogo() LogoSpec { return LogoSpec{Mode: LogoEmbeddedDefault} }

func DisabledLogo() LogoSpec { return LogoSpec{Mode: LogoDisabled} }

func ExternalLogo(url string) LogoSpec { return LogoSpec{Mode: LogoExternalUrl, URL: url} }

const (
	DefaultQrBackgroundColor      = "#ffffff"
	DefaultQrForegroundColor      = "#000000"
	DefaultQrErrorCorrectionLevel = ErrorCorrectionLow
	DefaultQrMarginPx             = 25
	DefaultQrSizePx               = 300
)

// QrCodeOptions controls the rendering of a QR code image.
type QrCodeOptions struct {
	BackgroundColor      string               `json:"bgColor" validate:"required,hexcolor"`
	ForegroundColor      string               `json:"color" validate:"required,hexcolor"`
	ErrorCorrectionLevel ErrorCorrectionLevel `json:"errorCorrection" validate:"oneof=L M Q H"`
	MarginPx             int                  `json:"margin" validate:"gte=0"`
	SizePx               int                  `json:"size" validate:"gt=0"`
	Logo                 LogoSpec             `json:"logo"`
}

// DefaultQrCodeOptions returns white background, black modules, level L, 25px margin, 300px and the embedded logo.
func DefaultQrCodeOptions() QrCodeOptions {
	return QrCodeOptions{
		BackgroundColor:      DefaultQrBackgroundColor,
		ForegroundColor:      DefaultQrForegroundColor,
		ErrorCorrectionLevel: DefaultQrErrorCorrectionLevel,
		MarginPx:             DefaultQrMarginPx,
		SizePx:               DefaultQrSizePx,
		Logo:                 EmbeddedDefaultLogo(),
	}
}

// QrCodePreferences are the raw, user-editable QR defaults. Empty or unparsable values fall back to the built-in defaults.
type QrCodePreferences struct {
	BackgroundColor      string
	ForegroundColor      string
	ErrorCorrectionLevel string
	Margin               string
	Size                 string
}

// Options resolves the preferences on top of DefaultQrCodeOptions.
func (p QrCodePreferences) Options() QrCodeOptions {
	options := DefaultQrCodeOptions()

	if color := strings.TrimSpace(p.BackgroundColor); color != "" {
		options.BackgroundColor = color
	}
	if color := strings.TrimSpace(p.ForegroundColor); color != "" {
		options.ForegroundColor = color
	}
	if level, ok := ParseErrorCorrectionLevel(p.ErrorCorrectionLevel); ok {
		options.ErrorCorrectionLevel = level
	}
	if margin := numberutils.ToIntWithDefault(strings.TrimSpace(p.Margin), DefaultQrMarginPx); margin >= 0 {
		options.MarginPx = margin
	}
	if size := numberutils.ToIntWithDefault(strings.TrimSpace(p.Size), DefaultQrSizePx); size > 0 {
		options.SizePx = size
	}

	return options
}
