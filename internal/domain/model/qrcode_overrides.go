package model

import "strings"

// QrCodeOverrides are per-request QR settings; zero fields keep the base options.
type QrCodeOverrides struct {
	BackgroundColor string `json:"bgColor,omitempty"`
	ForegroundColor string `json:"color,omitempty"`
	ErrorCorrection string `json:"errorCorrection,omitempty"`
	Margin          *int   `json:"margin,omitempty"`
	Size            *int   `json:"size,omitempty"`
	// Logo is "default" or "disable"; a LogoUrl wins over both.
	Logo    string `json:"logo,omitempty"`
	LogoUrl string `json:"logoUrl,omitempty"`
}

// Apply returns base with the overrides set. Values are not checked here; validate the result.
func (o QrCodeOverrides) Apply(base QrCodeOptions) QrCodeOptions {
	options := base

	if o.BackgroundColor != "" {
		options.BackgroundColor = o.BackgroundColor
	}
	if o.ForegroundColor != "" {
		options.ForegroundColor = o.ForegroundColor
	}
	if o.ErrorCorrection != "" {
		options.ErrorCorrectionLevel = ErrorCorrectionLevel(strings.ToUpper(strings.TrimSpace(o.ErrorCorrection)))
	}
	if o.Margin != nil {
		options.MarginPx = *o.Margin
	}
	if o.Size != nil {
		options.SizePx = *o.Size
	}

	switch {
	case o.LogoUrl != "":
		options.Logo = ExternalLogo(o.LogoUrl)
	case isLogoOff(o.Logo):
		options.Logo = DisabledLogo()
	case o.Logo != "":
		options.Logo = EmbeddedDefaultLogo()
	}

	return options
}

func isLogoOff(logo string) bool {
	switch strings.ToLower(strings.TrimSpace(logo)) {
	case "disable", "disabled", "false", "off", "none":
		return true
	default:
		return false
	}
}
