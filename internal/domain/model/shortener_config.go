package model

import (
	"fmt"
	"strings"
)

const DefaultProtocol = "https"

// ShortenerConfig locates and authenticates the shortener API.
type ShortenerConfig struct {
	Protocol string
	Host     string
	ApiKey   string
}

// IsComplete reports whether host and API key are both set.
func (c ShortenerConfig) IsComplete() bool {
	return strings.TrimSpace(c.Host) != "" && strings.TrimSpace(c.ApiKey) != ""
}

// BaseURL returns scheme and host, e.g. https://s.example.com.
func (c ShortenerConfig) BaseURL() string {
	protocol := c.Protocol
	if protocol == "" {
		protocol = DefaultProtocol
	}
	return fmt.Sprintf("%s://%s", protocol, strings.TrimRight(c.Host, "/"))
}
