package http

import (
	"strings"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called when the transport fails or an error HTTP status is received
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

// ZapLogger writes HTTP traffic to a zap logger, masking credential headers.
type ZapLogger struct {
	logger        *zap.Logger
	maskedHeaders map[string]struct{}
}

// NewZapLogger creates an HTTPLogger backed by the given zap logger.
// Values of the listed headers are replaced by "***" in every entry.
func NewZapLogger(logger *zap.Logger, maskedHeaders ...string) *ZapLogger {
	masked := make(map[string]struct{}, len(maskedHeaders)+1)
	masked["authorization"] = struct{}{}
	for _, h := range maskedHeaders {
		masked[strings.ToLower(h)] = struct{}{}
	}
	return &ZapLogger{logger: logger, maskedHeaders: masked}
}

func (l *ZapLogger) LogRequest(method, url string, headers map[string]string, body string) {
	l.logger.Debug("http request",
		zap.String("method", method),
		zap.String("url", url),
		zap.Any("headers", l.mask(headers)),
		zap.String("body", body),
	)
}

func (l *ZapLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	l.logger.Info("http response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", responseBody),
	)
}

func (l *ZapLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	l.logger.Error("http request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Any("headers", l.mask(headers)),
		zap.String("body", body),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", responseBody),
		zap.Error(err),
	)
}

func (l *ZapLogger) mask(headers map[string]string) map[string]string {
	masked := make(map[string]string, len(headers))
	for k, v := range headers {
		if _, ok := l.maskedHeaders[strings.ToLower(k)]; ok {
			v = "***"
		}
		masked[k] = v
	}
	return masked
}
