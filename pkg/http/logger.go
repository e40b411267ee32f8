package http

import (
	"weather-app/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after an error HTTP status or a transport failure (httpStatus 0)
	LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error)
}

// ZapHTTPLogger writes HTTP client events to the application zap logger.
type ZapHTTPLogger struct {
	// LogBodies includes response bodies at debug level
	LogBodies bool
}

func NewZapHTTPLogger(logBodies bool) *ZapHTTPLogger {
	return &ZapHTTPLogger{LogBodies: logBodies}
}

func (l *ZapHTTPLogger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Debug("http request",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("body_size", len(body)))
}

func (l *ZapHTTPLogger) LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency int64) {
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	}
	if l.LogBodies {
		fields = append(fields, zap.String("response_body", responseBody))
	}
	log.Info("http response", fields...)
}

func (l *ZapHTTPLogger) LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error) {
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Error(err),
	}
	if l.LogBodies && responseBody != "" {
		fields = append(fields, zap.String("response_body", responseBody))
	}
	log.Warn("http response error", fields...)
}
