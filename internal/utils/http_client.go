package utils

import (
	"github.com/MKhiriev/go-appconfig-reader/internal/logger"
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(log)
//	resp, err := client.R().Get("http://localhost:2772/applications/demo/environments/prod/configurations/web")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client whose internal
// warnings and debug output go to log instead of resty's stderr logger.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	client := resty.New()
	if log != nil {
		client.SetLogger(&restyLogger{log: log})
	}

	return &HTTPClient{Client: client}
}

// restyLogger adapts *logger.Logger to the resty.Logger interface.
type restyLogger struct {
	log *logger.Logger
}

func (r *restyLogger) Errorf(format string, v ...interface{}) {
	r.log.Error().Msgf(format, v...)
}

func (r *restyLogger) Warnf(format string, v ...interface{}) {
	r.log.Warn().Msgf(format, v...)
}

func (r *restyLogger) Debugf(format string, v ...interface{}) {
	r.log.Debug().Msgf(format, v...)
}
