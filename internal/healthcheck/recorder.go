package healthcheck

import (
	"github.com/rs/zerolog/log"
)

// Recorder receives the outcome of every outbound call to an upstream
// service. Recording is fire-and-forget: failures to record never affect the
// calling request.
type Recorder interface {
	Record(serviceName string, statusCode int, errorMessage string)
}

type logRecorder struct{}

func NewLogRecorder() Recorder {
	return &logRecorder{}
}

func (r *logRecorder) Record(serviceName string, statusCode int, errorMessage string) {
	event := log.Info()
	if errorMessage != "" {
		event = log.Warn().Str("error", errorMessage)
	}
	event.
		Str("upstream", serviceName).
		Int("status_code", statusCode).
		Msg("upstream call recorded")
}

type noopRecorder struct{}

// NewNoopRecorder is used by tests that do not care about health reporting.
func NewNoopRecorder() Recorder {
	return &noopRecorder{}
}

func (r *noopRecorder) Record(string, int, string) {}
