package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "angple-forum"

var zlog = zerolog.Nop()

// InitStructured sets up the process logger for env. Local environments get
// human-readable console output at debug level, everything else JSON at info.
func InitStructured(env string) {
	switch env {
	case "", "local", "dev", "development":
		configure(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}, zerolog.DebugLevel)
	default:
		configure(os.Stdout, zerolog.InfoLevel)
	}
}

// SetOutput sends JSON log lines at debug level to w
func SetOutput(w io.Writer) {
	configure(w, zerolog.DebugLevel)
}

func configure(w io.Writer, level zerolog.Level) {
	zerolog.TimeFieldFormat = time.RFC3339
	zlog = zerolog.New(w).Level(level).With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}

// GetLogger returns the process logger
func GetLogger() *zerolog.Logger {
	return &zlog
}

// WithRequestID derives a logger that stamps every line with requestID
func WithRequestID(requestID string) zerolog.Logger {
	return zlog.With().Str("request_id", requestID).Logger()
}
