package domain

import (
	"context"
	"io"
)

// TextExtractor turns a PDF on disk into plain text.
// Failures are reported inside the returned string, prefixed with ExtractionErrorPrefix.
type TextExtractor interface {
	ExtractText(path string) string
}

// ModelClient sends a prompt to a text generation endpoint and returns the full response.
type ModelClient interface {
	Query(ctx context.Context, prompt string) (string, error)
	Model() string
}

// SpeechAnnouncer reads text aloud, blocking until playback finishes.
type SpeechAnnouncer interface {
	Speak(ctx context.Context, text string) error
}

// UploadStore persists uploaded documents for extraction.
type UploadStore interface {
	Save(filename string, file io.Reader) (*FileInfo, error)
}

// SummaryService is the session driver behind the web UI.
type SummaryService interface {
	Summarize(ctx context.Context, filename string, file io.Reader) (*Summary, error)
	Latest() (*Summary, bool)
	State() SessionState
	ReadAloud(ctx context.Context) error
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetMaxFileSize() int64
	GetTempUploadPath() string
	GetOllamaURL() string
	GetModelName() string
	GetMaxPromptChars() int
	GetStatusPolicy() string
	GetSpeechCommand() string
	GetSpeechArgs() []string
	GetAllowedOrigins() []string
}
