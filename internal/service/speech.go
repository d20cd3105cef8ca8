package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"pdf-summary-agent/internal/domain"
	apperrors "pdf-summary-agent/pkg/errors"
	"pdf-summary-agent/pkg/executor"
)

// SpeechAnnouncer reads text aloud through a local TTS binary such as espeak or say.
// The text goes to the engine on stdin so leading dashes are never parsed as flags.
type SpeechAnnouncer struct {
	command  string
	args     []string
	executor executor.Executor
	logger   domain.Logger
}

func NewSpeechAnnouncer(command string, args []string, exec executor.Executor, logger domain.Logger) *SpeechAnnouncer {
	return &SpeechAnnouncer{
		command:  command,
		args:     append([]string(nil), args...),
		executor: exec,
		logger:   logger,
	}
}

// Speak blocks until the engine has finished playing text.
func (s *SpeechAnnouncer) Speak(ctx context.Context, text string) error {
	s.logger.Info("Reading summary aloud", "command", s.command, "chars", utf8.RuneCountInString(text))

	if _, err := s.executor.ExecuteWithInput(ctx, strings.NewReader(text), s.command, s.args...); err != nil {
		return apperrors.NewSpeechError("speech playback failed", err)
	}
	return nil
}
