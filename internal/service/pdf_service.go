package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"pdf-summary-agent/internal/domain"
	apperrors "pdf-summary-agent/pkg/errors"

	"github.com/google/uuid"
)

// session is the state of the single interactive user.
type session struct {
	mu          sync.RWMutex
	status      domain.SessionStatus
	currentFile string
	latest      *domain.Summary
	updatedAt   time.Time
}

// SummaryService drives one session: upload, extraction, prompting, the model call and
// read-aloud. Interactions run one at a time; state reads never wait for them.
type SummaryService struct {
	store     domain.UploadStore
	extractor domain.TextExtractor
	model     domain.ModelClient
	speech    domain.SpeechAnnouncer
	maxChars  int
	logger    domain.Logger

	run     sync.Mutex
	session session
	now     func() time.Time
}

// NewSummaryService creates the session driver. maxChars <= 0 selects DefaultMaxPromptChars.
func NewSummaryService(
	store domain.UploadStore,
	extractor domain.TextExtractor,
	model domain.ModelClient,
	speech domain.SpeechAnnouncer,
	maxChars int,
	logger domain.Logger,
) *SummaryService {
	if maxChars <= 0 {
		maxChars = DefaultMaxPromptChars
	}
	s := &SummaryService{
		store:     store,
		extractor: extractor,
		model:     model,
		speech:    speech,
		maxChars:  maxChars,
		logger:    logger,
		now:       time.Now,
	}
	s.session.status = domain.SessionStatusIdle
	return s
}

// Summarize stores the upload, extracts its text and asks the model for a summary.
// Extraction failures and model failures are not errors: they come back as a Summary
// with Source extraction_error or Absent set.
func (s *SummaryService) Summarize(ctx context.Context, filename string, file io.Reader) (*domain.Summary, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return nil, apperrors.NewValidationError("only PDF files are allowed", fmt.Sprintf("%v: %s", domain.ErrInvalidFile, filename))
	}

	s.run.Lock()
	defer s.run.Unlock()

	started := s.now()
	s.setState(domain.SessionStatusProcessing, filename, nil)

	info, err := s.store.Save(filename, file)
	if err != nil {
		s.setState(domain.SessionStatusFailed, filename, nil)
		if errors.Is(err, domain.ErrFileTooLarge) {
			return nil, apperrors.NewValidationError("file too large", err.Error())
		}
		if errors.Is(err, domain.ErrEmptyUpload) {
			return nil, apperrors.NewValidationError("uploaded file is empty", filename)
		}
		return nil, apperrors.NewInternalError("failed to store upload", err)
	}

	summary := &domain.Summary{
		ID:       uuid.NewString(),
		FileName: filename,
		Model:    s.model.Model(),
	}
	status := domain.SessionStatusDone

	text := s.extractor.ExtractText(info.Path)
	if domain.IsExtractionError(text) {
		summary.Source = domain.SummarySourceExtraction
		summary.Text = text
		summary.Model = ""
		status = domain.SessionStatusFailed
	} else {
		truncated, cut := TruncateText(text, s.maxChars)
		summary.Source = domain.SummarySourceModel
		summary.CharsSent = len([]rune(truncated))
		summary.Truncated = cut

		result, err := s.model.Query(ctx, BuildPrompt(text, s.maxChars))
		if err != nil {
			s.logger.Error("Model query failed, summary is absent", err, "file", filename, "model", summary.Model)
			summary.Absent = true
			status = domain.SessionStatusFailed
		} else {
			summary.Text = result
		}
	}

	summary.CreatedAt = s.now()
	summary.Duration = summary.CreatedAt.Sub(started)

	if err := summary.Validate(s.maxChars); err != nil {
		s.setState(domain.SessionStatusFailed, filename, nil)
		return nil, apperrors.NewInternalError("produced an invalid summary", err)
	}

	s.setState(status, filename, summary)
	s.logger.Info("Summary ready",
		"file", filename,
		"source", summary.Source,
		"absent", summary.Absent,
		"chars_sent", summary.CharsSent,
		"truncated", summary.Truncated,
		"duration_ms", summary.Duration.Milliseconds(),
	)

	out := *summary
	return &out, nil
}

// Latest returns a copy of the last computed summary.
func (s *SummaryService) Latest() (*domain.Summary, bool) {
	s.session.mu.RLock()
	defer s.session.mu.RUnlock()

	if s.session.latest == nil {
		return nil, false
	}
	out := *s.session.latest
	return &out, true
}

// State returns a snapshot of the session.
func (s *SummaryService) State() domain.SessionState {
	s.session.mu.RLock()
	defer s.session.mu.RUnlock()

	return domain.SessionState{
		Status:      s.session.status,
		CurrentFile: s.session.currentFile,
		HasSummary:  s.session.latest != nil,
		UpdatedAt:   s.session.updatedAt,
	}
}

// ReadAloud speaks the last summary and returns once playback is over.
// An absent summary is spoken as an empty string.
func (s *SummaryService) ReadAloud(ctx context.Context) error {
	s.run.Lock()
	defer s.run.Unlock()

	latest, ok := s.Latest()
	if !ok {
		return domain.ErrNoSummary
	}

	if err := s.speech.Speak(ctx, latest.Text); err != nil {
		return fmt.Errorf("read aloud %s: %w", latest.FileName, err)
	}
	return nil
}

// setState records status and file; a nil summary keeps the previous one.
func (s *SummaryService) setState(status domain.SessionStatus, file string, summary *domain.Summary) {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	s.session.status = status
	s.session.currentFile = file
	if summary != nil {
		s.session.latest = summary
	}
	s.session.updatedAt = s.now()
}
