package handler

import (
	"errors"
	"net/http"
	"time"

	"pdf-summary-agent/internal/domain"
)

const (
	multipartMemory = 32 << 20
	// headers and boundaries around the file part
	multipartOverhead = 1 << 20
)

// SummaryHandler exposes the summarize and read-aloud interactions
type SummaryHandler struct {
	service     domain.SummaryService
	maxFileSize int64
	logger      domain.Logger
}

func NewSummaryHandler(service domain.SummaryService, maxFileSize int64, logger domain.Logger) *SummaryHandler {
	return &SummaryHandler{
		service:     service,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

type summaryResponse struct {
	ID         string               `json:"id"`
	Text       string               `json:"text"`
	HTML       string               `json:"html"`
	Absent     bool                 `json:"absent"`
	Source     domain.SummarySource `json:"source"`
	FileName   string               `json:"file_name"`
	Model      string               `json:"model,omitempty"`
	CharsSent  int                  `json:"chars_sent"`
	Truncated  bool                 `json:"truncated"`
	DurationMS int64                `json:"duration_ms"`
	CreatedAt  time.Time            `json:"created_at"`
}

func (h *SummaryHandler) newSummaryResponse(s *domain.Summary) summaryResponse {
	resp := summaryResponse{
		ID:         s.ID,
		Text:       s.Text,
		Absent:     s.Absent,
		Source:     s.Source,
		FileName:   s.FileName,
		Model:      s.Model,
		CharsSent:  s.CharsSent,
		Truncated:  s.Truncated,
		DurationMS: s.Duration.Milliseconds(),
		CreatedAt:  s.CreatedAt,
	}

	// Extraction errors are shown verbatim.
	if s.Source == domain.SummarySourceModel {
		rendered, err := renderMarkdown(s.Text)
		if err != nil {
			h.logger.Warn("Failed to render summary markdown", "summary_id", s.ID, "error", err)
		}
		resp.HTML = rendered
	}
	return resp
}

// UploadPDF accepts a multipart upload in field "file" and returns its summary
func (h *SummaryHandler) UploadPDF(w http.ResponseWriter, r *http.Request) {
	if h.maxFileSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+multipartOverhead)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusBadRequest, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	summary, err := h.service.Summarize(r.Context(), header.Filename, file)
	if err != nil {
		h.logger.Error("Summarize failed", err, "file", header.Filename)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.newSummaryResponse(summary))
}

// GetLatest returns the last computed summary
func (h *SummaryHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.service.Latest()
	if !ok {
		writeError(w, http.StatusNotFound, "No summary yet")
		return
	}
	writeJSON(w, http.StatusOK, h.newSummaryResponse(summary))
}

// ReadAloud speaks the last summary; the response is sent once playback is over
func (h *SummaryHandler) ReadAloud(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ReadAloud(r.Context()); err != nil {
		if errors.Is(err, domain.ErrNoSummary) {
			writeError(w, http.StatusNotFound, "No summary to read")
			return
		}
		h.logger.Error("Read aloud failed", err)
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "spoken"})
}

// GetSession returns the session state
func (h *SummaryHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.State())
}
