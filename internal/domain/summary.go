package domain

import "time"

// SummarySource tells where the summary text came from.
type SummarySource string

const (
	SummarySourceModel      SummarySource = "model"
	SummarySourceExtraction SummarySource = "extraction_error"
)

// SessionStatus is the coarse state of the single user session.
type SessionStatus string

const (
	SessionStatusIdle       SessionStatus = "idle"
	SessionStatusProcessing SessionStatus = "processing"
	SessionStatusDone       SessionStatus = "done"
	SessionStatusFailed     SessionStatus = "failed"
)

// Summary is the result of one summarization request.
type Summary struct {
	ID       string        `json:"id"`
	Text     string        `json:"text"`
	Absent   bool          `json:"absent"` // model returned nothing usable
	Source   SummarySource `json:"source"`
	FileName string        `json:"file_name"`
	Model    string        `json:"model,omitempty"`

	// CharsSent is the number of document characters embedded in the prompt.
	CharsSent int  `json:"chars_sent"`
	Truncated bool `json:"truncated"`

	Duration  time.Duration `json:"-"`
	CreatedAt time.Time     `json:"created_at"`
}

// SessionState is a snapshot of the session for display.
type SessionState struct {
	Status      SessionStatus `json:"status"`
	CurrentFile string        `json:"current_file,omitempty"`
	HasSummary  bool          `json:"has_summary"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Validate checks the invariants a stored summary must hold.
func (s *Summary) Validate(maxChars int) error {
	if s.ID == "" {
		return &ValidationError{Field: "id", Message: "summary ID is required"}
	}
	switch s.Source {
	case SummarySourceModel, SummarySourceExtraction:
	default:
		return &ValidationError{Field: "source", Message: "unknown summary source"}
	}
	if s.Absent && s.Text != "" {
		return &ValidationError{Field: "text", Message: "absent summary must not carry text"}
	}
	if s.Source == SummarySourceExtraction && !IsExtractionError(s.Text) {
		return &ValidationError{Field: "text", Message: "extraction summary must carry the error marker"}
	}
	if s.CharsSent < 0 {
		return &ValidationError{Field: "chars_sent", Message: "chars sent cannot be negative"}
	}
	if maxChars > 0 && s.CharsSent > maxChars {
		return &ValidationError{Field: "chars_sent", Message: "chars sent exceeds truncation budget"}
	}
	return nil
}
