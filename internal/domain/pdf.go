package domain

import "strings"

// ExtractionErrorPrefix marks extractor output that describes a failure instead of document text.
const ExtractionErrorPrefix = "Error extracting text from PDF: "

// IsExtractionError reports whether text is an extractor failure message.
func IsExtractionError(text string) bool {
	return strings.HasPrefix(text, ExtractionErrorPrefix)
}

// FileInfo represents information about an uploaded file
type FileInfo struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Path     string `json:"path"`
}
