package service

import (
	"fmt"
	"strings"

	"pdf-summary-agent/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// PDFExtractor extracts plain text from PDF files with MuPDF.
type PDFExtractor struct {
	logger domain.Logger
}

// NewPDFExtractor creates a new PDF extractor
func NewPDFExtractor(logger domain.Logger) *PDFExtractor {
	return &PDFExtractor{
		logger: logger,
	}
}

// ExtractText returns the text of every page of the PDF at path, concatenated in page order
// exactly as the parser emits it. It never fails: problems are returned as a string starting
// with domain.ExtractionErrorPrefix.
func (p *PDFExtractor) ExtractText(path string) string {
	text, err := p.extract(path)
	if err != nil {
		p.logger.Warn("PDF extraction failed", "path", path, "error", err)
		return domain.ExtractionErrorPrefix + err.Error()
	}
	return text
}

func (p *PDFExtractor) extract(path string) (text string, err error) {
	// MuPDF bindings can panic on malformed input; keep that inside the boundary.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("panic during extraction: %v", r)
		}
	}()

	doc, err := fitz.New(path)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	numPages := doc.NumPage()
	var sb strings.Builder

	for pageNum := 0; pageNum < numPages; pageNum++ {
		p.logger.Debug("PDF extracting page", "page", pageNum+1, "total", numPages)

		pageText, err := doc.Text(pageNum)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", pageNum, err)
		}
		sb.WriteString(pageText)
	}

	p.logger.Debug("PDF extracted", "path", path, "pages", numPages, "chars", sb.Len())
	return sb.String(), nil
}
