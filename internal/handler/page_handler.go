package handler

import (
	"embed"
	"html/template"
	"net/http"

	"pdf-summary-agent/internal/domain"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// PageHandler serves the single page UI
type PageHandler struct {
	service domain.SummaryService
	model   string
	logger  domain.Logger
}

func NewPageHandler(service domain.SummaryService, model string, logger domain.Logger) *PageHandler {
	return &PageHandler{
		service: service,
		model:   model,
		logger:  logger,
	}
}

type pageData struct {
	Title   string
	Model   string
	Summary *domain.Summary
	HTML    template.HTML
}

// Index renders the page, prefilled with the last summary if there is one
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title: "PDF Summarizer",
		Model: h.model,
	}

	if summary, ok := h.service.Latest(); ok {
		data.Summary = summary
		if summary.Source == domain.SummarySourceModel {
			if rendered, err := renderMarkdown(summary.Text); err == nil {
				// goldmark omits raw HTML from model output
				data.HTML = template.HTML(rendered)
			}
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		h.logger.Error("Failed to render page", err)
	}
}
