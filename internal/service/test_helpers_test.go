package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"pdf-summary-agent/internal/domain"
)

type mockLogger struct{}

func newMockLogger() domain.Logger { return &mockLogger{} }

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

// fileTextExtractor treats the uploaded bytes as the document text.
type fileTextExtractor struct {
	paths []string
}

func (e *fileTextExtractor) ExtractText(path string) string {
	e.paths = append(e.paths, path)
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ExtractionErrorPrefix + err.Error()
	}
	text := string(data)
	if strings.HasPrefix(text, "%CORRUPT") {
		return domain.ExtractionErrorPrefix + "cannot open document"
	}
	return text
}

type mockModelClient struct {
	mu      sync.Mutex
	prompts []string
	reply   func(prompt string) (string, error)
}

func (m *mockModelClient) Query(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	if m.reply == nil {
		return "summary", nil
	}
	return m.reply(prompt)
}

func (m *mockModelClient) Model() string { return "test-model" }

type mockSpeech struct {
	spoken []string
	err    error
}

func (m *mockSpeech) Speak(ctx context.Context, text string) error {
	m.spoken = append(m.spoken, text)
	return m.err
}

type recordingExecutor struct {
	name  string
	args  []string
	stdin string
	err   error
}

func (r *recordingExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	r.name, r.args = name, args
	return "", r.err
}

func (r *recordingExecutor) ExecuteWithInput(ctx context.Context, stdin io.Reader, name string, args ...string) (string, error) {
	data, _ := io.ReadAll(stdin)
	r.name, r.args, r.stdin = name, args, string(data)
	return "", r.err
}

// buildPDF returns a minimal valid PDF with one Helvetica text line per page.
func buildPDF(t *testing.T, pages ...string) []byte {
	t.Helper()

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}
	for i, text := range pages {
		contentID := 5 + 2*i
		objects = append(objects, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			contentID,
		))
		stream := fmt.Sprintf("BT /F1 18 Tf 72 700 Td (%s) Tj ET", text)
		objects = append(objects, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}
