package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pdf-summary-agent/internal/domain"

	"github.com/google/uuid"
)

// FileUploadStore writes every upload to the same path, replacing the previous one.
// Concurrent writers would race on that file; SummaryService serializes callers.
type FileUploadStore struct {
	path    string
	maxSize int64
	logger  domain.Logger
}

func NewFileUploadStore(path string, maxSize int64, logger domain.Logger) *FileUploadStore {
	return &FileUploadStore{
		path:    path,
		maxSize: maxSize,
		logger:  logger,
	}
}

// Path returns the fixed upload location.
func (s *FileUploadStore) Path() string {
	return s.path
}

// Save copies file to the upload path. A maxSize of 0 disables the size check.
func (s *FileUploadStore) Save(filename string, file io.Reader) (*domain.FileInfo, error) {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}

	out, err := os.Create(s.path)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}

	src := file
	if s.maxSize > 0 {
		src = io.LimitReader(file, s.maxSize+1)
	}

	size, err := io.Copy(out, src)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("write upload file: %w", err)
	}
	if size == 0 {
		return nil, domain.ErrEmptyUpload
	}
	if s.maxSize > 0 && size > s.maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", domain.ErrFileTooLarge, s.maxSize)
	}

	s.logger.Info("Upload stored", "file", filename, "bytes", size, "path", s.path)

	return &domain.FileInfo{
		ID:       uuid.NewString(),
		Filename: filename,
		Size:     size,
		Path:     s.path,
	}, nil
}
