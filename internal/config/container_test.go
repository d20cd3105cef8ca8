package config

import (
	"errors"
	"testing"

	"pdf-summary-agent/internal/domain"
)

func TestNewContainer(t *testing.T) {
	clearEnv(t)
	t.Setenv("MODEL_NAME", "llama3")

	c, err := NewContainer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.GetConfig() == nil || c.GetLogger() == nil || c.GetSummaryService() == nil {
		t.Fatalf("container is missing dependencies")
	}
	if c.ModelClient.Model() != "llama3" {
		t.Fatalf("expected model llama3, got %s", c.ModelClient.Model())
	}
	if c.GetSummaryService().State().Status != domain.SessionStatusIdle {
		t.Fatalf("expected idle session")
	}
}

func TestNewContainer_UnknownPolicy(t *testing.T) {
	clearEnv(t)
	t.Setenv("OLLAMA_STATUS_POLICY", "sometimes")

	_, err := NewContainer()
	if !errors.Is(err, domain.ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
}
