package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"strings"

	"pdf-summary-agent/internal/domain"
	apperrors "pdf-summary-agent/pkg/errors"
)

// StatusPolicy decides which HTTP status of the generate endpoint counts as success.
type StatusPolicy int

const (
	// StatusPolicyStandard accepts any 2xx status.
	StatusPolicyStandard StatusPolicy = iota

	// StatusPolicyLegacy accepts only status 100, as the first version of this tool did.
	// Go's transport never surfaces 1xx as a final status, so every query is reported
	// as failed under this policy.
	StatusPolicyLegacy
)

// ParseStatusPolicy maps a config value to a StatusPolicy. Empty selects the standard policy.
func ParseStatusPolicy(value string) (StatusPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "standard":
		return StatusPolicyStandard, nil
	case "legacy":
		return StatusPolicyLegacy, nil
	default:
		return StatusPolicyStandard, fmt.Errorf("%w: %q", domain.ErrUnknownPolicy, value)
	}
}

// Accepts reports whether code is a success status under the policy.
func (p StatusPolicy) Accepts(code int) bool {
	if p == StatusPolicyLegacy {
		return code == http.StatusContinue
	}
	return code >= 200 && code < 300
}

func (p StatusPolicy) String() string {
	if p == StatusPolicyLegacy {
		return "legacy"
	}
	return "standard"
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateChunk struct {
	Response *string `json:"response"`
	Error    string  `json:"error,omitempty"`
	Done     bool    `json:"done"`
}

// OllamaClient talks to an Ollama compatible /api/generate endpoint in streaming mode.
type OllamaClient struct {
	url    string
	model  string
	policy StatusPolicy
	client *http.Client
	logger domain.Logger
}

// NewOllamaClient creates a client. No timeout is set; callers bound requests with ctx.
func NewOllamaClient(url, model string, policy StatusPolicy, logger domain.Logger) *OllamaClient {
	return &OllamaClient{
		url:    url,
		model:  model,
		policy: policy,
		client: &http.Client{},
		logger: logger,
	}
}

// Model returns the model identifier sent with every prompt.
func (c *OllamaClient) Model() string {
	return c.model
}

// Query sends prompt and returns the concatenation of every streamed response fragment.
func (c *OllamaClient) Query(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: true,
	})
	if err != nil {
		return "", apperrors.NewInternalError("failed to encode generate request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", apperrors.NewInternalError("failed to build generate request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Sending prompt", "url", c.url, "model", c.model, "prompt_chars", len(prompt))

	resp, err := c.client.Do(req)
	if err != nil {
		return "", apperrors.NewModelError("generate request failed", 0, "", err)
	}
	defer resp.Body.Close()

	if !c.policy.Accepts(resp.StatusCode) {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		text := strings.TrimSpace(string(raw))
		c.logger.Warn(fmt.Sprintf("Error %d: %s", resp.StatusCode, text), "policy", c.policy.String())
		return "", apperrors.NewModelError("generate endpoint returned an unaccepted status", resp.StatusCode, text, nil)
	}

	summary, err := Accumulate(Fragments(resp.Body))
	if err != nil {
		return "", apperrors.NewModelError("failed to read generate stream", 0, "", err)
	}
	return summary, nil
}

// Fragments yields the response text of each newline-delimited JSON object read from r.
// Blank lines and objects without a response field are skipped. The sequence stops at the
// first decode error or in-stream error object. It can be ranged over once.
func Fragments(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}

			var chunk generateChunk
			if err := json.Unmarshal(line, &chunk); err != nil {
				yield("", fmt.Errorf("decode fragment: %w", err))
				return
			}
			if chunk.Error != "" {
				yield("", fmt.Errorf("generate stream error: %s", chunk.Error))
				return
			}
			if chunk.Response == nil {
				continue
			}
			if !yield(*chunk.Response, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield("", fmt.Errorf("read stream: %w", err))
		}
	}
}

// Accumulate folds a fragment sequence into one string, in arrival order.
// On error the text gathered so far is returned with it.
func Accumulate(fragments iter.Seq2[string, error]) (string, error) {
	var sb strings.Builder
	for fragment, err := range fragments {
		if err != nil {
			return sb.String(), err
		}
		sb.WriteString(fragment)
	}
	return sb.String(), nil
}
