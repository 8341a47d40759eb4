// Package glossary provides the HTTP client for the medical-terminology
// backend function.
//
// The backend exposes one named function that maps a term to a plain-text
// explanation. The wire contract is a JSON POST of {"term": ...} answered by
// {"explanation": ...}; anything else is treated as a failed lookup.
package glossary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// FunctionName is the named backend function for term explanations.
const FunctionName = "medical-terminology"

const defaultTimeout = 30 * time.Second

var (
	// ErrEmptyTerm indicates a blank term reached the client.
	ErrEmptyTerm = errors.New("term is required")
	// ErrMissingExplanation indicates a response without an explanation field.
	ErrMissingExplanation = errors.New("response missing explanation")
)

// Config configures the glossary function endpoint and HTTP behavior.
type Config struct {
	// BaseURL is the backend root; the function path is appended to it.
	BaseURL string
	// FunctionName overrides the invoked function. Defaults to FunctionName.
	FunctionName string
	// Timeout bounds one invocation end to end. A hung backend must not hold
	// the caller open indefinitely. Defaults to 30s.
	Timeout time.Duration
	// HTTPClient is injectable for tests. Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// Client invokes the terminology backend function.
type Client struct {
	cfg    Config
	tracer trace.Tracer
}

// New builds a glossary client with config defaults applied.
func New(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.FunctionName) == "" {
		cfg.FunctionName = FunctionName
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		cfg:    cfg,
		tracer: otel.Tracer("github.com/oakleafmed/medterm/internal/glossary"),
	}
}

// Explain invokes the backend function with the trimmed term and returns its
// explanation text.
func (c *Client) Explain(ctx context.Context, term string) (string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", ErrEmptyTerm
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.cfg.BaseURL), "/")
	if baseURL == "" {
		return "", fmt.Errorf("glossary base url is required")
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	ctx, span := c.tracer.Start(ctx, "glossary.explain",
		trace.WithAttributes(attribute.String("glossary.function", c.cfg.FunctionName)))
	defer span.End()

	explanation, err := c.invoke(ctx, baseURL, term)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return explanation, nil
}

func (c *Client) invoke(ctx context.Context, baseURL string, term string) (string, error) {
	requestBody, err := json.Marshal(map[string]any{
		"term": term,
	})
	if err != nil {
		return "", fmt.Errorf("marshal invoke request: %w", err)
	}

	invokeURL := baseURL + "/functions/v1/" + c.cfg.FunctionName
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, invokeURL, bytes.NewReader(requestBody))
	if err != nil {
		return "", fmt.Errorf("build invoke request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("invoke request failed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, err := io.ReadAll(io.LimitReader(res.Body, 4096))
		if err != nil {
			return "", fmt.Errorf("read invoke error body: %w", err)
		}
		return "", fmt.Errorf("invoke request status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Explanation string `json:"explanation"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode invoke response: %w", err)
	}
	explanation := strings.TrimSpace(payload.Explanation)
	if explanation == "" {
		return "", ErrMissingExplanation
	}
	return explanation, nil
}
