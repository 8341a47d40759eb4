// Package domain defines the MCP tool surface for terminology lookups.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oakleafmed/medterm/internal/glossary"
)

// ExplainTermInput represents the MCP tool input for a term explanation.
type ExplainTermInput struct {
	Term string `json:"term" jsonschema:"medical term to explain"`
}

// ExplainTermResult represents the MCP tool output for a term explanation.
type ExplainTermResult struct {
	Term        string `json:"term" jsonschema:"normalized term that was explained"`
	Explanation string `json:"explanation" jsonschema:"plain-language explanation of the term"`
}

// TermExplainer resolves a medical term to an explanation.
type TermExplainer interface {
	Explain(ctx context.Context, term string) (string, error)
}

// ExplainTermTool defines the MCP tool schema for term explanations.
func ExplainTermTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "explain_term",
		Description: "Explains a medical term in plain language",
	}
}

// ExplainTermHandler executes a terminology lookup through the backend.
func ExplainTermHandler(explainer TermExplainer) mcp.ToolHandlerFor[ExplainTermInput, ExplainTermResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ExplainTermInput) (*mcp.CallToolResult, ExplainTermResult, error) {
		term := strings.TrimSpace(input.Term)
		explanation, err := explainer.Explain(ctx, term)
		if err != nil {
			if errors.Is(err, glossary.ErrEmptyTerm) {
				return nil, ExplainTermResult{}, fmt.Errorf("term is required")
			}
			return nil, ExplainTermResult{}, fmt.Errorf("explain term failed: %w", err)
		}
		return nil, ExplainTermResult{
			Term:        term,
			Explanation: explanation,
		}, nil
	}
}
