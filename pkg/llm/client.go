package llm

import (
	"context"
	"strings"
)

// Client is a provider-agnostic completion capability. When jsonMode is set
// the provider is asked for machine-parseable JSON instead of free text;
// callers in this codebase always set it.
type Client interface {
	Complete(ctx context.Context, prompt string, jsonMode bool) (string, error)
	ModelName() string
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
