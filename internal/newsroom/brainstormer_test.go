package newsroom

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

// fakeLLM returns queued responses in order; a response with err set fails
// that call.
type fakeLLM struct {
	responses []fakeResponse
	calls     int
	prompts   []string
}

type fakeResponse struct {
	content string
	err     error
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.calls >= len(f.responses) {
		return "", errors.New("no more responses")
	}
	r := f.responses[f.calls]
	f.calls++
	return r.content, r.err
}

func (f *fakeLLM) ModelName() string {
	return "fake"
}

func newTestBrainstormer(client *fakeLLM) *Brainstormer {
	b := NewBrainstormer(client)
	b.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
	return b
}

func TestBrainstormParsesAngles(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{{content: `{
		"angles": [
			{"title": "A", "query": "qa", "focus": "fa"},
			{"title": "B", "query": "qb", "focus": "fb"},
			{"title": "C", "query": "qc", "focus": "fc"}
		]
	}`}}}

	angles := newTestBrainstormer(client).Brainstorm(context.Background())

	assert.Equal(t, 3, len(angles))
	assert.Equal(t, "A", angles[0].Title)
	assert.Equal(t, "qa", angles[0].SearchQuery)
	assert.Equal(t, "fa", angles[0].Focus)
	assert.Equal(t, "C", angles[2].Title)
}

func TestBrainstormPromptNamesToday(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{{content: `{"angles": []}`}}}

	newTestBrainstormer(client).Brainstorm(context.Background())

	assert.Equal(t, 1, len(client.prompts))
	if !strings.Contains(client.prompts[0], "8/31/2026") {
		t.Errorf("prompt does not name today's date: %q", client.prompts[0])
	}
}

func TestBrainstormFallbackOnError(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{{err: errors.New("rate limited")}}}

	angles := newTestBrainstormer(client).Brainstorm(context.Background())

	assert.Equal(t, 3, len(angles))
	assert.Equal(t, "AI Model Breakthrough: Latest Advances in Large Language Models", angles[0].Title)
	assert.Equal(t, "GPU Wars: NVIDIA vs AMD in the AI Acceleration Race", angles[1].Title)
	assert.Equal(t, "Enterprise AI Adoption Surges: What Companies Are Doing Differently", angles[2].Title)
}

func TestBrainstormFallbackOnMalformedJSON(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{{content: `{"angles": [`}}}

	angles := newTestBrainstormer(client).Brainstorm(context.Background())

	assert.Equal(t, 3, len(angles))
	assert.Equal(t, "latest LLM releases 2025", angles[0].SearchQuery)
}

func TestBrainstormFallbackOnEmptyAngles(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{{content: `{"angles": []}`}}}

	angles := newTestBrainstormer(client).Brainstorm(context.Background())

	assert.Equal(t, 3, len(angles))
}

func TestBrainstormFallbackOnWrongBatchSize(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{{content: `{
		"angles": [{"title": "Only One", "query": "q", "focus": "f"}]
	}`}}}

	angles := newTestBrainstormer(client).Brainstorm(context.Background())

	assert.Equal(t, 3, len(angles))
	assert.NotEqual(t, "Only One", angles[0].Title)
}
