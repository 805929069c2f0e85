package newsroom

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"newsroom/internal/model"
	"newsroom/pkg/llm"
)

// Brainstorm batch size is fixed; the fallback set keeps the pipeline fed
// when the model call or its output is unusable.
const angleBatchSize = 3

const brainstormPromptFormat = `You are the Editor-in-Chief of a top AI Tech Publication.
Today is %s.
Identify 3 distinct, high-impact story angles based on likely breaking news or major trends in AI right now.
Avoid generic "AI is growing" stories. Look for specific model releases, benchmarks, or corporate moves.

Return a JSON object with an "angles" array containing exactly 3 objects, each with:
- title: A catchy headline
- query: A specific search query to find facts for this story
- focus: What specific details the journalist should look for

Example format: {"angles": [{"title": "DeepSeek V3 Crushes Benchmarks", "query": "DeepSeek V3 benchmark results vs GPT-4", "focus": "Technical specs and coding performance"}, {...}, {...}]}

IMPORTANT: Return exactly 3 distinct angles.`

type Brainstormer struct {
	llm llm.Client
	now func() time.Time
}

func NewBrainstormer(client llm.Client) *Brainstormer {
	return &Brainstormer{
		llm: client,
		now: time.Now,
	}
}

// Brainstorm asks the model for today's story angles. It never fails
// outwardly: any call error, parse error, or wrong-sized batch is logged and
// replaced by the fixed fallback set, so the result is always 3 angles.
func (b *Brainstormer) Brainstorm(ctx context.Context) []model.Angle {
	prompt := fmt.Sprintf(brainstormPromptFormat, b.now().Format("1/2/2006"))

	content, err := b.llm.Complete(ctx, prompt, true)
	if err != nil {
		slog.Error("brainstorm call failed, using fallback angles", "error", err)
		return fallbackAngles()
	}

	var parsed struct {
		Angles []struct {
			Title string `json:"title"`
			Query string `json:"query"`
			Focus string `json:"focus"`
		} `json:"angles"`
	}

	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		slog.Error("brainstorm response is not valid JSON, using fallback angles", "error", err, "content", content)
		return fallbackAngles()
	}

	if len(parsed.Angles) != angleBatchSize {
		slog.Warn("brainstorm returned wrong number of angles, using fallback angles", "count", len(parsed.Angles))
		return fallbackAngles()
	}

	angles := make([]model.Angle, angleBatchSize)
	for i, a := range parsed.Angles {
		angles[i] = model.Angle{
			Title:       a.Title,
			SearchQuery: a.Query,
			Focus:       a.Focus,
		}
	}

	return angles
}

func fallbackAngles() []model.Angle {
	return []model.Angle{
		{
			Title:       "AI Model Breakthrough: Latest Advances in Large Language Models",
			SearchQuery: "latest LLM releases 2025",
			Focus:       "Model architecture and performance metrics",
		},
		{
			Title:       "GPU Wars: NVIDIA vs AMD in the AI Acceleration Race",
			SearchQuery: "NVIDIA AMD AI chips 2025",
			Focus:       "Hardware specifications and pricing",
		},
		{
			Title:       "Enterprise AI Adoption Surges: What Companies Are Doing Differently",
			SearchQuery: "enterprise AI adoption trends 2025",
			Focus:       "Use cases and ROI data",
		},
	}
}
