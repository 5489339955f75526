package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Oliverknowledge/Signal-Backend/internal/config"
	"github.com/Oliverknowledge/Signal-Backend/internal/model"
)

// ModelClient proposes concepts, scores and candidate recall questions for a
// piece of content via the Gemini API. Its output is untrusted: every field
// passes through ParseModelOutput and then the decision core's normalizer
// before use.
type ModelClient struct {
	config *config.AIConfig
	client *http.Client
}

// NewModelClient creates a new model client
func NewModelClient(cfg *config.AIConfig) *ModelClient {
	if cfg == nil {
		cfg = config.DefaultAIConfig()
	}
	return &ModelClient{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Analyze asks the model to score the content against the learner's goal and
// propose concepts and recall questions. Falls back to a deterministic mock
// when no API key is configured so the pipeline stays exercisable locally.
func (c *ModelClient) Analyze(ctx context.Context, text, goal string, known, weak []string) (*model.RawAnalysis, error) {
	if !c.config.IsEnabled() {
		return c.mockAnalyze(text, goal), nil
	}

	prompt := c.buildAnalysisPrompt(text, goal, known, weak)
	response, err := c.callGemini(ctx, c.config.Models.Analysis, prompt)
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	return ParseModelOutput([]byte(response)), nil
}

// ParseModelOutput coerces the raw model JSON into a typed RawAnalysis.
// Missing, wrong-typed or unparseable fields degrade to zero values instead
// of failing; score coercion yields NaN for garbage so the normalizer maps
// it to 0.
func ParseModelOutput(data []byte) *model.RawAnalysis {
	var raw model.RawModelOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return &model.RawAnalysis{
			RelevanceScore:     math.NaN(),
			LearningValueScore: math.NaN(),
		}
	}

	concepts := make([]string, 0, len(raw.Concepts))
	for _, c := range raw.Concepts {
		c = strings.TrimSpace(c)
		if c != "" {
			concepts = append(concepts, c)
		}
	}

	return &model.RawAnalysis{
		Concepts:           concepts,
		RelevanceScore:     coerceScore(raw.RelevanceScore),
		LearningValueScore: coerceScore(raw.LearningValueScore),
		Candidates:         raw.RecallQuestions,
	}
}

// coerceScore accepts the JSON number, an int, or a numeric string. Anything
// else becomes NaN, which Normalize clamps to 0.
func coerceScore(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}
	return math.NaN()
}

// callGemini makes a request to the Gemini API
func (c *ModelClient) callGemini(ctx context.Context, modelName, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", c.config.ModelEndpoint(modelName), c.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	// Parse Gemini response structure
	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

func (c *ModelClient) buildAnalysisPrompt(text, goal string, known, weak []string) string {
	knownStr := "none listed"
	if len(known) > 0 {
		knownStr = strings.Join(known, ", ")
	}
	weakStr := "none listed"
	if len(weak) > 0 {
		weakStr = strings.Join(weak, ", ")
	}

	return fmt.Sprintf(`You are scoring a piece of content for a learner. Return ONLY valid JSON matching this schema:
{
  "concepts": ["concept 1", "concept 2"],
  "relevance_score": 0.0 to 1.0,
  "learning_value_score": 0.0 to 1.0,
  "recall_questions": [
    {"type": "open", "question": "..."},
    {"type": "mcq", "question": "...", "options": ["a", "b", "c", "d"], "correct_index": 0}
  ]
}

Learner's goal: %s
Concepts the learner already knows: %s
Concepts the learner is weak on: %s

Content:
%s

Score how relevant this content is to the learner's goal (relevance_score)
and how much new, durable understanding it offers given what they already
know (learning_value_score). List the distinct concepts the content teaches.
Propose up to 8 recall questions grounded in the content: open questions
between 8 and 220 characters, mcq questions with exactly 4 distinct options
of 2-120 characters each and a correct_index between 0 and 3.`,
		goal, knownStr, weakStr, text)
}

// mockAnalyze produces a deterministic stand-in based on content length so
// the full pipeline runs without an API key.
func (c *ModelClient) mockAnalyze(text, goal string) *model.RawAnalysis {
	wordCount := len(strings.Fields(text))
	score := float64(wordCount) / 400.0
	if score > 1.0 {
		score = 1.0
	}

	return &model.RawAnalysis{
		Concepts:           []string{"main topic"},
		RelevanceScore:     score,
		LearningValueScore: score * 0.9,
		Candidates:         nil,
	}
}
