package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/neujobscan/backend/config"
	"github.com/neujobscan/backend/models"
)

// Client wraps the Vertex AI Gemini client
type Client struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	projectID string
	location  string
	modelName string
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)

	// Configure model parameters
	model.SetTemperature(0.2) // Lower temperature for more consistent outputs
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(8192)

	return &Client{
		client:    client,
		model:     model,
		projectID: cfg.ProjectID,
		location:  cfg.Location,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	return c.client.Close()
}

// ExplainScan turns a completed scan into a short narrative for the
// candidate. The caller falls back to a deterministic explanation when this
// returns an error.
func (c *Client) ExplainScan(ctx context.Context, scan *models.ATSResponse) (string, error) {
	matchJSON, _ := json.Marshal(scan.Match)
	gapsJSON, _ := json.Marshal(scan.SkillGaps)

	prompt := fmt.Sprintf(`You are an ATS coach. Explain this resume/job scan result to the candidate.

JOB TITLE: %s at %s

MATCH RESULT:
%s

SKILL GAPS:
%s

Write 3-5 plain sentences: overall verdict, the strongest signals, the most
important gaps, and the single highest-leverage next step. No markdown, no
bullet points, no headings. Address the candidate as "you".`,
		scan.Job.Title, scan.Job.Company, matchJSON, gapsJSON)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", fmt.Errorf("no response from Gemini")
	}

	log.Printf("[Gemini] Explained scan %s (%d chars)", scan.ScanID, len(text))
	return text, nil
}

// RewriteSection asks the model for replacement text for one resume section,
// targeting the given job. Deterministic suggestions remain the source of
// truth when this fails.
func (c *Client) RewriteSection(ctx context.Context, section, original string, job *models.ParsedJobData) (string, error) {
	jobJSON, _ := json.Marshal(job)

	prompt := fmt.Sprintf(`Rewrite this resume section so it scores better against the job below.
Keep every claim truthful to the original text. Lead bullets with strong verbs
and quantify outcomes where the original gives numbers.

SECTION: %s

ORIGINAL:
%s

TARGET JOB:
%s

Return a JSON object: {"suggested": "the rewritten section text"}.
Return ONLY the JSON object, no markdown formatting.`, section, original, jobJSON)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := cleanJSON(extractText(resp))

	var out struct {
		Suggested string `json:"suggested"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		log.Printf("Failed to parse rewrite response: %s", text)
		return "", fmt.Errorf("failed to parse rewrite JSON: %w", err)
	}
	if strings.TrimSpace(out.Suggested) == "" {
		return "", fmt.Errorf("empty rewrite from Gemini")
	}

	return out.Suggested, nil
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

func cleanJSON(text string) string {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	return text
}
