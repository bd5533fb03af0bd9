package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/neujobscan/backend/engine"
	"github.com/neujobscan/backend/models"
)

// MatchTool scores a parsed resume against a parsed job
type MatchTool struct{}

// NewMatchTool creates the matching tool
func NewMatchTool() *MatchTool {
	return &MatchTool{}
}

func (t *MatchTool) Name() string {
	return "match_resume_job"
}

func (t *MatchTool) Description() string {
	return "Score a parsed resume against a parsed job across keywords, skills, experience, education and structure, returning an overall weighted score with strengths and gaps"
}

func (t *MatchTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"resume": map[string]interface{}{
				"type":        "object",
				"description": "Parsed resume data, as produced by parse_resume",
			},
			"job": map[string]interface{}{
				"type":        "object",
				"description": "Parsed job data, as produced by parse_job",
			},
		},
		"required": []string{"resume", "job"},
	}
}

func (t *MatchTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var req struct {
		Resume *models.ParsedResumeData `json:"resume"`
		Job    *models.ParsedJobData    `json:"job"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	match, err := engine.CreateMatch(req.Resume, req.Job)
	if err != nil {
		return NewErrorResult(err.Error())
	}
	return NewSuccessResult(match)
}
