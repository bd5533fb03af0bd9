package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/neujobscan/backend/engine"
	"github.com/neujobscan/backend/models"
)

// RewriteTool proposes resume rewrites targeted at a specific job
type RewriteTool struct{}

// NewRewriteTool creates the rewrite tool
func NewRewriteTool() *RewriteTool {
	return &RewriteTool{}
}

func (t *RewriteTool) Name() string {
	return "rewrite_resume"
}

func (t *RewriteTool) Description() string {
	return "Generate section-level resume rewrite suggestions for a target job, each with a projected before/after score, partitioned into quick wins and priority rewrites"
}

func (t *RewriteTool) InputSchema() map[string]interface{} {
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
			"skillGaps": map[string]interface{}{
				"type":        "object",
				"description": "Optional skill-gap result; computed on the fly when omitted",
			},
		},
		"required": []string{"resume", "job"},
	}
}

func (t *RewriteTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var req struct {
		Resume    *models.ParsedResumeData `json:"resume"`
		Job       *models.ParsedJobData    `json:"job"`
		SkillGaps *models.SkillGaps        `json:"skillGaps"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	suggestions, err := engine.GenerateSuggestions(req.Resume, req.Job, req.SkillGaps)
	if err != nil {
		return NewErrorResult(err.Error())
	}
	return NewSuccessResult(suggestions)
}
