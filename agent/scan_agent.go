package agent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/neujobscan/backend/config"
	"github.com/neujobscan/backend/engine"
	"github.com/neujobscan/backend/models"
	"github.com/neujobscan/backend/storage"
	"github.com/neujobscan/backend/tools"
)

// Explainer produces a natural-language explanation of a finished scan.
// Implemented by the Gemini client; nil means deterministic explanations only.
type Explainer interface {
	ExplainScan(ctx context.Context, scan *models.ATSResponse) (string, error)
}

// SectionRewriter generates replacement text for one resume section. An
// Explainer that also implements this upgrades the top priority rewrite; the
// deterministic suggestion stays in place on any failure.
type SectionRewriter interface {
	RewriteSection(ctx context.Context, section, original string, job *models.ParsedJobData) (string, error)
}

// ScanAgent orchestrates the scan pipeline: parse, analyze, match, skill
// gaps, rewrites, then aggregation and best-effort persistence
type ScanAgent struct {
	cfg          *config.Config
	store        storage.ScanStore
	explainer    Explainer
	toolRegistry *tools.ToolRegistry
}

// NewScanAgent creates a new scan agent. store is required; explainer may be
// nil.
func NewScanAgent(cfg *config.Config, store storage.ScanStore, explainer Explainer) *ScanAgent {
	registry := tools.NewToolRegistry()
	registry.Register(tools.NewParseResumeTool())
	registry.Register(tools.NewParseJobTool())
	registry.Register(tools.NewMatchTool())
	registry.Register(tools.NewSkillGapTool())
	registry.Register(tools.NewRewriteTool())

	return &ScanAgent{
		cfg:          cfg,
		store:        store,
		explainer:    explainer,
		toolRegistry: registry,
	}
}

// ScanInput is everything one scan invocation needs
type ScanInput struct {
	ResumeText string
	JobText    string
	FileName   string
	UserID     string
}

// PerformScan runs the full pipeline for one resume/job pair. Persistence is
// best effort: a storage failure is logged and the result still returned.
func (a *ScanAgent) PerformScan(ctx context.Context, input ScanInput) (*models.ATSResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.ScanTimeout())
	defer cancel()

	log.Printf("[Agent] Starting scan for user=%s, file=%q", input.UserID, input.FileName)

	resume, err := engine.ParseResume(input.ResumeText)
	if err != nil {
		return nil, stageFailure(ctx, "parse_resume", err)
	}

	job, err := engine.ParseJob(input.JobText)
	if err != nil {
		return nil, stageFailure(ctx, "parse_job", err)
	}

	resumeAnalysis, err := engine.AnalyzeResume(resume, input.ResumeText)
	if err != nil {
		return nil, stageFailure(ctx, "analyze_resume", err)
	}

	jobAnalysis, err := engine.AnalyzeJob(job)
	if err != nil {
		return nil, stageFailure(ctx, "analyze_job", err)
	}

	match, err := engine.CreateMatch(resume, job)
	if err != nil {
		return nil, stageFailure(ctx, "match", err)
	}

	gaps, err := engine.ComputeSkillGaps(resume, job)
	if err != nil {
		return nil, stageFailure(ctx, "skill_gap", err)
	}

	rewrites, err := engine.GenerateSuggestions(resume, job, gaps)
	if err != nil {
		return nil, stageFailure(ctx, "rewrite", err)
	}

	keywordMatches := engine.BuildKeywordMatches(resume, job, input.ResumeText)

	scan := &models.ATSResponse{
		ScanID:         newScanID(),
		UserID:         input.UserID,
		FileName:       input.FileName,
		Timestamp:      time.Now().UTC(),
		Resume:         *resume,
		Job:            *job,
		ResumeAnalysis: *resumeAnalysis,
		JobAnalysis:    *jobAnalysis,
		Match:          *match,
		KeywordMatches: keywordMatches,
		SkillGaps:      *gaps,
		Rewrites:       *rewrites,
	}
	a.upgradeTopRewrite(ctx, scan)
	scan.Explanation = a.explain(ctx, scan)

	if err := ctx.Err(); err != nil {
		return nil, &engine.TimeoutError{Stage: "aggregate"}
	}

	a.persist(ctx, scan)

	log.Printf("[Agent] Scan %s complete: match=%d%%, missing=%d, rewrites=%d",
		scan.ScanID, match.MatchPercentage, len(gaps.MissingSkills),
		len(rewrites.QuickWins)+len(rewrites.PriorityRewrites))

	return scan, nil
}

// GetScanHistory returns a user's past scans, newest first
func (a *ScanAgent) GetScanHistory(ctx context.Context, userID string, limit int) ([]*models.ATSResponse, error) {
	return a.store.GetScanHistory(ctx, userID, limit)
}

// GetScan returns one scan by its ID
func (a *ScanAgent) GetScan(ctx context.Context, scanID string) (*models.ATSResponse, error) {
	return a.store.GetScan(ctx, scanID)
}

// GetToolDefinitions returns the tool definitions for external use
func (a *ScanAgent) GetToolDefinitions() []map[string]interface{} {
	return a.toolRegistry.GetToolDefinitions()
}

// ToolRegistry exposes the registry for the MCP server
func (a *ScanAgent) ToolRegistry() *tools.ToolRegistry {
	return a.toolRegistry
}

// explain prefers the language model and falls back to the deterministic
// renderer on any failure
func (a *ScanAgent) explain(ctx context.Context, scan *models.ATSResponse) string {
	if a.explainer != nil {
		explainCtx, cancel := context.WithTimeout(ctx, a.cfg.ExplainTimeout())
		defer cancel()

		text, err := a.explainer.ExplainScan(explainCtx, scan)
		if err == nil && strings.TrimSpace(text) != "" {
			return text
		}
		if err != nil {
			log.Printf("[Agent] Explanation model failed, using fallback: %v", err)
		}
	}
	return engine.Explain(&scan.Job, &scan.Match, &scan.SkillGaps)
}

// upgradeTopRewrite replaces the highest-impact priority rewrite's suggested
// text with model-generated copy when the explainer can rewrite sections.
// The deterministic suggestion survives any model failure.
func (a *ScanAgent) upgradeTopRewrite(ctx context.Context, scan *models.ATSResponse) {
	rewriter, ok := a.explainer.(SectionRewriter)
	if !ok || len(scan.Rewrites.PriorityRewrites) == 0 {
		return
	}

	rewriteCtx, cancel := context.WithTimeout(ctx, a.cfg.ExplainTimeout())
	defer cancel()

	top := &scan.Rewrites.PriorityRewrites[0]
	text, err := rewriter.RewriteSection(rewriteCtx, top.Section, top.Original, &scan.Job)
	if err != nil {
		log.Printf("[Agent] Rewrite model failed, keeping deterministic suggestion: %v", err)
		return
	}
	if strings.TrimSpace(text) != "" {
		top.Suggested = text
	}
}

// persist saves the scan and swallows failures. The scan result is already
// computed and the user gets it either way.
func (a *ScanAgent) persist(ctx context.Context, scan *models.ATSResponse) {
	if a.store == nil {
		return
	}
	if err := a.store.SaveScan(ctx, scan); err != nil {
		perr := &engine.PersistenceError{Err: err}
		log.Printf("[Agent] %v (scan=%s, user=%s)", perr, scan.ScanID, scan.UserID)
	}
}

// stageFailure classifies a stage error, preferring the timeout signal when
// the context deadline is the underlying cause
func stageFailure(ctx context.Context, stage string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return &engine.TimeoutError{Stage: stage}
	}

	var validationErr *engine.ValidationError
	var parsingErr *engine.ParsingError
	if errors.As(err, &validationErr) || errors.As(err, &parsingErr) {
		return err // already carries enough context for the caller
	}
	return &engine.StageError{Stage: stage, Err: err}
}

// newScanID produces a unique, sortable-ish scan identifier
func newScanID() string {
	return fmt.Sprintf("scan_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
