package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neujobscan/backend/config"
	"github.com/neujobscan/backend/engine"
	"github.com/neujobscan/backend/models"
	"github.com/neujobscan/backend/storage"
)

const testResumeText = `Jane Smith
jane.smith@example.com

Summary
Backend engineer building cloud services.

Experience
Senior Software Engineer at Acme Corp
2019 - Present
- Built Go microservices on Kubernetes

Skills
Go, Kubernetes, PostgreSQL
`

const testJobText = `Backend Engineer at CloudWorks

Requirements
- Strong Go and Kubernetes knowledge
- PostgreSQL in production

Responsibilities
- Build and operate Go services
`

func testConfig() *config.Config {
	return &config.Config{
		ScanTimeoutSeconds:    30,
		ExplainTimeoutSeconds: 5,
		HistoryLimit:          50,
	}
}

// failingStore rejects every write so persistence failures can be exercised
type failingStore struct{}

func (f *failingStore) SaveScan(context.Context, *models.ATSResponse) error {
	return errors.New("backend unavailable")
}

func (f *failingStore) GetScan(context.Context, string) (*models.ATSResponse, error) {
	return nil, storage.ErrNotFound
}

func (f *failingStore) GetScanHistory(context.Context, string, int) ([]*models.ATSResponse, error) {
	return nil, errors.New("backend unavailable")
}

// stubExplainer returns a canned explanation or error
type stubExplainer struct {
	text string
	err  error
}

func (s *stubExplainer) ExplainScan(context.Context, *models.ATSResponse) (string, error) {
	return s.text, s.err
}

// stubRewriter is a stubExplainer that can also rewrite sections
type stubRewriter struct {
	stubExplainer
	rewritten  string
	rewriteErr error
}

func (s *stubRewriter) RewriteSection(context.Context, string, string, *models.ParsedJobData) (string, error) {
	return s.rewritten, s.rewriteErr
}

func TestPerformScan_FullPipeline(t *testing.T) {
	store := storage.NewMemoryStore()
	a := NewScanAgent(testConfig(), store, nil)

	scan, err := a.PerformScan(context.Background(), ScanInput{
		ResumeText: testResumeText,
		JobText:    testJobText,
		FileName:   "resume.txt",
		UserID:     "user-1",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(scan.ScanID, "scan_"))
	assert.Equal(t, "user-1", scan.UserID)
	assert.Equal(t, "resume.txt", scan.FileName)
	assert.False(t, scan.Timestamp.IsZero())
	assert.NotEmpty(t, scan.Explanation)
	assert.Equal(t, scan.Match.MatchPercentage, int(scan.Match.OverallScore+0.5))

	// The scan must be retrievable afterwards
	stored, err := store.GetScan(context.Background(), scan.ScanID)
	require.NoError(t, err)
	assert.Equal(t, scan.ScanID, stored.ScanID)
}

func TestPerformScan_UniqueScanIDs(t *testing.T) {
	a := NewScanAgent(testConfig(), storage.NewMemoryStore(), nil)
	input := ScanInput{ResumeText: testResumeText, JobText: testJobText, UserID: "u"}

	first, err := a.PerformScan(context.Background(), input)
	require.NoError(t, err)
	second, err := a.PerformScan(context.Background(), input)
	require.NoError(t, err)

	assert.NotEqual(t, first.ScanID, second.ScanID)
}

func TestPerformScan_ParseErrorPassesThrough(t *testing.T) {
	a := NewScanAgent(testConfig(), storage.NewMemoryStore(), nil)

	_, err := a.PerformScan(context.Background(), ScanInput{
		ResumeText: "",
		JobText:    testJobText,
	})

	var perr *engine.ParsingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "resume", perr.DocType)
}

func TestPerformScan_StorageFailureStillReturnsScan(t *testing.T) {
	a := NewScanAgent(testConfig(), &failingStore{}, nil)

	scan, err := a.PerformScan(context.Background(), ScanInput{
		ResumeText: testResumeText,
		JobText:    testJobText,
		UserID:     "user-1",
	})

	require.NoError(t, err, "persistence is best effort")
	require.NotNil(t, scan)
	assert.NotEmpty(t, scan.ScanID)
}

func TestPerformScan_CancelledContext(t *testing.T) {
	a := NewScanAgent(testConfig(), storage.NewMemoryStore(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.PerformScan(ctx, ScanInput{
		ResumeText: testResumeText,
		JobText:    testJobText,
	})

	var terr *engine.TimeoutError
	require.ErrorAs(t, err, &terr)
}

func TestPerformScan_ExplainerPreferred(t *testing.T) {
	a := NewScanAgent(testConfig(), storage.NewMemoryStore(), &stubExplainer{text: "Model explanation."})

	scan, err := a.PerformScan(context.Background(), ScanInput{
		ResumeText: testResumeText,
		JobText:    testJobText,
	})
	require.NoError(t, err)
	assert.Equal(t, "Model explanation.", scan.Explanation)
}

func TestPerformScan_ExplainerFailureFallsBack(t *testing.T) {
	a := NewScanAgent(testConfig(), storage.NewMemoryStore(), &stubExplainer{err: errors.New("quota exhausted")})

	scan, err := a.PerformScan(context.Background(), ScanInput{
		ResumeText: testResumeText,
		JobText:    testJobText,
	})
	require.NoError(t, err)
	assert.Contains(t, scan.Explanation, "Your resume scores")
}

// mismatched resume/job pair whose experience section misses required skills,
// so the scan always produces a priority rewrite
const gapResumeText = `Alex Doe
alex.doe@example.com

Summary
Frontend developer building web apps.

Experience
Software Engineer at Initech
2020 - Present
- Maintained internal reporting dashboards

Skills
React
`

const gapJobText = `Frontend Engineer at Webly

Requirements
- TypeScript expertise
- AWS deployment experience

Responsibilities
- Ship TypeScript features on AWS
`

func TestPerformScan_ModelUpgradesTopRewrite(t *testing.T) {
	const modelText = "Shipped TypeScript features on AWS with one measurable outcome per bullet."
	a := NewScanAgent(testConfig(), storage.NewMemoryStore(), &stubRewriter{
		stubExplainer: stubExplainer{text: "Model explanation."},
		rewritten:     modelText,
	})

	scan, err := a.PerformScan(context.Background(), ScanInput{
		ResumeText: gapResumeText,
		JobText:    gapJobText,
		UserID:     "user-1",
	})
	require.NoError(t, err)

	require.NotEmpty(t, scan.Rewrites.PriorityRewrites)
	assert.Equal(t, modelText, scan.Rewrites.PriorityRewrites[0].Suggested)
}

func TestPerformScan_RewriteModelFailureKeepsDeterministicText(t *testing.T) {
	input := ScanInput{ResumeText: gapResumeText, JobText: gapJobText, UserID: "user-1"}

	plain := NewScanAgent(testConfig(), storage.NewMemoryStore(), nil)
	base, err := plain.PerformScan(context.Background(), input)
	require.NoError(t, err)
	require.NotEmpty(t, base.Rewrites.PriorityRewrites)

	a := NewScanAgent(testConfig(), storage.NewMemoryStore(), &stubRewriter{
		stubExplainer: stubExplainer{text: "Model explanation."},
		rewriteErr:    errors.New("model unavailable"),
	})
	scan, err := a.PerformScan(context.Background(), input)
	require.NoError(t, err)

	require.NotEmpty(t, scan.Rewrites.PriorityRewrites)
	assert.Equal(t, base.Rewrites.PriorityRewrites[0].Suggested,
		scan.Rewrites.PriorityRewrites[0].Suggested)
}

func TestGetScanHistory_Delegates(t *testing.T) {
	store := storage.NewMemoryStore()
	a := NewScanAgent(testConfig(), store, nil)

	for i := 0; i < 3; i++ {
		_, err := a.PerformScan(context.Background(), ScanInput{
			ResumeText: testResumeText,
			JobText:    testJobText,
			UserID:     "history-user",
		})
		require.NoError(t, err)
	}

	history, err := a.GetScanHistory(context.Background(), "history-user", 2)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	all, err := a.GetScanHistory(context.Background(), "history-user", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestToolRegistry_RegistersPipelineTools(t *testing.T) {
	a := NewScanAgent(testConfig(), storage.NewMemoryStore(), nil)

	defs := a.GetToolDefinitions()
	names := make(map[string]bool)
	for _, d := range defs {
		if n, ok := d["name"].(string); ok {
			names[n] = true
		}
	}

	for _, want := range []string{"parse_resume", "parse_job", "match_resume_job", "skill_gap", "rewrite_resume"} {
		assert.True(t, names[want], "missing tool %s", want)
	}
}
