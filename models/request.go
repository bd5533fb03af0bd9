package models

// APIResponse is the stable envelope every endpoint returns on success
// @Description Standard success envelope
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty" example:"Scan completed"`
	Status  int         `json:"status" example:"200"`
}

// ErrorResponse is the stable envelope every endpoint returns on failure
// @Description Standard error response
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Invalid request body"`
	Status  int    `json:"status" example:"400"`
	Details string `json:"details,omitempty" example:"resumeText is required"`
}

// NewAPIResponse wraps data in the success envelope
func NewAPIResponse(status int, data interface{}, message string) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
		Message: message,
		Status:  status,
	}
}

// NewErrorResponse builds the failure envelope
func NewErrorResponse(status int, err string, details string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   err,
		Status:  status,
		Details: details,
	}
}

// ScanRequest represents the API request for a full resume/job scan
// @Description Scan request with raw resume and job text
type ScanRequest struct {
	ResumeText string `json:"resumeText" example:"John Doe\nSoftware Engineer with 5 years experience..."`
	JobText    string `json:"jobText" example:"Senior Backend Engineer at Acme..."`
	FileName   string `json:"fileName,omitempty" example:"resume.pdf"`
	UserID     string `json:"userId" example:"user@example.com"`
}

// MatchRequest represents a direct match computation request
// @Description Match request over already-parsed documents
type MatchRequest struct {
	ResumeData *ParsedResumeData `json:"resumeData"`
	JobData    *ParsedJobData    `json:"jobData"`
}

// ParseRequest represents a raw-text parse request
// @Description Parse request for a single document
type ParseRequest struct {
	Content string `json:"content" example:"Senior Backend Engineer\nAcme Corp..."`
}

// JobParseResponse is the /job/parse payload. Analysis is omitted gracefully
// when the analysis collaborator is unavailable.
type JobParseResponse struct {
	ParsedData *ParsedJobData `json:"parsedData"`
	Analysis   *JobAnalysis   `json:"analysis,omitempty"`
}

// ResumeParseResponse is the /resume/parse payload
type ResumeParseResponse struct {
	ParsedData *ParsedResumeData `json:"parsedData"`
	Analysis   *ResumeAnalysis   `json:"analysis,omitempty"`
}

// RewriteRequest represents a rewrite-suggestion request
// @Description Rewrite request over parsed documents and precomputed gaps
type RewriteRequest struct {
	ResumeData *ParsedResumeData `json:"resumeData"`
	JobData    *ParsedJobData    `json:"jobData"`
	SkillGaps  *SkillGaps        `json:"skillGaps,omitempty"`
}

// UploadResponse is returned after a successful document upload
// @Description Extracted text and metadata of an uploaded document
type UploadResponse struct {
	Text     string `json:"text"`
	FileName string `json:"fileName" example:"resume.pdf"`
	Size     int64  `json:"size" example:"48213"`
	StoreURL string `json:"storeUrl,omitempty" example:"gs://bucket/uploads/user@example.com/resume.pdf"`
}

// CheckoutRequest represents a checkout-session request
// @Description Checkout session request
type CheckoutRequest struct {
	Plan  string `json:"plan" binding:"required" example:"pro"`
	Email string `json:"email" binding:"required,email" example:"user@example.com"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
