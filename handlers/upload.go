package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neujobscan/backend/auth"
	"github.com/neujobscan/backend/config"
	"github.com/neujobscan/backend/models"
	"github.com/neujobscan/backend/storage"
	"github.com/neujobscan/backend/utils"
)

// UploadHandler handles resume file uploads
type UploadHandler struct {
	extractor *utils.DocumentExtractor
	files     *storage.CloudStorageClient // nil disables archival
	users     storage.UserStore
}

// NewUploadHandler creates a new upload handler. files may be nil when no
// bucket is configured; uploads then extract text without archiving the file.
func NewUploadHandler(cfg *config.Config, files *storage.CloudStorageClient, users storage.UserStore) *UploadHandler {
	return &UploadHandler{
		extractor: utils.NewDocumentExtractor(cfg.MaxUploadBytes),
		files:     files,
		users:     users,
	}
}

// UploadResume accepts a resume file and returns its extracted text
// @Summary Upload a resume file
// @Description Upload a resume (txt, pdf, doc, docx; max 10 MiB) and get back its extracted text for scanning
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Resume file"
// @Success 200 {object} models.APIResponse{data=models.UploadResponse} "Extracted text"
// @Failure 400 {object} models.ErrorResponse "Missing, oversized or unsupported file"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /upload [post]
func (h *UploadHandler) UploadResume(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.NewErrorResponse(
			http.StatusUnauthorized, "Unauthorized", ""))
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest, "Resume file is required", err.Error()))
		return
	}
	defer file.Close()

	text, err := h.extractor.ExtractText(file, header)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest, "Could not read file", err.Error()))
		return
	}

	resp := models.UploadResponse{
		Text:     text,
		FileName: header.Filename,
		Size:     header.Size,
	}

	// Archival is best effort: extraction already succeeded and that is what
	// the caller needs
	if h.files != nil {
		if _, err := file.Seek(0, 0); err == nil {
			url, err := h.files.UploadResume(c.Request.Context(), claims.Email, file, header)
			if err != nil {
				log.Printf("[UploadHandler] Failed to archive resume for %s: %v", claims.Email, err)
			} else {
				resp.StoreURL = url
				if h.users != nil {
					if err := h.users.UpdateUser(c.Request.Context(), claims.Email,
						map[string]interface{}{"resumeUrl": url}); err != nil {
						log.Printf("[UploadHandler] Failed to record resume URL for %s: %v", claims.Email, err)
					}
				}
			}
		}
	}

	log.Printf("[UploadHandler] Resume uploaded by %s: %s (%d bytes)", claims.Email, header.Filename, header.Size)
	c.JSON(http.StatusOK, models.NewAPIResponse(http.StatusOK, resp, "Upload successful"))
}
