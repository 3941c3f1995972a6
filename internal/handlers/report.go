package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hlifeacademy/dna-backend/internal/services"
)

type ReportHandler struct {
	assessmentService services.AssessmentService
	userService       services.UserService
	reportService     services.ReportService
}

func NewReportHandler(assessmentService services.AssessmentService, userService services.UserService, reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		assessmentService: assessmentService,
		userService:       userService,
		reportService:     reportService,
	}
}

// GetReport returns the structured report payload for one assessment.
func (rh *ReportHandler) GetReport(c *gin.Context) {
	assessmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assessment id"})
		return
	}
	view, err := rh.assessmentService.Get(c.Request.Context(), assessmentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	RespondOK(c, gin.H{"report": view})
}

// GetReportPNG streams the rendered report image.
func (rh *ReportHandler) GetReportPNG(c *gin.Context) {
	assessmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assessment id"})
		return
	}
	view, err := rh.assessmentService.Get(c.Request.Context(), assessmentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	user, err := rh.userService.GetMe(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	png, err := rh.reportService.RenderPNG(c.Request.Context(), user, view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// Export renders the report, stores it in the bucket and returns the URL.
func (rh *ReportHandler) Export(c *gin.Context) {
	assessmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assessment id"})
		return
	}
	view, err := rh.assessmentService.Get(c.Request.Context(), assessmentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	user, err := rh.userService.GetMe(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	url, err := rh.reportService.Export(c.Request.Context(), user, view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	RespondOK(c, gin.H{"url": url})
}
