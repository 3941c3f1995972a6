package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hlifeacademy/dna-backend/internal/services"
)

type AssessmentHandler struct {
	assessmentService services.AssessmentService
}

func NewAssessmentHandler(assessmentService services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

func (ah *AssessmentHandler) Submit(c *gin.Context) {
	var req services.SubmitInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	out, err := ah.assessmentService.Submit(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	RespondOK(c, out)
}

func (ah *AssessmentHandler) List(c *gin.Context) {
	views, err := ah.assessmentService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	RespondOK(c, gin.H{"assessments": views})
}

func (ah *AssessmentHandler) Latest(c *gin.Context) {
	view, err := ah.assessmentService.Latest(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if view == nil {
		RespondError(c, http.StatusNotFound, "no_assessment", fmt.Errorf("no assessment yet"))
		return
	}
	RespondOK(c, gin.H{"assessment": view})
}

func (ah *AssessmentHandler) Get(c *gin.Context) {
	assessmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assessment id"})
		return
	}
	view, err := ah.assessmentService.Get(c.Request.Context(), assessmentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	RespondOK(c, gin.H{"assessment": view})
}

func (ah *AssessmentHandler) Retake(c *gin.Context) {
	status, err := ah.assessmentService.Retake(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	RespondOK(c, gin.H{"retake": status})
}

func (ah *AssessmentHandler) Dashboard(c *gin.Context) {
	summary, err := ah.assessmentService.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	RespondOK(c, summary)
}
