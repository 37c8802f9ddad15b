package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/autoflip/backend/internal/model/dto"
	"github.com/autoflip/backend/internal/pkg/response"
	"github.com/autoflip/backend/internal/service"
)

type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// Analyze evaluates one auction lot, stores the result and returns it.
// POST /analyze
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "user_email is required")
		return
	}

	resp, err := h.analysisService.Analyze(c.Request.Context(), &req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.OK(c, resp)
}

// List returns stored analyses for a requester email.
// GET /analyses?user_email=...&page=&page_size=
func (h *AnalysisHandler) List(c *gin.Context) {
	userEmail := c.Query("user_email")
	if userEmail == "" {
		response.BadRequest(c, "user_email is required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	items, total, err := h.analysisService.List(userEmail, page, pageSize)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Page(c, total, page, pageSize, items)
}

// Get returns one stored analysis.
// GET /analyses/:id
func (h *AnalysisHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid analysis id")
		return
	}

	analysis, err := h.analysisService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrAnalysisNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, err.Error())
		return
	}

	response.OK(c, analysis)
}
