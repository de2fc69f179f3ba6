package handlers

import (
	"fmt"
	"net/http"

	"github.com/SAP-F-2025/practice-quiz/internal/models"
	"github.com/SAP-F-2025/practice-quiz/internal/services"
	"github.com/SAP-F-2025/practice-quiz/internal/utils"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ResultHandler struct {
	BaseHandler
	resultService services.ResultService
	exportService services.ExportService
}

func NewResultHandler(resultService services.ResultService, exportService services.ExportService, logger utils.Logger) *ResultHandler {
	return &ResultHandler{
		BaseHandler:   NewBaseHandler(logger),
		resultService: resultService,
		exportService: exportService,
	}
}

// SubmitAttempt grades answers against the stored test and saves the result
// @Summary Submit attempt
// @Tags results
// @Accept json
// @Produce json
// @Param id path string true "Test ID"
// @Param attempt body services.SubmitAttemptRequest true "Answers in question order"
// @Success 201 {object} models.Result
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /tests/{id}/attempts [post]
func (h *ResultHandler) SubmitAttempt(c *gin.Context) {
	testID := ParseStringIDParam(c, "id")
	if testID == "" {
		return
	}

	var req services.SubmitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	h.LogRequest(c, "Submitting attempt", "test_id", testID, "answers", len(req.Answers))

	result, err := h.resultService.SubmitAttempt(c.Request.Context(), testID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// SubmitResult stores an already graded result
// @Summary Submit result
// @Tags results
// @Accept json
// @Produce json
// @Param id path string true "Test ID"
// @Param result body models.ResultData true "Graded result"
// @Success 201 {object} services.SubmitResultResponse
// @Failure 400 {object} ErrorResponse
// @Router /tests/{id}/results [post]
func (h *ResultHandler) SubmitResult(c *gin.Context) {
	testID := ParseStringIDParam(c, "id")
	if testID == "" {
		return
	}

	var data models.ResultData
	if err := c.ShouldBindJSON(&data); err != nil {
		h.respondBindError(c, err)
		return
	}

	resp, err := h.resultService.SubmitResult(c.Request.Context(), testID, &data)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListResults returns results newest first with summary statistics
// @Summary List results
// @Tags results
// @Produce json
// @Param id path string true "Test ID"
// @Success 200 {object} repositories.ResultList
// @Router /tests/{id}/results [get]
func (h *ResultHandler) ListResults(c *gin.Context) {
	testID := ParseStringIDParam(c, "id")
	if testID == "" {
		return
	}

	c.JSON(http.StatusOK, h.resultService.ListResults(c.Request.Context(), testID))
}

// CountResults returns the number of indexed results
// @Summary Count results
// @Tags results
// @Produce json
// @Param id path string true "Test ID"
// @Success 200 {object} services.CountResultsResponse
// @Router /tests/{id}/results/count [get]
func (h *ResultHandler) CountResults(c *gin.Context) {
	testID := ParseStringIDParam(c, "id")
	if testID == "" {
		return
	}

	c.JSON(http.StatusOK, services.CountResultsResponse{
		Count: h.resultService.CountResults(c.Request.Context(), testID),
	})
}

// GetResult returns a single result
// @Summary Get result
// @Tags results
// @Produce json
// @Param id path string true "Test ID"
// @Param result_id path string true "Result ID"
// @Success 200 {object} models.Result
// @Failure 404 {object} ErrorResponse
// @Router /tests/{id}/results/{result_id} [get]
func (h *ResultHandler) GetResult(c *gin.Context) {
	testID := ParseStringIDParam(c, "id")
	if testID == "" {
		return
	}
	resultID := ParseStringIDParam(c, "result_id")
	if resultID == "" {
		return
	}

	result, err := h.resultService.GetResult(c.Request.Context(), testID, resultID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportResults downloads the results as an xlsx workbook
// @Summary Export results
// @Tags results
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Test ID"
// @Success 200 {file} file
// @Router /tests/{id}/results/export [get]
func (h *ResultHandler) ExportResults(c *gin.Context) {
	testID := ParseStringIDParam(c, "id")
	if testID == "" {
		return
	}

	data, err := h.exportService.ExportResults(c.Request.Context(), testID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="results-%s.xlsx"`, testID))
	c.Data(http.StatusOK, xlsxContentType, data)
}
