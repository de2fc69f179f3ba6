package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/practice-quiz/internal/models"
	"github.com/SAP-F-2025/practice-quiz/internal/services"
	"github.com/SAP-F-2025/practice-quiz/internal/utils"
	"github.com/gin-gonic/gin"
)

type TestHandler struct {
	BaseHandler
	testService services.TestService
}

func NewTestHandler(testService services.TestService, logger utils.Logger) *TestHandler {
	return &TestHandler{
		BaseHandler: NewBaseHandler(logger),
		testService: testService,
	}
}

// CreateTest creates a new test
// @Summary Create test
// @Tags tests
// @Accept json
// @Produce json
// @Param test body models.Test true "Test definition"
// @Success 201 {object} services.CreateTestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /tests [post]
func (h *TestHandler) CreateTest(c *gin.Context) {
	var test models.Test
	if err := c.ShouldBindJSON(&test); err != nil {
		h.respondBindError(c, err)
		return
	}

	h.LogRequest(c, "Creating test", "title", test.Title, "questions", len(test.Questions))

	resp, err := h.testService.CreateTest(c.Request.Context(), &test)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListTests lists every readable test
// @Summary List tests
// @Tags tests
// @Produce json
// @Success 200 {array} models.Test
// @Router /tests [get]
func (h *TestHandler) ListTests(c *gin.Context) {
	c.JSON(http.StatusOK, h.testService.ListTests(c.Request.Context()))
}

// GetTest returns a test ready to be taken
// @Summary Get test
// @Tags tests
// @Produce json
// @Param id path string true "Test ID"
// @Success 200 {object} models.Test
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /tests/{id} [get]
func (h *TestHandler) GetTest(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	test, err := h.testService.GetTest(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, test)
}

// GetTestDefinition returns the stored test for editing, even without questions
// @Summary Get test definition
// @Tags tests
// @Produce json
// @Param id path string true "Test ID"
// @Success 200 {object} models.Test
// @Failure 404 {object} ErrorResponse
// @Router /tests/{id}/definition [get]
func (h *TestHandler) GetTestDefinition(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	test, err := h.testService.GetTestDefinition(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, test)
}

// UpdateTest replaces a test definition
// @Summary Update test
// @Tags tests
// @Accept json
// @Produce json
// @Param id path string true "Test ID"
// @Param purge_results query bool false "Delete existing results first"
// @Param test body models.Test true "Test definition"
// @Success 200 {object} services.UpdateTestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tests/{id} [put]
func (h *TestHandler) UpdateTest(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	purge, ok := ParseBoolQuery(c, "purge_results")
	if !ok {
		return
	}

	var test models.Test
	if err := c.ShouldBindJSON(&test); err != nil {
		h.respondBindError(c, err)
		return
	}

	h.LogRequest(c, "Updating test", "test_id", id, "purge_results", purge)

	resp, err := h.testService.UpdateTest(c.Request.Context(), id, &test, purge)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteTest deletes a test and its results
// @Summary Delete test
// @Tags tests
// @Produce json
// @Param id path string true "Test ID"
// @Success 200 {object} services.DeleteTestResponse
// @Failure 404 {object} ErrorResponse
// @Router /tests/{id} [delete]
func (h *TestHandler) DeleteTest(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	h.LogRequest(c, "Deleting test", "test_id", id)

	resp, err := h.testService.DeleteTest(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
