package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParseStringIDParam reads a path id. On failure it writes a 400 and returns "".
func ParseStringIDParam(c *gin.Context, param string) string {
	idStr := strings.TrimSpace(c.Param(param))
	if idStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: "ID cannot be empty",
			Code:    CodeInvalidRequest,
		})
		return ""
	}
	return idStr
}

// ParseBoolQuery reads an optional boolean query parameter. Unparsable values
// write a 400 and report ok=false.
func ParseBoolQuery(c *gin.Context, name string) (value bool, ok bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return false, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + name,
			Details: "must be true or false",
			Code:    CodeInvalidRequest,
		})
		return false, false
	}
	return value, true
}
