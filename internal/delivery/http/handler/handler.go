package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "salestrack/pkg/errors"
	"salestrack/pkg/utils"
)

// parseID reads a numeric path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// respondError maps application errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		switch {
		case strings.HasSuffix(appErr.Code, "_NOT_FOUND"):
			utils.ErrorResponse(c, http.StatusNotFound, appErr.Message)
		case appErr.Code == "VALIDATION_ERROR" || appErr.Code == "PARTIAL_POSITION":
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
		case strings.HasSuffix(appErr.Code, "_COMPLETED"):
			utils.ErrorResponse(c, http.StatusConflict, appErr.Message)
		default:
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
		}
		return
	}

	utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}
