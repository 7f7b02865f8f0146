package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	errorspkg "weatheredge.app/pkg/errors"
)

const messageServerError = "Server error"

// ErrorResponse is the uniform error envelope
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// handleError maps application errors onto HTTP statuses
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed",
			"path", c.Request.URL.Path,
			"status", status,
			"error", err,
			"request_id", c.GetString(contextRequestID))
	}
	c.AbortWithStatusJSON(status, body)
}

func errorResponse(err error) (int, ErrorResponse) {
	appErr, ok := errorspkg.As(err)
	if !ok {
		return http.StatusInternalServerError, ErrorResponse{Error: messageServerError, Details: err.Error()}
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		return http.StatusBadRequest, ErrorResponse{Error: appErr.Message}
	case errorspkg.ForbiddenError:
		return http.StatusForbidden, ErrorResponse{Error: appErr.Message}
	case errorspkg.NotFoundError:
		return http.StatusNotFound, ErrorResponse{Error: appErr.Message}
	case errorspkg.AlreadyExistsError:
		return http.StatusConflict, ErrorResponse{Error: appErr.Message}
	case errorspkg.ExternalAPIError:
		return http.StatusBadGateway, ErrorResponse{Error: appErr.Message}
	default:
		details := appErr.Message
		if appErr.Cause != nil {
			details = appErr.Message + ": " + appErr.Cause.Error()
		}
		return http.StatusInternalServerError, ErrorResponse{Error: messageServerError, Details: details}
	}
}
