package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"go-demandflo-backend/internal/delivery/http/response"
	"go-demandflo-backend/pkg/apperror"
	"go-demandflo-backend/pkg/logger"
)

// ErrorHandler is the single place errors become HTTP responses. Handlers
// attach errors with c.Error and return; status codes and bodies are decided
// here so every route fails in the same shape.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= 500 {
				// Log the cause server-side; the client sees only the
				// generic message, never driver or query text.
				logger.Log.Error("request failed", "path", c.Request.URL.Path, "error", errCause(appErr))
			}
			response.Error(c, appErr)
			return
		}

		logger.Log.Error("unhandled error", "path", c.Request.URL.Path, "error", err.Error())
		response.Error(c, apperror.Internal(err))
	}
}

func errCause(appErr *apperror.AppError) string {
	if appErr.Err != nil {
		return appErr.Err.Error()
	}
	return appErr.Message
}
