package response

import (
	"github.com/gin-gonic/gin"

	"go-demandflo-backend/pkg/apperror"
)

// ErrorBody is the single error envelope every route uses:
// {"error": {"kind": "...", "message": "...", "fields": [...]}}
type ErrorBody struct {
	Error *apperror.AppError `json:"error"`
}

// JSON writes a success payload as-is (object or array), matching the wire
// shapes the frontend consumes.
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Error writes the canonical error envelope.
func Error(c *gin.Context, appErr *apperror.AppError) {
	c.JSON(appErr.Code, ErrorBody{Error: appErr})
}
