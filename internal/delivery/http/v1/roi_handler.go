package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-demandflo-backend/internal/delivery/http/response"
	"go-demandflo-backend/internal/domain"
	"go-demandflo-backend/pkg/apperror"
	"go-demandflo-backend/pkg/validation"
)

type RoiHandler struct {
	roiUC domain.RoiUsecase
}

func NewRoiHandler(public *gin.RouterGroup, roiUC domain.RoiUsecase) {
	handler := &RoiHandler{roiUC: roiUC}

	public.POST("/roi/estimate", handler.Estimate)
}

// Estimate godoc
// @Summary      Estimate ROI impact
// @Description  Compares the prospect's current SDR economics with the program model. Stateless.
// @Tags         roi
// @Accept       json
// @Produce      json
// @Param        inputs  body      domain.RoiRequest  true  "Calculator inputs"
// @Success      200     {object}  domain.RoiReport
// @Failure      400     {object}  response.ErrorBody
// @Router       /roi/estimate [post]
func (h *RoiHandler) Estimate(c *gin.Context) {
	var req domain.RoiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.Validation("Invalid calculator inputs", validation.FormatValidationErrors(err)))
		return
	}

	response.JSON(c, http.StatusOK, h.roiUC.Estimate(c.Request.Context(), &req))
}
