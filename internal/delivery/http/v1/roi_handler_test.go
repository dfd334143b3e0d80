package v1_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-demandflo-backend/internal/domain"
)

func TestRoiEstimateEndpoint(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Returns a full report for a typical prospect", func(t *testing.T) {
		w := do(router, http.MethodPost, "/api/roi/estimate", gin.H{
			"sdrSalary":           75000,
			"additionalCosts":     35000,
			"currentAppointments": 8,
			"contractValue":       15000,
			"closeRate":           25,
		}, false)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var report domain.RoiReport
		decode(t, w, &report)
		assert.InDelta(t, 9166.67, report.Current.MonthlyCost, 0.01)
		assert.InDelta(t, 4000, report.Program.MonthlyCost, 0.01)
		assert.InDelta(t, 5166.67, report.MonthlySavings, 0.01)
	})

	t.Run("Rejects a close rate above 100", func(t *testing.T) {
		w := do(router, http.MethodPost, "/api/roi/estimate", gin.H{
			"sdrSalary":     75000,
			"contractValue": 15000,
			"closeRate":     140,
		}, false)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"closeRate"`)
	})

	t.Run("Requires salary and contract value", func(t *testing.T) {
		w := do(router, http.MethodPost, "/api/roi/estimate", gin.H{
			"closeRate": 25,
		}, false)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"sdrSalary"`)
		assert.Contains(t, w.Body.String(), `"contractValue"`)
	})
}
