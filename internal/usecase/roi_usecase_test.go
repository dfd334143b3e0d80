package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-demandflo-backend/internal/domain"
	"go-demandflo-backend/internal/usecase"
)

func TestRoiEstimate(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewRoiUsecase()

	t.Run("Matches the calculator's default scenario", func(t *testing.T) {
		report := uc.Estimate(ctx, &domain.RoiRequest{
			SDRSalary:           75000,
			AdditionalCosts:     35000,
			CurrentAppointments: 8,
			ContractValue:       15000,
			CloseRate:           25,
		})

		assert.InDelta(t, 9166.67, report.Current.MonthlyCost, 0.01)
		assert.InDelta(t, 1145.83, report.Current.CostPerAppointment, 0.01)
		assert.InDelta(t, 120000, report.Current.PipelineValue, 0.01)
		assert.InDelta(t, 30000, report.Current.ClosedValue, 0.01)

		// Program floor: at least 10 appointments at flat pricing.
		assert.InDelta(t, 4000, report.Program.MonthlyCost, 0.01)
		assert.InDelta(t, 10, report.Program.Appointments, 0.01)
		assert.InDelta(t, 400, report.Program.CostPerAppointment, 0.01)
		assert.InDelta(t, 837.5, report.Program.ROI, 0.01)

		assert.InDelta(t, 5166.67, report.MonthlySavings, 0.01)
		assert.InDelta(t, 62000, report.AnnualSavings, 0.01)
	})

	t.Run("Keeps the prospect's appointment count when above the floor", func(t *testing.T) {
		report := uc.Estimate(ctx, &domain.RoiRequest{
			SDRSalary:           75000,
			AdditionalCosts:     0,
			CurrentAppointments: 20,
			ContractValue:       10000,
			CloseRate:           20,
		})
		assert.InDelta(t, 20, report.Program.Appointments, 0.01)
	})

	t.Run("Zero appointments and zero cost never divide by zero", func(t *testing.T) {
		report := uc.Estimate(ctx, &domain.RoiRequest{
			SDRSalary:           1, // required field; effectively no spend
			CurrentAppointments: 0,
			ContractValue:       10000,
			CloseRate:           25,
		})
		assert.Zero(t, report.Current.CostPerAppointment)
		assert.InDelta(t, 10, report.Program.Appointments, 0.01)
	})
}
