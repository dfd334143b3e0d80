package usecase

import (
	"context"

	"go-demandflo-backend/internal/domain"
)

// Program pricing constants mirrored by the marketing site's calculator page.
const (
	programMonthlyCost     = 4000
	programMinAppointments = 10
)

type roiUsecase struct{}

func NewRoiUsecase() domain.RoiUsecase {
	return &roiUsecase{}
}

// Estimate compares the prospect's current SDR economics with the program
// model. Pure arithmetic over the request; holds no state.
func (u *roiUsecase) Estimate(ctx context.Context, req *domain.RoiRequest) *domain.RoiReport {
	closeRate := req.CloseRate / 100

	current := domain.RoiModel{
		MonthlyCost:  (req.SDRSalary + req.AdditionalCosts) / 12,
		Appointments: req.CurrentAppointments,
	}
	if current.Appointments > 0 {
		current.CostPerAppointment = current.MonthlyCost / current.Appointments
	}
	current.PipelineValue = current.Appointments * req.ContractValue
	current.ClosedValue = current.PipelineValue * closeRate
	if current.MonthlyCost > 0 {
		current.ROI = (current.ClosedValue - current.MonthlyCost) / current.MonthlyCost * 100
	}

	program := domain.RoiModel{
		MonthlyCost:  programMonthlyCost,
		Appointments: req.CurrentAppointments,
	}
	if program.Appointments < programMinAppointments {
		program.Appointments = programMinAppointments
	}
	program.CostPerAppointment = program.MonthlyCost / program.Appointments
	program.PipelineValue = program.Appointments * req.ContractValue
	program.ClosedValue = program.PipelineValue * closeRate
	program.ROI = (program.ClosedValue - program.MonthlyCost) / program.MonthlyCost * 100

	report := &domain.RoiReport{
		Current:        current,
		Program:        program,
		MonthlySavings: current.MonthlyCost - program.MonthlyCost,
		RoiImprovement: program.ROI - current.ROI,
	}
	report.AnnualSavings = report.MonthlySavings * 12
	if current.CostPerAppointment > 0 {
		report.CostEfficiency = (current.CostPerAppointment - program.CostPerAppointment) / current.CostPerAppointment * 100
	}
	return report
}
