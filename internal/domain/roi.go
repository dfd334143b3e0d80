package domain

import "context"

// RoiRequest holds the inputs of the ROI calculator: what the prospect spends
// on an in-house SDR today versus the program's flat monthly pricing.
type RoiRequest struct {
	SDRSalary           float64 `json:"sdrSalary" binding:"required,gte=0"`
	AdditionalCosts     float64 `json:"additionalCosts" binding:"gte=0"`
	CurrentAppointments float64 `json:"currentAppointments" binding:"gte=0"`
	ContractValue       float64 `json:"contractValue" binding:"required,gte=0"`
	CloseRate           float64 `json:"closeRate" binding:"gte=0,lte=100"`
}

// RoiModel is the derived economics of one acquisition model.
type RoiModel struct {
	MonthlyCost        float64 `json:"monthlyCost"`
	Appointments       float64 `json:"appointments"`
	CostPerAppointment float64 `json:"costPerAppointment"`
	PipelineValue      float64 `json:"pipelineValue"`
	ClosedValue        float64 `json:"closedValue"`
	ROI                float64 `json:"roi"`
}

// RoiReport compares the prospect's current model with the program model.
type RoiReport struct {
	Current        RoiModel `json:"current"`
	Program        RoiModel `json:"program"`
	MonthlySavings float64  `json:"monthlySavings"`
	AnnualSavings  float64  `json:"annualSavings"`
	CostEfficiency float64  `json:"costEfficiency"`
	RoiImprovement float64  `json:"roiImprovement"`
}

type RoiUsecase interface {
	Estimate(ctx context.Context, req *RoiRequest) *RoiReport
}
