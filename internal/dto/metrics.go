package dto

type StatusCountDTO struct {
	Status string `json:"status" example:"Approved"`
	Count  int    `json:"count" example:"8"`
}

type MetricsResponseDTO struct {
	Summary                []StatusCountDTO `json:"summary"`
	ApprovedLoanTotalValue int              `json:"approved_total_value" example:"3700000"`
	MeanLoanToValueRate    *int             `json:"mean_ltv,omitempty" example:"50"`
}
