package dto

import "time"

type ApplyRequestDTO struct {
	LoanAmount  int32 `json:"loan_amount" example:"200000"`
	AssetValue  int32 `json:"asset_value" example:"400000"`
	CreditScore int16 `json:"credit_score" example:"900"`
}

type ProcessedResponseDTO struct {
	LoanAmount      int    `json:"loan_amount" example:"200000"`
	AssetValue      int    `json:"asset_value" example:"400000"`
	CreditScore     int    `json:"credit_score" example:"900"`
	LoanToValueRate int    `json:"ltv" example:"50"`
	Status          string `json:"status" example:"Approved"`
	Reason          string `json:"reason,omitempty" example:"Loan amount requested is not allowed."`
}

type GetApplicationsResponseDTO struct {
	ID              string    `json:"id" example:"5f0c2b8e-4d8a-4a55-9a43-0d8f6f1b2c3d"`
	LoanAmount      int       `json:"loan_amount" example:"200000"`
	AssetValue      int       `json:"asset_value" example:"400000"`
	CreditScore     int       `json:"credit_score" example:"900"`
	LoanToValueRate int       `json:"ltv" example:"50"`
	Status          string    `json:"status" example:"Approved"`
	CreatedAt       time.Time `json:"created_at" example:"2024-05-01T10:00:00Z"`
}
