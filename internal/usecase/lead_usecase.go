package usecase

import (
	"context"

	"teamed/internal/domain/entity"
)

// AddLeadInput defines the data required to record a new sales lead.
// Estimate ordering and date format are accepted as submitted; the source of
// truth for leads is whatever sales entered.
type AddLeadInput struct {
	Name          string
	Description   string
	UpperEstimate int64
	LowerEstimate int64
	ClosingDate   string
	Status        entity.LeadStatus
}

// AddLeadOutput returns the stored lead including its assigned ID.
type AddLeadOutput struct {
	Lead entity.Lead
}

// LeadUsecase defines the contract for lead tracking operations.
type LeadUsecase interface {
	AddLead(ctx context.Context, input *AddLeadInput) (*AddLeadOutput, error)
	ListLeads(ctx context.Context) ([]entity.Lead, error)
}
