package repository

import (
	"context"

	"teamed/internal/domain/entity"
)

// LeadRepository defines the operations for lead persistence. Leads are
// append-only: no caller updates or deletes them.
type LeadRepository interface {
	// Create persists a new lead and fills in the assigned ID.
	Create(ctx context.Context, lead *entity.Lead) error

	// ListAll returns every stored lead in storage order.
	ListAll(ctx context.Context) ([]entity.Lead, error)
}
