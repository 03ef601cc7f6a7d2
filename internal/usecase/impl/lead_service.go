package impl

import (
	"context"
	"log/slog"

	deliverycontext "teamed/internal/delivery/context"
	"teamed/internal/domain/entity"
	"teamed/internal/domain/repository"
	"teamed/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// leadService implements the LeadUsecase interface.
type leadService struct {
	leadRepo repository.LeadRepository
	logger   *slog.Logger
}

// LeadServiceParams holds dependencies for leadService, injected by Fx.
type LeadServiceParams struct {
	fx.In

	LeadRepo repository.LeadRepository
	Logger   *slog.Logger
}

// NewLeadService is the constructor for leadService.
func NewLeadService(params LeadServiceParams) usecase.LeadUsecase {
	return &leadService{
		leadRepo: params.LeadRepo,
		logger:   params.Logger,
	}
}

func (srv *leadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddLead records a new sales lead unconditionally. There is no duplicate
// detection and no estimate-range check; the pipeline accepts what sales
// submitted.
func (srv *leadService) AddLead(ctx context.Context, input *usecase.AddLeadInput) (*usecase.AddLeadOutput, error) {
	lead := &entity.Lead{
		Name:          input.Name,
		Description:   input.Description,
		UpperEstimate: input.UpperEstimate,
		LowerEstimate: input.LowerEstimate,
		ClosingDate:   input.ClosingDate,
		Status:        input.Status,
	}

	if err := srv.leadRepo.Create(ctx, lead); err != nil {
		srv.log(ctx).Error("Failed to create lead", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create lead")
	}

	srv.log(ctx).Info("Lead recorded", slog.Int64("leadID", lead.ID), slog.String("name", lead.Name))

	return &usecase.AddLeadOutput{Lead: *lead}, nil
}

// ListLeads returns every stored lead in storage order.
func (srv *leadService) ListLeads(ctx context.Context) ([]entity.Lead, error) {
	leads, err := srv.leadRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list leads", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list leads")
	}

	return leads, nil
}
