package postgres

import (
	"context"

	"teamed/internal/domain/entity"
	domainerrors "teamed/internal/domain/errors"
	"teamed/internal/domain/repository"
	"teamed/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// leadRepository implements the repository.LeadRepository interface using GORM.
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository is the constructor for leadRepository.
func NewLeadRepository(db *gorm.DB) repository.LeadRepository {
	return &leadRepository{
		db: db,
	}
}

// Create persists a new lead and fills in the assigned ID.
func (repo *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	leadM := fromLeadDomain(lead)

	if err := repo.db.WithContext(ctx).Create(leadM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required lead field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create lead")
	}

	lead.ID = leadM.ID

	return nil
}

// ListAll returns every stored lead in storage order.
func (repo *leadRepository) ListAll(ctx context.Context) ([]entity.Lead, error) {
	var leadMs []model.LeadModel

	if err := repo.db.WithContext(ctx).Find(&leadMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list leads")
	}

	leads := make([]entity.Lead, 0, len(leadMs))
	for i := range leadMs {
		leads = append(leads, *toLeadDomain(&leadMs[i]))
	}

	return leads, nil
}

// toLeadDomain converts a GORM LeadModel to a domain Lead entity.
func toLeadDomain(data *model.LeadModel) *entity.Lead {
	if data == nil {
		return nil
	}

	return &entity.Lead{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		UpperEstimate: data.UpperEstimate,
		LowerEstimate: data.LowerEstimate,
		ClosingDate:   data.ClosingDate,
		Status:        entity.LeadStatus(data.Status),
	}
}

// fromLeadDomain converts a domain Lead entity to a GORM LeadModel for persistence.
func fromLeadDomain(data *entity.Lead) *model.LeadModel {
	if data == nil {
		return nil
	}

	return &model.LeadModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		UpperEstimate: data.UpperEstimate,
		LowerEstimate: data.LowerEstimate,
		ClosingDate:   data.ClosingDate,
		Status:        string(data.Status),
	}
}
