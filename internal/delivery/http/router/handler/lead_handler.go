package handler

import (
	"log/slog"
	"net/http"

	"teamed/internal/delivery/http/response"
	"teamed/internal/domain/entity"
	"teamed/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LeadHandler holds dependencies for lead-related handlers.
type LeadHandler struct {
	uc     usecase.LeadUsecase
	logger *slog.Logger
}

// NewLeadHandler is the constructor for LeadHandler, injected by Fx.
func NewLeadHandler(uc usecase.LeadUsecase, logger *slog.Logger) *LeadHandler {
	return &LeadHandler{
		uc:     uc,
		logger: logger,
	}
}

// Estimates are pointers so a submitted zero survives the required check;
// only an absent field fails validation.
type addLeadRequest struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description" validate:"required"`
	UpperEstimate *int64 `json:"upper_estimate" validate:"required"`
	LowerEstimate *int64 `json:"lower_estimate" validate:"required"`
	ClosingDate   string `json:"closing_date" validate:"required"`
	Status        string `json:"status" validate:"required"`
}

type leadResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	UpperEstimate int64  `json:"upper_estimate"`
	LowerEstimate int64  `json:"lower_estimate"`
	ClosingDate   string `json:"closing_date"`
	Status        string `json:"status"`
}

func toLeadResponse(l entity.Lead) leadResponse {
	return leadResponse{
		ID:            l.ID,
		Name:          l.Name,
		Description:   l.Description,
		UpperEstimate: l.UpperEstimate,
		LowerEstimate: l.LowerEstimate,
		ClosingDate:   l.ClosingDate,
		Status:        string(l.Status),
	}
}

// AddLead handles the recording of a new sales lead.
func (h *LeadHandler) AddLead(c echo.Context) error {
	var req addLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid lead input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	_, err := h.uc.AddLead(c.Request().Context(), &usecase.AddLeadInput{
		Name:          req.Name,
		Description:   req.Description,
		UpperEstimate: *req.UpperEstimate,
		LowerEstimate: *req.LowerEstimate,
		ClosingDate:   req.ClosingDate,
		Status:        entity.LeadStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Lead added successfully")
}

// ListLeads handles the listing of all leads.
func (h *LeadHandler) ListLeads(c echo.Context) error {
	leads, err := h.uc.ListLeads(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]leadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, toLeadResponse(l))
	}

	return response.Payload(c, http.StatusOK, "leads", out)
}
