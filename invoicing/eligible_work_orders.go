package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/fieldworks/contractor-billing/invoicing/model"
)

type EligibleWorkOrdersRequest struct {
	Year  int `query:"year" validate:"required,min=2000,max=9999"`
	Month int `query:"month" validate:"required,min=1,max=12"`
}

type EligibleWorkOrdersResponse struct {
	WorkOrders []model.WorkOrder `json:"work_orders"`
	Total      string            `json:"total"`
}

// EligibleWorkOrders previews what GenerateInvoice would bill for the period.
//
//encore:api public path=/v1/contractors/:contractorID/eligible-work-orders method=GET
func (s *Service) EligibleWorkOrders(ctx context.Context, contractorID string, req *EligibleWorkOrdersRequest) (*EligibleWorkOrdersResponse, error) {
	id, err := parseID(contractorID, "contractor ID")
	if err != nil {
		return nil, err
	}

	period, err := model.NewPeriod(req.Year, req.Month)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	orders, err := s.business.SelectEligibleWorkOrders(ctx, id, period)
	if err != nil {
		rlog.Error("failed to select eligible work orders", "error", err, "contractor_id", contractorID)
		return nil, toAPIError(err)
	}

	if orders == nil {
		orders = []model.WorkOrder{}
	}

	return &EligibleWorkOrdersResponse{
		WorkOrders: orders,
		Total:      model.SumPayable(orders).StringFixed(2),
	}, nil
}

// Validate implements validation for EligibleWorkOrdersRequest
func (r *EligibleWorkOrdersRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
