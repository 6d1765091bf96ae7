package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/fieldworks/contractor-billing/invoicing/model"
)

type GenerateInvoiceRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Year         int    `json:"year" validate:"required,min=2000,max=9999"`
	Month        int    `json:"month" validate:"required,min=1,max=12"`
	ActingUserID string `json:"acting_user_id" validate:"required,max=100"`
}

type GenerateInvoiceResponse struct {
	Success bool           `json:"success"`
	Reason  string         `json:"reason,omitempty"`
	Invoice *model.Invoice `json:"invoice,omitempty"`
}

// GenerateInvoice bills a contractor's eligible work orders for one month.
// success=false with a reason means there was nothing to bill.
//
//encore:api public path=/v1/contractors/:contractorID/invoices method=POST tag:idempotency
func (s *Service) GenerateInvoice(ctx context.Context, contractorID string, req *GenerateInvoiceRequest) (*GenerateInvoiceResponse, error) {
	id, err := parseID(contractorID, "contractor ID")
	if err != nil {
		return nil, err
	}

	period, err := model.NewPeriod(req.Year, req.Month)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	outcome, err := s.business.GenerateMonthlyInvoice(ctx, model.GenerateInvoiceParams{
		ContractorID: id,
		Period:       period,
		ActingUserID: req.ActingUserID,
	})
	if err != nil {
		rlog.Error("failed to generate invoice", "error", err, "contractor_id", contractorID, "period", period.String())
		return nil, toAPIError(err)
	}

	if !outcome.Success {
		rlog.Info("no invoice generated", "contractor_id", contractorID, "period", period.String(), "reason", outcome.Reason)
		return &GenerateInvoiceResponse{Success: false, Reason: outcome.Reason}, nil
	}

	rlog.Info("invoice generated",
		"invoice_id", outcome.Invoice.ID,
		"invoice_number", outcome.Invoice.InvoiceNumber,
		"contractor_id", contractorID,
		"period", period.String(),
		"work_orders", len(outcome.Invoice.LinkedOrders),
		"acting_user_id", req.ActingUserID,
	)

	return &GenerateInvoiceResponse{
		Success: true,
		Invoice: outcome.Invoice,
	}, nil
}

// Validate implements validation for GenerateInvoiceRequest using go-playground/validator
func (r *GenerateInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
