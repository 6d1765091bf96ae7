package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/fieldworks/contractor-billing/invoicing/model"
)

type RecordPaymentRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Tranche string `json:"tranche" validate:"required,oneof=immediate retained"`
}

type RecordPaymentResponse struct {
	Invoice *model.Invoice `json:"invoice"`
}

// RecordPayment settles one tranche of an invoice.
//
//encore:api public path=/v1/invoices/:id/payments method=POST tag:idempotency
func (s *Service) RecordPayment(ctx context.Context, id string, req *RecordPaymentRequest) (*RecordPaymentResponse, error) {
	invoiceID, err := parseID(id, "invoice ID")
	if err != nil {
		return nil, err
	}

	invoice, err := s.business.RecordPayment(ctx, invoiceID, model.Tranche(req.Tranche))
	if err != nil {
		rlog.Error("failed to record payment", "error", err, "invoice_id", id, "tranche", req.Tranche)
		return nil, toAPIError(err)
	}

	rlog.Info("payment recorded",
		"invoice_id", id,
		"tranche", req.Tranche,
		"immediate_state", invoice.ImmediateState,
		"retained_state", invoice.RetainedState,
	)

	return &RecordPaymentResponse{Invoice: invoice}, nil
}

// Validate implements validation for RecordPaymentRequest using go-playground/validator
func (r *RecordPaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
