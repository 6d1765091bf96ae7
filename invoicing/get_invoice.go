package invoicing

import (
	"context"

	"encore.dev/rlog"

	"github.com/fieldworks/contractor-billing/invoicing/model"
)

type GetInvoiceResponse struct {
	Invoice *model.Invoice `json:"invoice"`
}

// encore:api public path=/v1/invoices/:id method=GET
func (s *Service) GetInvoice(ctx context.Context, id string) (*GetInvoiceResponse, error) {
	invoiceID, err := parseID(id, "invoice ID")
	if err != nil {
		return nil, err
	}

	invoice, err := s.business.GetInvoice(ctx, invoiceID)
	if err != nil {
		rlog.Error("failed to get invoice", "error", err, "invoice_id", id)
		return nil, toAPIError(err)
	}

	return &GetInvoiceResponse{Invoice: invoice}, nil
}
