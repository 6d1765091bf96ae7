package invoice

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"github.com/fieldworks/contractor-billing/invoicing/model"
	"github.com/fieldworks/contractor-billing/invoicing/store"
	"github.com/fieldworks/contractor-billing/invoicing/store/invoices"
)

// ListInvoices pages through invoices, newest first. uuid.Nil lists every contractor.
func (b *business) ListInvoices(ctx context.Context, contractorID uuid.UUID, limit, offset int32) ([]*model.Invoice, int64, error) {
	filter := store.NullableUUID(contractorID)

	dbInvoices, err := b.invoiceRepo.ListInvoices(ctx, invoices.ListInvoicesParams{
		ContractorID: filter,
		RowLimit:     limit,
		RowOffset:    offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list invoices"}
	}

	total, err := b.invoiceRepo.CountInvoices(ctx, filter)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count invoices"}
	}

	result := make([]*model.Invoice, len(dbInvoices))
	for i, dbInvoice := range dbInvoices {
		result[i] = convertDBInvoiceToModel(dbInvoice)
	}

	return result, total, nil
}
