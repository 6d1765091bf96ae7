package invoice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"github.com/fieldworks/contractor-billing/invoicing/model"
	"github.com/fieldworks/contractor-billing/invoicing/store"
)

// GetInvoice retrieves an invoice with its linked work orders
func (b *business) GetInvoice(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	dbInvoice, err := b.invoiceRepo.GetInvoice(ctx, store.UUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get invoice"}
	}

	invoice := convertDBInvoiceToModel(dbInvoice)

	dbOrders, err := b.workOrderRepo.ListWorkOrdersByInvoice(ctx, dbInvoice.ID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get linked work orders"}
	}

	invoice.WorkOrders = make([]model.WorkOrder, len(dbOrders))
	invoice.LinkedOrders = make([]uuid.UUID, len(dbOrders))
	for i, dbOrder := range dbOrders {
		invoice.WorkOrders[i] = convertDBWorkOrderToModel(dbOrder)
		invoice.LinkedOrders[i] = invoice.WorkOrders[i].ID
	}

	return invoice, nil
}
