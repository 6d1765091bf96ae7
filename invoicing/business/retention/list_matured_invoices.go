package retention

import (
	"context"
	"time"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"github.com/fieldworks/contractor-billing/invoicing/domain"
	"github.com/fieldworks/contractor-billing/invoicing/store"
)

// ListMaturedInvoices returns the invoices still on hold whose maturity window has passed at asOf
func (b *business) ListMaturedInvoices(ctx context.Context, asOf time.Time) ([]uuid.UUID, error) {
	ids, err := b.invoiceRepo.ListMaturedHoldInvoiceIDs(ctx, store.Timestamptz(domain.MaturityCutoff(asOf)))
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list matured invoices"}
	}

	result := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		result[i] = store.FromUUID(id)
	}

	return result, nil
}
