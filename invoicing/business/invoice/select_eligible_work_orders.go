package invoice

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"github.com/fieldworks/contractor-billing/invoicing/model"
	"github.com/fieldworks/contractor-billing/invoicing/store"
	"github.com/fieldworks/contractor-billing/invoicing/store/workorders"
)

// SelectEligibleWorkOrders returns the completed, pay-ready, unbilled work orders of a
// contractor whose completion date falls inside the period. No match is an empty slice.
func (b *business) SelectEligibleWorkOrders(ctx context.Context, contractorID uuid.UUID, period model.Period) ([]model.WorkOrder, error) {
	dbOrders, err := b.workOrderRepo.ListEligibleWorkOrders(ctx, workorders.ListEligibleWorkOrdersParams{
		ContractorID:   store.UUID(contractorID),
		PeriodStart:    store.Timestamptz(period.Start()),
		PeriodEnd:      store.Timestamptz(period.End()),
		PayReadySignal: string(b.payReady()),
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to select eligible work orders"}
	}

	return convertDBWorkOrdersToModel(dbOrders), nil
}
