package invoice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"github.com/fieldworks/contractor-billing/invoicing/domain"
	"github.com/fieldworks/contractor-billing/invoicing/model"
	"github.com/fieldworks/contractor-billing/invoicing/store"
	"github.com/fieldworks/contractor-billing/invoicing/store/invoices"
	"github.com/fieldworks/contractor-billing/invoicing/store/workorders"
)

const (
	contractorPeriodConstraint = "invoices_contractor_period_key"
	invoiceNumberConstraint    = "invoices_invoice_number_key"
	workOrderLinkConstraint    = "invoice_work_orders_work_order_key"
)

// GenerateMonthlyInvoice bills every eligible work order of a contractor for one period.
// "Nothing to bill" is reported as an unsuccessful outcome, not as an error.
func (b *business) GenerateMonthlyInvoice(ctx context.Context, params model.GenerateInvoiceParams) (*model.GenerationOutcome, error) {
	if err := params.Period.Validate(); err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	contractor, err := b.getContractor(ctx, params.ContractorID)
	if err != nil {
		return nil, err
	}

	number := domain.SynthesizeInvoiceNumber(model.InvoiceNumberInput{
		ContractorName: contractor.DisplayName,
		Region:         contractor.Region,
		RegistrationID: contractor.RegistrationID,
		Period:         params.Period,
	})

	var outcome *model.GenerationOutcome
	err = b.stateMachine.ExecuteInTx(ctx, func(tx *store.Store) error {
		// selected rows stay locked until commit: eligibility and amounts cannot move under the invoice
		dbOrders, txErr := tx.WorkOrders.LockEligibleWorkOrders(ctx, workorders.LockEligibleWorkOrdersParams{
			ContractorID:   store.UUID(params.ContractorID),
			PeriodStart:    store.Timestamptz(params.Period.Start()),
			PeriodEnd:      store.Timestamptz(params.Period.End()),
			PayReadySignal: string(b.payReady()),
		})
		if txErr != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to select eligible work orders"}
		}

		orders := convertDBWorkOrdersToModel(dbOrders)
		if len(orders) == 0 {
			outcome = model.NotGenerated(model.ReasonNoEligibleOrders)
			return nil
		}
		if model.SumPayable(orders).IsZero() {
			outcome = model.NotGenerated(model.ReasonZeroAmount)
			return nil
		}

		invoice, txErr := issueInvoice(ctx, tx, params, number, orders)
		if txErr != nil {
			return txErr
		}
		outcome = model.Generated(invoice)
		return nil
	})
	if err != nil {
		var dup *domain.DuplicatePeriodError
		if errors.As(err, &dup) {
			dup.ExistingInvoiceID = b.findInvoiceForPeriod(ctx, params.ContractorID, params.Period)
		}
		return nil, err
	}

	return outcome, nil
}

// issueInvoice writes the invoice, its link snapshot and the billed flags for orders.
// The total and every linked amount come from the same locked read.
func issueInvoice(ctx context.Context, tx *store.Store, params model.GenerateInvoiceParams, number string, orders []model.WorkOrder) (*model.Invoice, error) {
	total := model.SumPayable(orders)
	split, err := domain.SplitRetention(total)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]uuid.UUID, len(orders))
	amounts := make([]pgtype.Numeric, len(orders))
	for i, order := range orders {
		orderIDs[i] = order.ID
		amounts[i] = store.Numeric(order.Payable())
	}

	invoiceID := uuid.New()
	created, err := tx.Invoices.CreateInvoice(ctx, invoices.CreateInvoiceParams{
		ID:              store.UUID(invoiceID),
		InvoiceNumber:   number,
		ContractorID:    store.UUID(params.ContractorID),
		PeriodYear:      int32(params.Period.Year),
		PeriodMonth:     int32(params.Period.Month),
		TotalAmount:     store.Numeric(total),
		ImmediateAmount: store.Numeric(split.Immediate),
		ImmediateState:  string(model.ImmediateStatePending),
		RetainedAmount:  store.Numeric(split.Retained),
		RetainedState:   string(model.RetainedStateHold),
		CreatedBy:       params.ActingUserID,
	})
	if err != nil {
		return nil, classifyIssueError(err, params, number, len(orderIDs))
	}

	linked, err := tx.Invoices.LinkWorkOrders(ctx, invoices.LinkWorkOrdersParams{
		InvoiceID:      store.UUID(invoiceID),
		WorkOrderIds:   store.UUIDs(orderIDs),
		PayableAmounts: amounts,
	})
	if err != nil {
		return nil, classifyIssueError(err, params, number, len(orderIDs))
	}
	if linked != int64(len(orderIDs)) {
		return nil, &domain.ConcurrentBillingError{Selected: len(orderIDs), Marked: linked}
	}

	marked, err := tx.WorkOrders.MarkWorkOrdersBilled(ctx, workorders.MarkWorkOrdersBilledParams{
		InvoiceID: store.UUID(invoiceID),
		Ids:       store.UUIDs(orderIDs),
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to mark work orders billed"}
	}
	if marked != int64(len(orderIDs)) {
		return nil, &domain.ConcurrentBillingError{Selected: len(orderIDs), Marked: marked}
	}

	invoice := convertDBInvoiceToModel(created)
	invoice.LinkedOrders = orderIDs
	for i := range orders {
		orders[i].Billed = true
		orders[i].InvoiceID = &invoice.ID
	}
	invoice.WorkOrders = orders

	return invoice, nil
}

// classifyIssueError maps constraint violations raised while issuing an invoice
func classifyIssueError(err error, params model.GenerateInvoiceParams, number string, selected int) error {
	var e *pgconn.PgError
	if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
		switch e.ConstraintName {
		case contractorPeriodConstraint:
			return &domain.DuplicatePeriodError{ContractorID: params.ContractorID, Period: params.Period}
		case invoiceNumberConstraint:
			return &domain.DuplicateInvoiceNumberError{InvoiceNumber: number}
		case workOrderLinkConstraint:
			return &domain.ConcurrentBillingError{Selected: selected}
		}
		return &errs.Error{Code: errs.AlreadyExists, Message: "invoice is duplicated"}
	}

	return &errs.Error{Code: errs.Internal, Message: "failed to create invoice"}
}

// findInvoiceForPeriod is best effort: uuid.Nil when the lookup fails
func (b *business) findInvoiceForPeriod(ctx context.Context, contractorID uuid.UUID, period model.Period) uuid.UUID {
	existing, err := b.invoiceRepo.GetInvoiceByPeriod(ctx, invoices.GetInvoiceByPeriodParams{
		ContractorID: store.UUID(contractorID),
		PeriodYear:   int32(period.Year),
		PeriodMonth:  int32(period.Month),
	})
	if err != nil {
		return uuid.Nil
	}
	return store.FromUUID(existing.ID)
}
