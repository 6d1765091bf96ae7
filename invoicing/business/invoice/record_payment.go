package invoice

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"github.com/fieldworks/contractor-billing/invoicing/domain"
	"github.com/fieldworks/contractor-billing/invoicing/model"
	"github.com/fieldworks/contractor-billing/invoicing/store"
	"github.com/fieldworks/contractor-billing/invoicing/store/invoices"
)

// RecordPayment marks one tranche of an invoice as paid. Paying an already paid
// tranche is a no-op; the retained tranche can only be paid once it is eligible.
func (b *business) RecordPayment(ctx context.Context, id uuid.UUID, tranche model.Tranche) (*model.Invoice, error) {
	var updated invoices.Invoice

	err := b.stateMachine.GetInvoiceWithLock(ctx, id, func(current invoices.Invoice, tx *store.Store) error {
		var err error

		switch tranche {
		case model.TrancheImmediate:
			if current.ImmediateState == string(model.ImmediateStatePaid) {
				updated = current
				return nil
			}
			updated, err = domain.AdvanceImmediate(ctx, tx.Invoices, current, model.ImmediateStatePaid)

		case model.TrancheRetained:
			switch model.RetainedState(current.RetainedState) {
			case model.RetainedStatePaid:
				updated = current
				return nil
			case model.RetainedStateHold:
				return &errs.Error{Code: errs.FailedPrecondition, Message: "retained tranche is still on hold"}
			}
			updated, err = domain.AdvanceRetained(ctx, tx.Invoices, current, model.RetainedStatePaid)

		default:
			return &errs.Error{Code: errs.InvalidArgument, Message: "unknown tranche"}
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	return convertDBInvoiceToModel(updated), nil
}
