package retention

import (
	"context"
	"time"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"github.com/fieldworks/contractor-billing/invoicing/domain"
	"github.com/fieldworks/contractor-billing/invoicing/model"
	"github.com/fieldworks/contractor-billing/invoicing/store"
	"github.com/fieldworks/contractor-billing/invoicing/store/invoices"
)

// EvaluateRetention re-checks one invoice under its row lock and releases the
// retained tranche (HOLD -> ELIGIBLE) when every linked work order passed head-office approval.
// The state and maturity are re-read under the lock, so overlapping sweeps are harmless.
func (b *business) EvaluateRetention(ctx context.Context, invoiceID uuid.UUID, asOf time.Time) (*model.RetentionResult, error) {
	result := &model.RetentionResult{InvoiceID: invoiceID}

	err := b.stateMachine.GetInvoiceWithLock(ctx, invoiceID, func(current invoices.Invoice, tx *store.Store) error {
		if state := model.RetainedState(current.RetainedState); state != model.RetainedStateHold {
			result.Outcome = model.RetentionSkipped
			result.Detail = "retained tranche is " + string(state)
			return nil
		}

		if !domain.IsMature(current.CreatedAt.Time, asOf) {
			result.Outcome = model.RetentionNotMature
			return nil
		}

		rows, err := tx.WorkOrders.ListHeadOfficeApprovalsByInvoice(ctx, current.ID)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to load head-office approvals"}
		}

		signals := make([]model.ApprovalSignal, len(rows))
		for i, row := range rows {
			signals[i] = model.ApprovalSignal(row.HeadOfficeApproval)
		}

		result.Outcome, result.Detail = domain.EvaluateHeadOfficeApprovals(signals)
		if result.Outcome != model.RetentionReleased {
			return nil
		}

		if _, err := domain.AdvanceRetained(ctx, tx.Invoices, current, model.RetainedStateEligible); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
