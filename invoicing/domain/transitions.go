package domain

import (
	"context"

	"github.com/fieldworks/contractor-billing/invoicing/model"
	"github.com/fieldworks/contractor-billing/invoicing/store/invoices"
)

var retainedNext = map[model.RetainedState]model.RetainedState{
	model.RetainedStateHold:     model.RetainedStateEligible,
	model.RetainedStateEligible: model.RetainedStatePaid,
}

var immediateNext = map[model.ImmediateState]model.ImmediateState{
	model.ImmediateStatePending: model.ImmediateStatePaid,
}

// CanAdvanceRetained reports whether the retained tranche may move from -> to.
// Only single forward steps are allowed: HOLD -> ELIGIBLE -> PAID.
func CanAdvanceRetained(from, to model.RetainedState) bool {
	next, ok := retainedNext[from]
	return ok && next == to
}

func CanAdvanceImmediate(from, to model.ImmediateState) bool {
	next, ok := immediateNext[from]
	return ok && next == to
}

// AdvanceRetained moves the locked invoice's retained tranche to the given state.
func AdvanceRetained(ctx context.Context, q invoices.Querier, current invoices.Invoice, to model.RetainedState) (invoices.Invoice, error) {
	from := model.RetainedState(current.RetainedState)
	if !CanAdvanceRetained(from, to) {
		return invoices.Invoice{}, &InvalidTransitionError{Field: "retained_state", From: string(from), To: string(to)}
	}

	return q.UpdateRetainedState(ctx, invoices.UpdateRetainedStateParams{
		ID:            current.ID,
		RetainedState: string(to),
	})
}

// AdvanceImmediate moves the locked invoice's immediate tranche to the given state.
func AdvanceImmediate(ctx context.Context, q invoices.Querier, current invoices.Invoice, to model.ImmediateState) (invoices.Invoice, error) {
	from := model.ImmediateState(current.ImmediateState)
	if !CanAdvanceImmediate(from, to) {
		return invoices.Invoice{}, &InvalidTransitionError{Field: "immediate_state", From: string(from), To: string(to)}
	}

	return q.UpdateImmediateState(ctx, invoices.UpdateImmediateStateParams{
		ID:             current.ID,
		ImmediateState: string(to),
	})
}
