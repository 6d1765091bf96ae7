package workflow

import (
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/fieldworks/contractor-billing/invoicing/model"
)

// RetentionSweepParams contains parameters for a sweep run. A zero AsOf means "now".
type RetentionSweepParams struct {
	AsOf time.Time `json:"as_of"`
}

type RetentionSweepResult struct {
	AsOf    time.Time               `json:"as_of"`
	Results []model.RetentionResult `json:"results"`
}

// Released counts the invoices moved to eligible by the sweep
func (r *RetentionSweepResult) Released() int {
	var n int
	for _, res := range r.Results {
		if res.Outcome == model.RetentionReleased {
			n++
		}
	}
	return n
}

// RetentionSweep re-evaluates every matured held invoice, one activity per invoice.
// A failing invoice is reported as failed and does not stop the rest of the batch.
func RetentionSweep(ctx workflow.Context, params RetentionSweepParams) (*RetentionSweepResult, error) {
	logger := workflow.GetLogger(ctx)

	asOf := params.AsOf
	if asOf.IsZero() {
		asOf = workflow.Now(ctx)
	}
	logger.Info("Starting retention sweep", "asOf", asOf)

	var invoiceIDs []uuid.UUID
	if err := listMaturedInvoices(ctx, asOf).Get(ctx, &invoiceIDs); err != nil {
		logger.Error("Failed to list matured invoices", "error", err)
		return nil, err
	}

	result := &RetentionSweepResult{
		AsOf:    asOf,
		Results: make([]model.RetentionResult, 0, len(invoiceIDs)),
	}

	for _, invoiceID := range invoiceIDs {
		var evaluated model.RetentionResult
		if err := evaluateRetention(ctx, invoiceID, asOf).Get(ctx, &evaluated); err != nil {
			logger.Error("Retention evaluation failed", "invoiceID", invoiceID, "error", err)
			result.Results = append(result.Results, model.RetentionResult{
				InvoiceID: invoiceID,
				Outcome:   model.RetentionFailed,
				Detail:    err.Error(),
			})
			continue
		}
		result.Results = append(result.Results, evaluated)
	}

	logger.Info("Retention sweep completed", "evaluated", len(result.Results), "released", result.Released())
	return result, nil
}

// listMaturedInvoices executes the ListMaturedInvoices activity
func listMaturedInvoices(ctx workflow.Context, asOf time.Time) workflow.Future {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, ListMaturedInvoicesActivity, asOf)
}

// evaluateRetention executes the EvaluateRetention activity for a single invoice
func evaluateRetention(ctx workflow.Context, invoiceID uuid.UUID, asOf time.Time) workflow.Future {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    500 * time.Millisecond,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, EvaluateRetentionActivity, invoiceID, asOf)
}
