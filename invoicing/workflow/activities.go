package workflow

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"

	"github.com/fieldworks/contractor-billing/invoicing/business/retention"
	"github.com/fieldworks/contractor-billing/invoicing/domain"
	"github.com/fieldworks/contractor-billing/invoicing/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	RetentionBusiness retention.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(retentionBusiness retention.Business) {
	activityDeps = &ActivityDependencies{
		RetentionBusiness: retentionBusiness,
	}
}

func dependenciesReady() bool {
	return activityDeps != nil && activityDeps.RetentionBusiness != nil
}

// ListMaturedInvoicesActivity lists the invoices whose retained tranche is due for re-evaluation
func ListMaturedInvoicesActivity(ctx context.Context, asOf time.Time) ([]uuid.UUID, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Listing matured invoices", "asOf", asOf)

	if !dependenciesReady() {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	ids, err := activityDeps.RetentionBusiness.ListMaturedInvoices(ctx, asOf)
	if err != nil {
		logger.Error("Failed to list matured invoices", "error", err)
		return nil, err
	}

	logger.Info("Listed matured invoices", "count", len(ids))
	return ids, nil
}

// EvaluateRetentionActivity evaluates one held invoice inside its own transaction
func EvaluateRetentionActivity(ctx context.Context, invoiceID uuid.UUID, asOf time.Time) (*model.RetentionResult, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Evaluating retention", "invoiceID", invoiceID)

	if !dependenciesReady() {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	result, err := activityDeps.RetentionBusiness.EvaluateRetention(ctx, invoiceID, asOf)
	if err != nil {
		logger.Error("Failed to evaluate retention", "invoiceID", invoiceID, "error", err)
		if isPermanent(err) {
			return nil, temporal.NewNonRetryableApplicationError("failed to evaluate retention", "RETENTION_EVALUATION_FAILED", err)
		}
		return nil, err
	}

	logger.Info("Evaluated retention", "invoiceID", invoiceID, "outcome", result.Outcome)
	return result, nil
}

// isPermanent reports errors that a retry cannot fix
func isPermanent(err error) bool {
	var transition *domain.InvalidTransitionError
	if errors.As(err, &transition) {
		return true
	}

	var e *errs.Error
	if errors.As(err, &e) {
		switch e.Code {
		case errs.NotFound, errs.InvalidArgument, errs.FailedPrecondition:
			return true
		}
	}
	return false
}
