package domain

import (
	"fmt"
	"time"

	"github.com/fieldworks/contractor-billing/invoicing/model"
)

// RetentionMaturityMonths is how long a retained tranche stays on hold before it is re-evaluated.
const RetentionMaturityMonths = 6

// MaturityCutoff returns the latest creation time at which an invoice counts as matured at asOf.
func MaturityCutoff(asOf time.Time) time.Time {
	return asOf.AddDate(0, -RetentionMaturityMonths, 0)
}

func IsMature(createdAt, asOf time.Time) bool {
	return !createdAt.After(MaturityCutoff(asOf))
}

// EvaluateHeadOfficeApprovals decides the retention outcome for the head-office
// approvals of an invoice's linked work orders. Only an all-PASS set releases.
func EvaluateHeadOfficeApprovals(signals []model.ApprovalSignal) (model.RetentionOutcome, string) {
	if len(signals) == 0 {
		return model.RetentionPending, "no linked work orders"
	}

	var rejected, pending int
	for _, s := range signals {
		switch s {
		case model.ApprovalPass:
		case model.ApprovalRejected:
			rejected++
		default:
			pending++
		}
	}

	switch {
	case rejected > 0:
		return model.RetentionRejected, fmt.Sprintf("%d of %d linked work orders rejected by head office", rejected, len(signals))
	case pending > 0:
		return model.RetentionPending, fmt.Sprintf("%d of %d linked work orders awaiting head-office approval", pending, len(signals))
	default:
		return model.RetentionReleased, ""
	}
}
