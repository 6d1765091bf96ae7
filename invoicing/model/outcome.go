package model

import "github.com/google/uuid"

const (
	ReasonNoEligibleOrders = "no eligible orders"
	ReasonZeroAmount       = "zero amount"
)

type GenerateInvoiceParams struct {
	ContractorID uuid.UUID
	Period       Period
	ActingUserID string
}

// GenerationOutcome is either a created invoice or a soft, non-error refusal.
type GenerationOutcome struct {
	Success bool     `json:"success"`
	Reason  string   `json:"reason,omitempty"`
	Invoice *Invoice `json:"invoice,omitempty"`
}

func Generated(invoice *Invoice) *GenerationOutcome {
	return &GenerationOutcome{Success: true, Invoice: invoice}
}

func NotGenerated(reason string) *GenerationOutcome {
	return &GenerationOutcome{Success: false, Reason: reason}
}

type RetentionOutcome string

const (
	// RetentionReleased: the retained tranche moved HOLD -> ELIGIBLE.
	RetentionReleased RetentionOutcome = "released"
	// RetentionPending: some linked order is still awaiting head-office approval.
	RetentionPending RetentionOutcome = "pending"
	// RetentionRejected: at least one linked order was rejected; the tranche stays on hold.
	RetentionRejected  RetentionOutcome = "rejected"
	RetentionNotMature RetentionOutcome = "not_matured"
	RetentionSkipped   RetentionOutcome = "skipped"
	RetentionFailed    RetentionOutcome = "failed"
)

type RetentionResult struct {
	InvoiceID uuid.UUID        `json:"invoice_id"`
	Outcome   RetentionOutcome `json:"outcome"`
	Detail    string           `json:"detail,omitempty"`
}
