package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CompletionState string

const (
	CompletionStateInProgress CompletionState = "in_progress"
	CompletionStateCompleted  CompletionState = "completed"
	CompletionStateReturned   CompletionState = "returned"
)

// ApprovalSignal is the value of one of the three quality-acceptance gates.
type ApprovalSignal string

const (
	ApprovalPending  ApprovalSignal = "pending"
	ApprovalPass     ApprovalSignal = "pass"
	ApprovalRejected ApprovalSignal = "rejected"
)

// ApprovalStage names which approval signal is read.
type ApprovalStage string

const (
	ApprovalStageLocal      ApprovalStage = "local"
	ApprovalStageRegional   ApprovalStage = "regional"
	ApprovalStageHeadOffice ApprovalStage = "head_office"
)

func (s ApprovalStage) Valid() bool {
	switch s {
	case ApprovalStageLocal, ApprovalStageRegional, ApprovalStageHeadOffice:
		return true
	}
	return false
}

type WorkOrder struct {
	ID                 uuid.UUID       `json:"id"`
	ContractorID       uuid.UUID       `json:"contractor_id"`
	CompletionState    CompletionState `json:"completion_state"`
	CompletionDate     *time.Time      `json:"completion_date,omitempty"`
	PayableAmount      *Money          `json:"payable_amount,omitempty"`
	LocalApproval      ApprovalSignal  `json:"local_approval"`
	RegionalApproval   ApprovalSignal  `json:"regional_approval"`
	HeadOfficeApproval ApprovalSignal  `json:"head_office_approval"`
	Billed             bool            `json:"billed"`
	InvoiceID          *uuid.UUID      `json:"invoice_id,omitempty"`
}

// Payable returns the payable amount, treating a missing value as zero.
func (w WorkOrder) Payable() decimal.Decimal {
	if w.PayableAmount == nil {
		return decimal.Zero
	}
	return w.PayableAmount.Decimal
}

// SumPayable totals the payable amounts of orders.
func SumPayable(orders []WorkOrder) decimal.Decimal {
	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(order.Payable())
	}
	return total
}
