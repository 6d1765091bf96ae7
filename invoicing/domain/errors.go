package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fieldworks/contractor-billing/invoicing/model"
)

type ContractorNotFoundError struct {
	ContractorID uuid.UUID
}

func (e *ContractorNotFoundError) Error() string {
	return fmt.Sprintf("contractor %s not found", e.ContractorID)
}

// DuplicatePeriodError means an invoice already covers the contractor and period.
// ExistingInvoiceID is set when the existing invoice could be looked up.
type DuplicatePeriodError struct {
	ContractorID      uuid.UUID
	Period            model.Period
	ExistingInvoiceID uuid.UUID
}

func (e *DuplicatePeriodError) Error() string {
	return fmt.Sprintf("invoice for contractor %s period %s already exists", e.ContractorID, e.Period)
}

// DuplicateInvoiceNumberError is raised when two contractors share a registration id.
type DuplicateInvoiceNumberError struct {
	InvoiceNumber string
}

func (e *DuplicateInvoiceNumberError) Error() string {
	return fmt.Sprintf("invoice number %q is already in use", e.InvoiceNumber)
}

// ConcurrentBillingError means some selected work orders were billed by someone
// else between selection and marking.
type ConcurrentBillingError struct {
	Selected int
	Marked   int64
}

func (e *ConcurrentBillingError) Error() string {
	return fmt.Sprintf("work orders changed during generation: selected %d, marked %d", e.Selected, e.Marked)
}

type InvalidAmountError struct {
	Amount decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %s: must be greater than zero", e.Amount.StringFixed(2))
}

type InvalidTransitionError struct {
	Field string
	From  string
	To    string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s cannot move from %s to %s", e.Field, e.From, e.To)
}
