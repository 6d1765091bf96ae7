package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ImmediateState string

const (
	ImmediateStatePending ImmediateState = "pending"
	ImmediateStatePaid    ImmediateState = "paid"
)

type RetainedState string

const (
	RetainedStateHold     RetainedState = "hold"
	RetainedStateEligible RetainedState = "eligible"
	RetainedStatePaid     RetainedState = "paid"
)

type Invoice struct {
	ID              uuid.UUID      `json:"id"`
	InvoiceNumber   string         `json:"invoice_number"`
	ContractorID    uuid.UUID      `json:"contractor_id"`
	Period          Period         `json:"period"`
	TotalAmount     Money          `json:"total_amount"`
	ImmediateAmount Money          `json:"immediate_amount"`
	ImmediateState  ImmediateState `json:"immediate_state"`
	RetainedAmount  Money          `json:"retained_amount"`
	RetainedState   RetainedState  `json:"retained_state"`
	CreatedBy       string         `json:"created_by"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	LinkedOrders    []uuid.UUID    `json:"linked_orders,omitempty"`
	WorkOrders      []WorkOrder    `json:"work_orders,omitempty"`
}

// Split is the two-tranche breakdown of an invoice total.
type Split struct {
	Immediate decimal.Decimal `json:"immediate"`
	Retained  decimal.Decimal `json:"retained"`
}

// Tranche identifies which part of an invoice a payment settles.
type Tranche string

const (
	TrancheImmediate Tranche = "immediate"
	TrancheRetained  Tranche = "retained"
)

// InvoiceNumberInput holds everything the invoice number is derived from.
type InvoiceNumberInput struct {
	ContractorName string
	Region         string
	RegistrationID string
	Period         Period
}
