package invoice

import (
	"context"

	"github.com/google/uuid"

	"github.com/fieldworks/contractor-billing/invoicing/domain"
	"github.com/fieldworks/contractor-billing/invoicing/model"
	"github.com/fieldworks/contractor-billing/invoicing/store/contractors"
	"github.com/fieldworks/contractor-billing/invoicing/store/invoices"
	"github.com/fieldworks/contractor-billing/invoicing/store/workorders"
)

//go:generate mockgen -source=business.go -destination=../../mocks/business/invoice_business/business.go -package=invoice_business

type Business interface {
	GenerateMonthlyInvoice(ctx context.Context, params model.GenerateInvoiceParams) (*model.GenerationOutcome, error)
	SelectEligibleWorkOrders(ctx context.Context, contractorID uuid.UUID, period model.Period) ([]model.WorkOrder, error)

	GetInvoice(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	ListInvoices(ctx context.Context, contractorID uuid.UUID, limit, offset int32) ([]*model.Invoice, int64, error)
	RecordPayment(ctx context.Context, id uuid.UUID, tranche model.Tranche) (*model.Invoice, error)
}

// business handles invoice generation, reads and tranche payments
type business struct {
	invoiceRepo    invoices.Querier
	workOrderRepo  workorders.Querier
	contractorRepo contractors.Querier
	stateMachine   domain.StateMachine
	payReadySignal model.ApprovalStage
}

// NewInvoiceBusiness creates the invoice business layer.
// payReadySignal selects which approval gate makes a completed work order billable.
func NewInvoiceBusiness(
	invoiceRepo invoices.Querier,
	workOrderRepo workorders.Querier,
	contractorRepo contractors.Querier,
	stateMachine domain.StateMachine,
	payReadySignal model.ApprovalStage,
) Business {
	return &business{
		invoiceRepo:    invoiceRepo,
		workOrderRepo:  workOrderRepo,
		contractorRepo: contractorRepo,
		stateMachine:   stateMachine,
		payReadySignal: payReadySignal,
	}
}

func (b *business) payReady() model.ApprovalStage {
	if !b.payReadySignal.Valid() {
		return model.ApprovalStageLocal
	}
	return b.payReadySignal
}
