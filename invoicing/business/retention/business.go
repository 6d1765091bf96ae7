package retention

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fieldworks/contractor-billing/invoicing/domain"
	"github.com/fieldworks/contractor-billing/invoicing/model"
	"github.com/fieldworks/contractor-billing/invoicing/store/invoices"
)

//go:generate mockgen -source=business.go -destination=../../mocks/business/retention_business/business.go -package=retention_business

// Business evaluates held retained tranches for release
type Business interface {
	ListMaturedInvoices(ctx context.Context, asOf time.Time) ([]uuid.UUID, error)
	EvaluateRetention(ctx context.Context, invoiceID uuid.UUID, asOf time.Time) (*model.RetentionResult, error)
}

type business struct {
	invoiceRepo  invoices.Querier
	stateMachine domain.StateMachine
}

func NewRetentionBusiness(invoiceRepo invoices.Querier, stateMachine domain.StateMachine) Business {
	return &business{
		invoiceRepo:  invoiceRepo,
		stateMachine: stateMachine,
	}
}
