package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/fieldworks/contractor-billing/invoicing/mocks/domain/state_machine"
	"github.com/fieldworks/contractor-billing/invoicing/mocks/store/contractor_repo"
	"github.com/fieldworks/contractor-billing/invoicing/mocks/store/invoice_repo"
	"github.com/fieldworks/contractor-billing/invoicing/mocks/store/workorder_repo"
	"github.com/fieldworks/contractor-billing/invoicing/model"
	"github.com/fieldworks/contractor-billing/invoicing/store"
	"github.com/fieldworks/contractor-billing/invoicing/store/contractors"
	"github.com/fieldworks/contractor-billing/invoicing/store/invoices"
	"github.com/fieldworks/contractor-billing/invoicing/store/workorders"
)

// testDeps bundles the mocks behind a business under test. The tx* queriers are
// the ones handed to state machine callbacks.
type testDeps struct {
	invoiceRepo    *invoice_repo.MockQuerier
	workOrderRepo  *workorder_repo.MockQuerier
	contractorRepo *contractor_repo.MockQuerier
	stateMachine   *state_machine.MockStateMachine
	txInvoices     *invoice_repo.MockQuerier
	txWorkOrders   *workorder_repo.MockQuerier
}

func newTestDeps(ctrl *gomock.Controller) *testDeps {
	return &testDeps{
		invoiceRepo:    invoice_repo.NewMockQuerier(ctrl),
		workOrderRepo:  workorder_repo.NewMockQuerier(ctrl),
		contractorRepo: contractor_repo.NewMockQuerier(ctrl),
		stateMachine:   state_machine.NewMockStateMachine(ctrl),
		txInvoices:     invoice_repo.NewMockQuerier(ctrl),
		txWorkOrders:   workorder_repo.NewMockQuerier(ctrl),
	}
}

func (d *testDeps) business(signal model.ApprovalStage) Business {
	return NewInvoiceBusiness(d.invoiceRepo, d.workOrderRepo, d.contractorRepo, d.stateMachine, signal)
}

func (d *testDeps) txStore() *store.Store {
	return &store.Store{Invoices: d.txInvoices, WorkOrders: d.txWorkOrders}
}

// expectTx makes ExecuteInTx run its callback against the tx queriers
func (d *testDeps) expectTx() {
	d.stateMachine.EXPECT().
		ExecuteInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*store.Store) error) error {
			return fn(d.txStore())
		})
}

// expectLocked makes GetInvoiceWithLock hand current to its callback
func (d *testDeps) expectLocked(id uuid.UUID, current invoices.Invoice) {
	d.stateMachine.EXPECT().
		GetInvoiceWithLock(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, fn func(invoices.Invoice, *store.Store) error) error {
			return fn(current, d.txStore())
		})
}

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func pgAmount(t *testing.T, s string) pgtype.Numeric {
	t.Helper()
	return store.Numeric(decimal.RequireFromString(s))
}

func dbContractor(id uuid.UUID, name, region, registrationID string) contractors.Contractor {
	return contractors.Contractor{
		ID:             pgUUID(id),
		DisplayName:    name,
		Region:         pgtype.Text{String: region, Valid: region != ""},
		RegistrationID: pgtype.Text{String: registrationID, Valid: registrationID != ""},
	}
}

func dbWorkOrder(t *testing.T, contractorID uuid.UUID, amount string, completed time.Time) workorders.WorkOrder {
	t.Helper()
	order := workorders.WorkOrder{
		ID:                 pgUUID(uuid.New()),
		ContractorID:       pgUUID(contractorID),
		CompletionState:    string(model.CompletionStateCompleted),
		CompletionDate:     pgtype.Timestamptz{Time: completed, Valid: true},
		LocalApproval:      string(model.ApprovalPass),
		RegionalApproval:   string(model.ApprovalPending),
		HeadOfficeApproval: string(model.ApprovalPending),
	}
	if amount != "" {
		order.PayableAmount = pgAmount(t, amount)
	}
	return order
}
