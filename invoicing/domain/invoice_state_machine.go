package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"github.com/fieldworks/contractor-billing/invoicing/store"
	"github.com/fieldworks/contractor-billing/invoicing/store/invoices"
)

//go:generate mockgen -source=invoice_state_machine.go -destination=../mocks/domain/state_machine/state_machine.go -package=state_machine

// StateMachine owns the transaction boundaries for invoice issuance and state transitions
type StateMachine interface {
	// ExecuteInTx runs fn inside a single transaction; fn's error rolls everything back
	ExecuteInTx(ctx context.Context, fn func(tx *store.Store) error) error

	// GetInvoiceWithLock locks the invoice row (SELECT ... FOR UPDATE) for the duration of fn
	GetInvoiceWithLock(ctx context.Context, invoiceID uuid.UUID, fn func(current invoices.Invoice, tx *store.Store) error) error
}

// InvoiceStateMachine is the pgx-backed StateMachine.
// Each call gets its own transaction, so one instance is safe for concurrent use.
type InvoiceStateMachine struct {
	db *pgxpool.Pool
}

func NewInvoiceStateMachine(db *pgxpool.Pool) *InvoiceStateMachine {
	return &InvoiceStateMachine{db: db}
}

func (sm *InvoiceStateMachine) ExecuteInTx(ctx context.Context, fn func(tx *store.Store) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	if err := fn(store.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit transaction"}
	}

	return nil
}

func (sm *InvoiceStateMachine) GetInvoiceWithLock(ctx context.Context, invoiceID uuid.UUID, fn func(invoices.Invoice, *store.Store) error) error {
	return sm.ExecuteInTx(ctx, func(tx *store.Store) error {
		current, err := tx.Invoices.GetInvoiceForUpdate(ctx, store.UUID(invoiceID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to lock invoice"}
		}

		// The row stays locked until the transaction commits or rolls back
		return fn(current, tx)
	})
}
