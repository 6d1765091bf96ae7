package store

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fieldworks/contractor-billing/invoicing/store/contractors"
	"github.com/fieldworks/contractor-billing/invoicing/store/invoices"
	"github.com/fieldworks/contractor-billing/invoicing/store/workorders"
)

//go:generate sqlc generate
//go:generate mockgen -source=invoices/querier.go -destination=../mocks/store/invoice_repo/querier.go -package=invoice_repo
//go:generate mockgen -source=workorders/querier.go -destination=../mocks/store/workorder_repo/querier.go -package=workorder_repo
//go:generate mockgen -source=contractors/querier.go -destination=../mocks/store/contractor_repo/querier.go -package=contractor_repo

// Store combines all domain-specific repositories
type Store struct {
	Invoices    invoices.Querier
	WorkOrders  workorders.Querier
	Contractors contractors.Querier
}

// NewStore creates a new Store with all domain queriers
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Invoices:    invoices.New(db),
		WorkOrders:  workorders.New(db),
		Contractors: contractors.New(db),
	}
}

// WithTx returns a Store whose queriers all run inside tx.
func WithTx(tx pgx.Tx) *Store {
	return &Store{
		Invoices:    invoices.New(tx),
		WorkOrders:  workorders.New(tx),
		Contractors: contractors.New(tx),
	}
}
