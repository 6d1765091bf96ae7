package invoicing

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.temporal.io/sdk/client"
	temporalworker "go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"github.com/fieldworks/contractor-billing/invoicing/business/invoice"
	"github.com/fieldworks/contractor-billing/invoicing/business/retention"
	"github.com/fieldworks/contractor-billing/invoicing/config"
	"github.com/fieldworks/contractor-billing/invoicing/domain"
	"github.com/fieldworks/contractor-billing/invoicing/store"
	"github.com/fieldworks/contractor-billing/invoicing/workflow"
)

var invoicingDB = sqldb.NewDatabase("invoicing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

//encore:service
type Service struct {
	business invoice.Business
	temporal client.Client
	worker   temporalworker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(invoicingDB)

	rlog.Info("Initializing Store", "database", "invoicing")
	repo := store.NewStore(pgxdb)
	stateMachine := domain.NewInvoiceStateMachine(pgxdb)

	invoiceBusiness := invoice.NewInvoiceBusiness(repo.Invoices, repo.WorkOrders, repo.Contractors, stateMachine, config.PayReadySignal)
	retentionBusiness := retention.NewRetentionBusiness(repo.Invoices, stateMachine)
	workflow.SetActivityDependencies(retentionBusiness)

	temporalClient, err := client.NewLazyClient(client.Options{HostPort: config.TemporalServerURL})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	rlog.Info("Starting Temporal worker", "task_queue", config.InvoicingTaskQueue, "pay_ready_signal", config.PayReadySignal)
	worker := temporalworker.New(temporalClient, config.InvoicingTaskQueue, temporalworker.Options{})
	worker.RegisterWorkflow(workflow.RetentionSweep)
	worker.RegisterActivity(workflow.ListMaturedInvoicesActivity)
	worker.RegisterActivity(workflow.EvaluateRetentionActivity)

	if err := worker.Start(); err != nil {
		temporalClient.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	return &Service{
		business: invoiceBusiness,
		temporal: temporalClient,
		worker:   worker,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	s.temporal.Close()
}
