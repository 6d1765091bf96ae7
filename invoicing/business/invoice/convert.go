package invoice

import (
	"time"

	"github.com/google/uuid"

	"github.com/fieldworks/contractor-billing/invoicing/model"
	"github.com/fieldworks/contractor-billing/invoicing/store"
	"github.com/fieldworks/contractor-billing/invoicing/store/contractors"
	"github.com/fieldworks/contractor-billing/invoicing/store/invoices"
	"github.com/fieldworks/contractor-billing/invoicing/store/workorders"
)

// convertDBInvoiceToModel converts a database Invoice to a domain model Invoice
func convertDBInvoiceToModel(dbInvoice invoices.Invoice) *model.Invoice {
	return &model.Invoice{
		ID:            store.FromUUID(dbInvoice.ID),
		InvoiceNumber: dbInvoice.InvoiceNumber,
		ContractorID:  store.FromUUID(dbInvoice.ContractorID),
		Period: model.Period{
			Year:  int(dbInvoice.PeriodYear),
			Month: time.Month(dbInvoice.PeriodMonth),
		},
		TotalAmount:     model.NewMoney(store.Decimal(dbInvoice.TotalAmount)),
		ImmediateAmount: model.NewMoney(store.Decimal(dbInvoice.ImmediateAmount)),
		ImmediateState:  model.ImmediateState(dbInvoice.ImmediateState),
		RetainedAmount:  model.NewMoney(store.Decimal(dbInvoice.RetainedAmount)),
		RetainedState:   model.RetainedState(dbInvoice.RetainedState),
		CreatedBy:       dbInvoice.CreatedBy,
		CreatedAt:       dbInvoice.CreatedAt.Time,
		UpdatedAt:       dbInvoice.UpdatedAt.Time,
	}
}

func convertDBWorkOrderToModel(dbOrder workorders.WorkOrder) model.WorkOrder {
	order := model.WorkOrder{
		ID:                 store.FromUUID(dbOrder.ID),
		ContractorID:       store.FromUUID(dbOrder.ContractorID),
		CompletionState:    model.CompletionState(dbOrder.CompletionState),
		LocalApproval:      model.ApprovalSignal(dbOrder.LocalApproval),
		RegionalApproval:   model.ApprovalSignal(dbOrder.RegionalApproval),
		HeadOfficeApproval: model.ApprovalSignal(dbOrder.HeadOfficeApproval),
		Billed:             dbOrder.Billed,
	}

	if amount := store.NullableDecimal(dbOrder.PayableAmount); amount != nil {
		payable := model.NewMoney(*amount)
		order.PayableAmount = &payable
	}

	if dbOrder.CompletionDate.Valid {
		order.CompletionDate = &dbOrder.CompletionDate.Time
	}

	if dbOrder.InvoiceID.Valid {
		id := uuid.UUID(dbOrder.InvoiceID.Bytes)
		order.InvoiceID = &id
	}

	return order
}

func convertDBWorkOrdersToModel(dbOrders []workorders.WorkOrder) []model.WorkOrder {
	orders := make([]model.WorkOrder, len(dbOrders))
	for i, dbOrder := range dbOrders {
		orders[i] = convertDBWorkOrderToModel(dbOrder)
	}
	return orders
}

func convertDBContractorToModel(dbContractor contractors.Contractor) *model.Contractor {
	contractor := &model.Contractor{
		ID:          store.FromUUID(dbContractor.ID),
		DisplayName: dbContractor.DisplayName,
	}

	if dbContractor.Region.Valid {
		contractor.Region = dbContractor.Region.String
	}

	if dbContractor.RegistrationID.Valid {
		contractor.RegistrationID = dbContractor.RegistrationID.String
	}

	return contractor
}
