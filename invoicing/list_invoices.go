package invoicing

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/rlog"

	"github.com/fieldworks/contractor-billing/invoicing/model"
)

type ListInvoicesRequest struct {
	ContractorID string `query:"contractor_id"`
	Limit        int    `query:"limit"`
	Offset       int    `query:"offset"`
}

type ListInvoicesResponse struct {
	Invoices   []model.Invoice `json:"invoices"`
	TotalCount int64           `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

// encore:api public path=/v1/invoices method=GET
func (s *Service) ListInvoices(ctx context.Context, req *ListInvoicesRequest) (*ListInvoicesResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	contractorID := uuid.Nil
	if req.ContractorID != "" {
		id, err := parseID(req.ContractorID, "contractor ID")
		if err != nil {
			return nil, err
		}
		contractorID = id
	}

	invoices, totalCount, err := s.business.ListInvoices(ctx, contractorID, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to list invoices", "error", err)
		return nil, toAPIError(err)
	}

	response := &ListInvoicesResponse{
		Invoices:   make([]model.Invoice, len(invoices)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}

	for i, invoice := range invoices {
		response.Invoices[i] = *invoice
	}

	return response, nil
}
