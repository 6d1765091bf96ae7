package invoice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"github.com/fieldworks/contractor-billing/invoicing/model"
	"github.com/fieldworks/contractor-billing/invoicing/store/invoices"
)

func TestListInvoices(t *testing.T) {
	ctx := context.Background()
	contractorID := uuid.New()

	testCases := []struct {
		name           string
		contractorID   uuid.UUID
		expectedFilter pgtype.UUID
		listErr        error
		expectedCode   errs.ErrCode
	}{
		{
			name:           "filtered_by_contractor",
			contractorID:   contractorID,
			expectedFilter: pgUUID(contractorID),
		},
		{
			name:           "all_contractors",
			contractorID:   uuid.Nil,
			expectedFilter: pgtype.UUID{},
		},
		{
			name:           "repository_failure",
			contractorID:   contractorID,
			expectedFilter: pgUUID(contractorID),
			listErr:        errors.New("boom"),
			expectedCode:   errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			deps := newTestDeps(ctrl)
			rows := []invoices.Invoice{
				dbInvoice(t, uuid.New(), contractorID, model.RetainedStateHold),
				dbInvoice(t, uuid.New(), contractorID, model.RetainedStateEligible),
			}

			deps.invoiceRepo.EXPECT().
				ListInvoices(ctx, invoices.ListInvoicesParams{ContractorID: tc.expectedFilter, RowLimit: 10, RowOffset: 20}).
				Return(rows, tc.listErr)
			if tc.listErr == nil {
				deps.invoiceRepo.EXPECT().CountInvoices(ctx, tc.expectedFilter).Return(int64(22), nil)
			}

			result, total, err := deps.business(model.ApprovalStageLocal).ListInvoices(ctx, tc.contractorID, 10, 20)

			if tc.expectedCode != errs.OK {
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(22), total)
			require.Len(t, result, 2)
			assert.Equal(t, model.RetainedStateHold, result[0].RetainedState)
			assert.Equal(t, model.RetainedStateEligible, result[1].RetainedState)
		})
	}
}
