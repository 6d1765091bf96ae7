package invoicing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"github.com/fieldworks/contractor-billing/invoicing/mocks/business/invoice_business"
	"github.com/fieldworks/contractor-billing/invoicing/model"
)

func amountPtr(s string) *model.Money {
	m := model.NewMoney(decimal.RequireFromString(s))
	return &m
}

func TestEligibleWorkOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := invoice_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness, temporal: mocks.NewClient(t)}

	contractorID := uuid.New()
	period := model.Period{Year: 2025, Month: time.July}

	mockBusiness.EXPECT().
		SelectEligibleWorkOrders(gomock.Any(), contractorID, period).
		Return([]model.WorkOrder{
			{ID: uuid.New(), ContractorID: contractorID, PayableAmount: amountPtr("20000.00")},
			{ID: uuid.New(), ContractorID: contractorID, PayableAmount: amountPtr("15000.00")},
		}, nil)

	resp, err := service.EligibleWorkOrders(context.Background(), contractorID.String(), &EligibleWorkOrdersRequest{Year: 2025, Month: 7})
	require.NoError(t, err)
	assert.Len(t, resp.WorkOrders, 2)
	assert.Equal(t, "35000.00", resp.Total)

	mockBusiness.EXPECT().
		SelectEligibleWorkOrders(gomock.Any(), contractorID, period).
		Return(nil, nil)

	resp, err = service.EligibleWorkOrders(context.Background(), contractorID.String(), &EligibleWorkOrdersRequest{Year: 2025, Month: 7})
	require.NoError(t, err)
	assert.NotNil(t, resp.WorkOrders)
	assert.Empty(t, resp.WorkOrders)
	assert.Equal(t, "0.00", resp.Total)

	_, err = service.EligibleWorkOrders(context.Background(), "bad", &EligibleWorkOrdersRequest{Year: 2025, Month: 7})
	assert.Equal(t, errs.InvalidArgument, errs.Code(err))
}

func TestGetInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := invoice_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness, temporal: mocks.NewClient(t)}

	invoiceID := uuid.New()

	testCases := []struct {
		name         string
		id           string
		expectCall   bool
		mockInvoice  *model.Invoice
		mockError    error
		expectedCode errs.ErrCode
	}{
		{
			name:        "found",
			id:          invoiceID.String(),
			expectCall:  true,
			mockInvoice: &model.Invoice{ID: invoiceID, RetainedState: model.RetainedStateHold},
		},
		{
			name:         "not_found",
			id:           invoiceID.String(),
			expectCall:   true,
			mockError:    &errs.Error{Code: errs.NotFound, Message: "invoice not found"},
			expectedCode: errs.NotFound,
		},
		{
			name:         "nil_uuid",
			id:           uuid.Nil.String(),
			expectedCode: errs.InvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.expectCall {
				mockBusiness.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(tc.mockInvoice, tc.mockError).Times(1)
			}

			resp, err := service.GetInvoice(context.Background(), tc.id)

			if tc.expectedCode != errs.OK {
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, invoiceID, resp.Invoice.ID)
		})
	}
}

func TestListInvoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := invoice_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness, temporal: mocks.NewClient(t)}

	contractorID := uuid.New()

	testCases := []struct {
		name               string
		request            *ListInvoicesRequest
		expectedContractor uuid.UUID
		expectedLimit      int32
		expectedOffset     int32
		expectCall         bool
		expectedCode       errs.ErrCode
	}{
		{
			name:               "defaults",
			request:            &ListInvoicesRequest{},
			expectedContractor: uuid.Nil,
			expectedLimit:      10,
			expectCall:         true,
		},
		{
			name:               "limit_capped",
			request:            &ListInvoicesRequest{ContractorID: contractorID.String(), Limit: 500, Offset: 30},
			expectedContractor: contractorID,
			expectedLimit:      100,
			expectedOffset:     30,
			expectCall:         true,
		},
		{
			name:               "negative_offset_reset",
			request:            &ListInvoicesRequest{Limit: 5, Offset: -4},
			expectedContractor: uuid.Nil,
			expectedLimit:      5,
			expectCall:         true,
		},
		{
			name:         "bad_contractor_filter",
			request:      &ListInvoicesRequest{ContractorID: "abc"},
			expectedCode: errs.InvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.expectCall {
				mockBusiness.EXPECT().
					ListInvoices(gomock.Any(), tc.expectedContractor, tc.expectedLimit, tc.expectedOffset).
					Return([]*model.Invoice{{ID: uuid.New()}, {ID: uuid.New()}}, int64(42), nil).
					Times(1)
			}

			resp, err := service.ListInvoices(context.Background(), tc.request)

			if tc.expectedCode != errs.OK {
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Len(t, resp.Invoices, 2)
			assert.Equal(t, int64(42), resp.TotalCount)
			assert.Equal(t, int(tc.expectedLimit), resp.Limit)
			assert.Equal(t, int(tc.expectedOffset), resp.Offset)
		})
	}
}

func TestRecordPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := invoice_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness, temporal: mocks.NewClient(t)}

	invoiceID := uuid.New()

	mockBusiness.EXPECT().
		RecordPayment(gomock.Any(), invoiceID, model.TrancheImmediate).
		Return(&model.Invoice{ID: invoiceID, ImmediateState: model.ImmediateStatePaid, RetainedState: model.RetainedStateHold}, nil)

	resp, err := service.RecordPayment(context.Background(), invoiceID.String(), &RecordPaymentRequest{Tranche: "immediate"})
	require.NoError(t, err)
	assert.Equal(t, model.ImmediateStatePaid, resp.Invoice.ImmediateState)

	mockBusiness.EXPECT().
		RecordPayment(gomock.Any(), invoiceID, model.TrancheRetained).
		Return(nil, &errs.Error{Code: errs.FailedPrecondition, Message: "retained tranche is still on hold"})

	resp, err = service.RecordPayment(context.Background(), invoiceID.String(), &RecordPaymentRequest{Tranche: "retained"})
	assert.Nil(t, resp)
	assert.Equal(t, errs.FailedPrecondition, errs.Code(err))

	assert.Equal(t, errs.InvalidArgument, errs.Code((&RecordPaymentRequest{Tranche: "bonus"}).Validate()))
	assert.NoError(t, (&RecordPaymentRequest{Tranche: "retained"}).Validate())
}
