package invoicing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"encore.dev/beta/errs"

	"github.com/fieldworks/contractor-billing/invoicing/domain"
)

func TestToAPIError(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode errs.ErrCode
	}{
		{name: "contractor_not_found", err: &domain.ContractorNotFoundError{ContractorID: uuid.New()}, expectedCode: errs.NotFound},
		{name: "duplicate_period", err: &domain.DuplicatePeriodError{}, expectedCode: errs.AlreadyExists},
		{name: "duplicate_invoice_number", err: &domain.DuplicateInvoiceNumberError{InvoiceNumber: "X"}, expectedCode: errs.AlreadyExists},
		{name: "concurrent_billing", err: &domain.ConcurrentBillingError{Selected: 3, Marked: 2}, expectedCode: errs.Aborted},
		{name: "invalid_amount", err: &domain.InvalidAmountError{Amount: decimal.Zero}, expectedCode: errs.InvalidArgument},
		{name: "invalid_transition", err: &domain.InvalidTransitionError{Field: "retained_state", From: "hold", To: "paid"}, expectedCode: errs.FailedPrecondition},
		{name: "wrapped_domain_error", err: fmt.Errorf("generate: %w", &domain.ContractorNotFoundError{}), expectedCode: errs.NotFound},
		{name: "api_error_passes_through", err: &errs.Error{Code: errs.Unavailable}, expectedCode: errs.Unavailable},
		{name: "unknown_error", err: errors.New("boom"), expectedCode: errs.Unknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedCode, errs.Code(toAPIError(tc.err)))
		})
	}
}

func TestToAPIError_DuplicatePeriodWithoutExistingID(t *testing.T) {
	err := toAPIError(&domain.DuplicatePeriodError{ContractorID: uuid.New()})

	var apiErr *errs.Error
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, DuplicatePeriodDetails{}, apiErr.Details)
}
