package invoicing

import (
	"errors"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"github.com/fieldworks/contractor-billing/invoicing/domain"
)

// DuplicatePeriodDetails points the caller at the invoice that already covers the period
type DuplicatePeriodDetails struct {
	ExistingInvoiceID string `json:"existing_invoice_id,omitempty"`
}

func (DuplicatePeriodDetails) ErrDetails() {}

// toAPIError maps domain errors onto API error codes. errs.Error values pass through.
func toAPIError(err error) error {
	var (
		notFound      *domain.ContractorNotFoundError
		duplicate     *domain.DuplicatePeriodError
		numberInUse   *domain.DuplicateInvoiceNumberError
		concurrent    *domain.ConcurrentBillingError
		invalidAmount *domain.InvalidAmountError
		transition    *domain.InvalidTransitionError
	)

	switch {
	case errors.As(err, &notFound):
		return &errs.Error{Code: errs.NotFound, Message: notFound.Error()}
	case errors.As(err, &duplicate):
		details := DuplicatePeriodDetails{}
		if duplicate.ExistingInvoiceID != uuid.Nil {
			details.ExistingInvoiceID = duplicate.ExistingInvoiceID.String()
		}
		return &errs.Error{Code: errs.AlreadyExists, Message: duplicate.Error(), Details: details}
	case errors.As(err, &numberInUse):
		return &errs.Error{Code: errs.AlreadyExists, Message: numberInUse.Error()}
	case errors.As(err, &concurrent):
		return &errs.Error{Code: errs.Aborted, Message: concurrent.Error()}
	case errors.As(err, &invalidAmount):
		return &errs.Error{Code: errs.InvalidArgument, Message: invalidAmount.Error()}
	case errors.As(err, &transition):
		return &errs.Error{Code: errs.FailedPrecondition, Message: transition.Error()}
	}

	return err
}

func parseID(raw, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid " + name}
	}
	return id, nil
}
