package retention

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"github.com/fieldworks/contractor-billing/invoicing/mocks/domain/state_machine"
	"github.com/fieldworks/contractor-billing/invoicing/mocks/store/invoice_repo"
)

func TestListMaturedInvoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	asOf := time.Date(2025, time.October, 17, 0, 0, 0, 0, time.UTC)
	cutoff := pgtype.Timestamptz{Time: time.Date(2025, time.April, 17, 0, 0, 0, 0, time.UTC), Valid: true}
	first, second := uuid.New(), uuid.New()

	invoiceRepo := invoice_repo.NewMockQuerier(ctrl)
	biz := NewRetentionBusiness(invoiceRepo, state_machine.NewMockStateMachine(ctrl))

	invoiceRepo.EXPECT().
		ListMaturedHoldInvoiceIDs(ctx, cutoff).
		Return([]pgtype.UUID{{Bytes: first, Valid: true}, {Bytes: second, Valid: true}}, nil)

	ids, err := biz.ListMaturedInvoices(ctx, asOf)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first, second}, ids)

	invoiceRepo.EXPECT().
		ListMaturedHoldInvoiceIDs(ctx, cutoff).
		Return(nil, errors.New("connection refused"))

	ids, err = biz.ListMaturedInvoices(ctx, asOf)
	assert.Nil(t, ids)
	assert.Equal(t, errs.Internal, errs.Code(err))
}
