package domain

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fieldworks/contractor-billing/invoicing/mocks/store/invoice_repo"
	"github.com/fieldworks/contractor-billing/invoicing/model"
	"github.com/fieldworks/contractor-billing/invoicing/store/invoices"
)

func TestCanAdvanceRetained(t *testing.T) {
	testCases := []struct {
		from, to model.RetainedState
		allowed  bool
	}{
		{model.RetainedStateHold, model.RetainedStateEligible, true},
		{model.RetainedStateEligible, model.RetainedStatePaid, true},
		{model.RetainedStateHold, model.RetainedStatePaid, false},
		{model.RetainedStateEligible, model.RetainedStateHold, false},
		{model.RetainedStatePaid, model.RetainedStateEligible, false},
		{model.RetainedStatePaid, model.RetainedStatePaid, false},
		{model.RetainedStateHold, model.RetainedStateHold, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanAdvanceRetained(tc.from, tc.to))
		})
	}
}

func TestCanAdvanceImmediate(t *testing.T) {
	assert.True(t, CanAdvanceImmediate(model.ImmediateStatePending, model.ImmediateStatePaid))
	assert.False(t, CanAdvanceImmediate(model.ImmediateStatePaid, model.ImmediateStatePending))
	assert.False(t, CanAdvanceImmediate(model.ImmediateStatePaid, model.ImmediateStatePaid))
}

func TestAdvanceRetained(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	id := pgtype.UUID{Bytes: uuid.New(), Valid: true}

	t.Run("hold_to_eligible_updates_row", func(t *testing.T) {
		repo := invoice_repo.NewMockQuerier(ctrl)
		current := invoices.Invoice{ID: id, RetainedState: string(model.RetainedStateHold)}

		repo.EXPECT().
			UpdateRetainedState(ctx, invoices.UpdateRetainedStateParams{ID: id, RetainedState: string(model.RetainedStateEligible)}).
			Return(invoices.Invoice{ID: id, RetainedState: string(model.RetainedStateEligible)}, nil)

		updated, err := AdvanceRetained(ctx, repo, current, model.RetainedStateEligible)
		require.NoError(t, err)
		assert.Equal(t, string(model.RetainedStateEligible), updated.RetainedState)
	})

	t.Run("skipping_a_state_is_rejected_without_writes", func(t *testing.T) {
		repo := invoice_repo.NewMockQuerier(ctrl)
		current := invoices.Invoice{ID: id, RetainedState: string(model.RetainedStateHold)}

		_, err := AdvanceRetained(ctx, repo, current, model.RetainedStatePaid)

		var transitionErr *InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "retained_state", transitionErr.Field)
		assert.Equal(t, "hold", transitionErr.From)
		assert.Equal(t, "paid", transitionErr.To)
	})
}

func TestAdvanceImmediate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	id := pgtype.UUID{Bytes: uuid.New(), Valid: true}
	repo := invoice_repo.NewMockQuerier(ctrl)

	repo.EXPECT().
		UpdateImmediateState(ctx, invoices.UpdateImmediateStateParams{ID: id, ImmediateState: string(model.ImmediateStatePaid)}).
		Return(invoices.Invoice{ID: id, ImmediateState: string(model.ImmediateStatePaid)}, nil)

	updated, err := AdvanceImmediate(ctx, repo, invoices.Invoice{ID: id, ImmediateState: string(model.ImmediateStatePending)}, model.ImmediateStatePaid)
	require.NoError(t, err)
	assert.Equal(t, string(model.ImmediateStatePaid), updated.ImmediateState)

	_, err = AdvanceImmediate(ctx, repo, updated, model.ImmediateStatePending)
	var transitionErr *InvalidTransitionError
	assert.ErrorAs(t, err, &transitionErr)
}
