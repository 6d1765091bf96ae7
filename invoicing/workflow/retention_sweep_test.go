package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	retentionmock "github.com/fieldworks/contractor-billing/invoicing/mocks/business/retention_business"
	"github.com/fieldworks/contractor-billing/invoicing/model"
)

func newSweepEnv(t *testing.T) (*testsuite.TestWorkflowEnvironment, *retentionmock.MockBusiness) {
	ctrl := gomock.NewController(t)
	mockBiz := retentionmock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockBiz)

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(ListMaturedInvoicesActivity)
	env.RegisterActivity(EvaluateRetentionActivity)
	return env, mockBiz
}

func TestRetentionSweep_EvaluatesEachMaturedInvoice(t *testing.T) {
	env, mockBiz := newSweepEnv(t)

	asOf := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	released, pending, rejected := uuid.New(), uuid.New(), uuid.New()

	mockBiz.EXPECT().ListMaturedInvoices(gomock.Any(), gomock.Any()).Return([]uuid.UUID{released, pending, rejected}, nil).Times(1)
	mockBiz.EXPECT().EvaluateRetention(gomock.Any(), released, gomock.Any()).
		Return(&model.RetentionResult{InvoiceID: released, Outcome: model.RetentionReleased}, nil).Times(1)
	mockBiz.EXPECT().EvaluateRetention(gomock.Any(), pending, gomock.Any()).
		Return(&model.RetentionResult{InvoiceID: pending, Outcome: model.RetentionPending, Detail: "1 of 2 linked work orders awaiting head-office approval"}, nil).Times(1)
	mockBiz.EXPECT().EvaluateRetention(gomock.Any(), rejected, gomock.Any()).
		Return(&model.RetentionResult{InvoiceID: rejected, Outcome: model.RetentionRejected}, nil).Times(1)

	env.ExecuteWorkflow(RetentionSweep, RetentionSweepParams{AsOf: asOf})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result RetentionSweepResult
	require.NoError(t, env.GetWorkflowResult(&result))
	assert.True(t, asOf.Equal(result.AsOf))
	require.Len(t, result.Results, 3)
	assert.Equal(t, model.RetentionReleased, result.Results[0].Outcome)
	assert.Equal(t, model.RetentionPending, result.Results[1].Outcome)
	assert.Equal(t, model.RetentionRejected, result.Results[2].Outcome)
	assert.Equal(t, 1, result.Released())
}

func TestRetentionSweep_FailureDoesNotStopBatch(t *testing.T) {
	env, mockBiz := newSweepEnv(t)

	missing, flaky, healthy := uuid.New(), uuid.New(), uuid.New()

	mockBiz.EXPECT().ListMaturedInvoices(gomock.Any(), gomock.Any()).Return([]uuid.UUID{missing, flaky, healthy}, nil).Times(1)
	// permanent: not retried
	mockBiz.EXPECT().EvaluateRetention(gomock.Any(), missing, gomock.Any()).
		Return(nil, &errs.Error{Code: errs.NotFound, Message: "invoice not found"}).Times(1)
	// transient: retried until the policy gives up
	mockBiz.EXPECT().EvaluateRetention(gomock.Any(), flaky, gomock.Any()).
		Return(nil, errors.New("connection reset")).Times(4)
	mockBiz.EXPECT().EvaluateRetention(gomock.Any(), healthy, gomock.Any()).
		Return(&model.RetentionResult{InvoiceID: healthy, Outcome: model.RetentionReleased}, nil).Times(1)

	env.ExecuteWorkflow(RetentionSweep, RetentionSweepParams{AsOf: time.Now().UTC()})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result RetentionSweepResult
	require.NoError(t, env.GetWorkflowResult(&result))
	require.Len(t, result.Results, 3)

	assert.Equal(t, missing, result.Results[0].InvoiceID)
	assert.Equal(t, model.RetentionFailed, result.Results[0].Outcome)
	assert.NotEmpty(t, result.Results[0].Detail)

	assert.Equal(t, flaky, result.Results[1].InvoiceID)
	assert.Equal(t, model.RetentionFailed, result.Results[1].Outcome)

	assert.Equal(t, model.RetentionReleased, result.Results[2].Outcome)
	assert.Equal(t, 1, result.Released())
}

func TestRetentionSweep_NothingMatured(t *testing.T) {
	env, mockBiz := newSweepEnv(t)

	mockBiz.EXPECT().ListMaturedInvoices(gomock.Any(), gomock.Any()).Return([]uuid.UUID{}, nil).Times(1)

	env.ExecuteWorkflow(RetentionSweep, RetentionSweepParams{})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result RetentionSweepResult
	require.NoError(t, env.GetWorkflowResult(&result))
	assert.Empty(t, result.Results)
	assert.False(t, result.AsOf.IsZero(), "zero AsOf is replaced by workflow time")
}

func TestRetentionSweep_ListFailureFailsWorkflow(t *testing.T) {
	env, mockBiz := newSweepEnv(t)

	mockBiz.EXPECT().ListMaturedInvoices(gomock.Any(), gomock.Any()).
		Return(nil, &errs.Error{Code: errs.Internal, Message: "failed to list matured invoices"}).Times(5)

	env.ExecuteWorkflow(RetentionSweep, RetentionSweepParams{AsOf: time.Now().UTC()})
	require.True(t, env.IsWorkflowCompleted())
	assert.Error(t, env.GetWorkflowError())
}

func TestEvaluateRetentionActivity_WithoutDependencies(t *testing.T) {
	activityDeps = nil

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestActivityEnvironment()
	env.RegisterActivity(EvaluateRetentionActivity)

	_, err := env.ExecuteActivity(EvaluateRetentionActivity, uuid.New(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "activity dependencies not initialized")
}

func TestIsPermanent(t *testing.T) {
	assert.True(t, isPermanent(&errs.Error{Code: errs.NotFound}))
	assert.True(t, isPermanent(&errs.Error{Code: errs.FailedPrecondition}))
	assert.False(t, isPermanent(&errs.Error{Code: errs.Internal}))
	assert.False(t, isPermanent(errors.New("connection reset")))
}
