package invoicing

import (
	"context"
	"time"

	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"

	"encore.dev/beta/errs"
	"encore.dev/cron"
	"encore.dev/rlog"

	"github.com/fieldworks/contractor-billing/invoicing/config"
	"github.com/fieldworks/contractor-billing/invoicing/model"
	"github.com/fieldworks/contractor-billing/invoicing/workflow"
)

// sweepFollowTimeout bounds how long a detached sweep is followed for logging
const sweepFollowTimeout = 30 * time.Minute

var _ = cron.NewJob("retention-sweep", cron.JobConfig{
	Title:    "Release matured retention tranches",
	Every:    24 * cron.Hour,
	Endpoint: RunRetentionSweep,
})

type RetentionSweepResponse struct {
	WorkflowID string                  `json:"workflow_id"`
	RunID      string                  `json:"run_id"`
	AsOf       *time.Time              `json:"as_of,omitempty"`
	Results    []model.RetentionResult `json:"results"`
}

type SweepRetentionRequest struct {
	// AsOf overrides the evaluation instant; empty means now.
	AsOf *time.Time `json:"as_of,omitempty"`
	// Detach returns as soon as the sweep is started.
	Detach bool `json:"detach,omitempty"`
}

// RunRetentionSweep evaluates every held invoice that is at least six months old.
// Triggered daily by the retention-sweep cron job.
//
//encore:api private path=/internal/retention/sweep method=POST
func (s *Service) RunRetentionSweep(ctx context.Context) (*RetentionSweepResponse, error) {
	return s.sweep(ctx, workflow.RetentionSweepParams{}, false)
}

// SweepRetention lets operators trigger a sweep, optionally as of a past or future instant.
//
//encore:api public path=/v1/retention/sweeps method=POST
func (s *Service) SweepRetention(ctx context.Context, req *SweepRetentionRequest) (*RetentionSweepResponse, error) {
	params := workflow.RetentionSweepParams{}
	if req.AsOf != nil {
		params.AsOf = req.AsOf.UTC()
	}
	return s.sweep(ctx, params, req.Detach)
}

// sweep starts the sweep workflow or attaches to the one already running,
// so overlapping triggers share a single execution.
func (s *Service) sweep(ctx context.Context, params workflow.RetentionSweepParams, detach bool) (*RetentionSweepResponse, error) {
	options := client.StartWorkflowOptions{
		ID:                       config.RetentionSweepWorkflowID,
		TaskQueue:                config.InvoicingTaskQueue,
		WorkflowIDReusePolicy:    enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
		WorkflowIDConflictPolicy: enumspb.WORKFLOW_ID_CONFLICT_POLICY_USE_EXISTING,
	}

	run, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.RetentionSweep, params)
	if err != nil {
		rlog.Error("failed to start retention sweep", "error", err)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to start retention sweep"}
	}

	response := &RetentionSweepResponse{
		WorkflowID: run.GetID(),
		RunID:      run.GetRunID(),
		Results:    []model.RetentionResult{},
	}

	if detach {
		rlog.Info("retention sweep started", "workflow_id", run.GetID(), "run_id", run.GetRunID())
		runAsync("retention_sweep", sweepFollowTimeout, func(ctx context.Context) error {
			var result workflow.RetentionSweepResult
			if err := run.Get(ctx, &result); err != nil {
				return err
			}
			rlog.Info("retention sweep finished", "run_id", run.GetRunID(), "evaluated", len(result.Results), "released", result.Released())
			return nil
		})
		return response, nil
	}

	var result workflow.RetentionSweepResult
	if err := run.Get(ctx, &result); err != nil {
		rlog.Error("retention sweep failed", "error", err, "run_id", run.GetRunID())
		return nil, &errs.Error{Code: errs.Internal, Message: "retention sweep failed"}
	}

	asOf := result.AsOf
	response.AsOf = &asOf
	if result.Results != nil {
		response.Results = result.Results
	}

	rlog.Info("retention sweep completed", "run_id", run.GetRunID(), "evaluated", len(result.Results), "released", result.Released())
	return response, nil
}
