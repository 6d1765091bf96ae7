package config

import (
	"encore.dev"

	"github.com/fieldworks/contractor-billing/invoicing/model"
)

var (
	TemporalServerURL  = "127.0.0.1:7233"
	EnvName            = encore.Meta().Environment.Name
	InvoicingTaskQueue = EnvName + "-invoicing"

	// PayReadySignal is the approval gate a completed work order must pass to be billable.
	PayReadySignal = model.ApprovalStageLocal

	RetentionSweepWorkflowID = "retention-sweep"
)
