// Package storage defines persistence contracts for the terminology service.
package storage

import (
	"context"
	"time"
)

// UsageOutcome classifies how a function invocation ended.
type UsageOutcome string

const (
	// OutcomeGenerated records a successful explanation.
	OutcomeGenerated UsageOutcome = "generated"
	// OutcomeRejected records input that failed validation.
	OutcomeRejected UsageOutcome = "rejected"
	// OutcomeFailed records a provider or transport failure.
	OutcomeFailed UsageOutcome = "failed"
)

// UsageEventRecord captures one invocation of the terminology function.
type UsageEventRecord struct {
	Term          string
	Outcome       UsageOutcome
	Model         string
	LatencyMillis int64
	CreatedAt     time.Time
}

// UsageStore appends terminology usage events.
type UsageStore interface {
	AppendUsageEvent(ctx context.Context, record UsageEventRecord) error
}
