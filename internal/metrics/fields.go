package metrics

// Metric attribute keys.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrOutcome  = "outcome"
)

// Refresh outcomes reported on the refresh counter.
const (
	OutcomeApplied   = "applied"
	OutcomeFailed    = "failed"
	OutcomeDiscarded = "discarded"
)
