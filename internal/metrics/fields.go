package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrReason   = "reason"
	AttrOutcome  = "outcome"
)

// Skip reasons used by the daily build.
const (
	ReasonFetch   = "fetch"
	ReasonExtract = "extract"
)
