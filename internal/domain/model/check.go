package model

import "time"

// Target is a monitored service endpoint included in the status digest.
type Target struct {
	Name string
	URL  string
}

// CheckResult captures the outcome of probing one target.
type CheckResult struct {
	Target    Target
	Up        bool
	Status    int
	Latency   time.Duration
	PageTitle string
	Err       string
}

// Delivery is the webhook endpoint's answer to a posted card. Non-2xx
// statuses are ordinary data here, not errors; the sender does not interpret
// HTTP semantics.
type Delivery struct {
	Status int
	Body   string
}
