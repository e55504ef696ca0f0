// Package doctor runs read-only environment health checks.
package doctor

// Status classifies a check outcome.
type Status int

const (
	// StatusOK means the check passed.
	StatusOK Status = iota
	// StatusWarn means setup can proceed but the operator should look.
	StatusWarn
	// StatusFail means setup would fail at this point.
	StatusFail
)

// Result is one health check outcome.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}
