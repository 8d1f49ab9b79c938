package doctor

import "context"

// Check is the interface that diagnostic checks must implement.
type Check interface {
	// Name returns the unique identifier for this check.
	Name() string

	// Run executes the diagnostic check and returns its result.
	Run(ctx context.Context) *CheckResult
}

// Report aggregates all check results with a severity summary.
type Report struct {
	Results []*CheckResult `json:"results"`
	Summary Summary        `json:"summary"`
}

// HasErrors returns true if any check has SeverityError.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// Run executes the given checks in order and returns a report.
func Run(ctx context.Context, checks []Check) *Report {
	report := &Report{
		Results: make([]*CheckResult, 0, len(checks)),
	}

	for _, check := range checks {
		result := check.Run(ctx)
		report.Results = append(report.Results, result)

		switch result.Status {
		case SeverityPass:
			report.Summary.Passed++
		case SeverityWarning:
			report.Summary.Warnings++
		case SeverityError:
			report.Summary.Errors++
		}
	}

	return report
}
