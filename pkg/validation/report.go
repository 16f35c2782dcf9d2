package validation

import (
	"fmt"
	"strings"
)

// ConstraintResult is the outcome of checking one property. Hard
// constraints (Severity "hard") are pass/fail with Score 0 or 1; soft
// constraints report a continuous Score in [0,1] and are Satisfied when
// Score exceeds 0.5.
type ConstraintResult struct {
	Name      string
	Severity  string // "hard" or "soft"
	Satisfied bool
	Score     float64
	Details   string
}

// NewHardResult builds a pass/fail constraint result.
func NewHardResult(name string, satisfied bool, details string) ConstraintResult {
	score := 0.0
	if satisfied {
		score = 1.0
	}
	return ConstraintResult{Name: name, Severity: "hard", Satisfied: satisfied, Score: score, Details: details}
}

// NewSoftResult builds a continuous-score constraint result.
func NewSoftResult(name string, score float64, details string) ConstraintResult {
	return ConstraintResult{Name: name, Severity: "soft", Satisfied: score > 0.5, Score: score, Details: details}
}

// Report is the complete outcome of validating one generated world.
type Report struct {
	Passed                bool
	HardConstraintResults []ConstraintResult
	SoftConstraintResults []ConstraintResult
	Errors                []string
	Warnings              []string
}

// NewReport creates an empty, passing report; AddResult may flip Passed.
func NewReport() *Report {
	return &Report{Passed: true}
}

// AddResult records a constraint result, setting Passed to false the first
// time a hard constraint fails.
func (r *Report) AddResult(result ConstraintResult) {
	if result.Severity == "hard" {
		r.HardConstraintResults = append(r.HardConstraintResults, result)
		if !result.Satisfied {
			r.Passed = false
			r.Errors = append(r.Errors, fmt.Sprintf("%s: %s", result.Name, result.Details))
		}
	} else {
		r.SoftConstraintResults = append(r.SoftConstraintResults, result)
		if !result.Satisfied {
			r.Warnings = append(r.Warnings, fmt.Sprintf("%s: %s", result.Name, result.Details))
		}
	}
}

// Summary renders a human-readable report.
func Summary(report *Report) string {
	var b strings.Builder
	b.WriteString("=== Validation Report ===\n\n")
	if report.Passed {
		b.WriteString("Status: PASSED\n")
	} else {
		b.WriteString("Status: FAILED\n")
	}

	b.WriteString("\n=== Hard Constraints ===\n")
	passed := 0
	for _, r := range report.HardConstraintResults {
		if r.Satisfied {
			passed++
		}
	}
	b.WriteString(fmt.Sprintf("Passed: %d/%d\n", passed, len(report.HardConstraintResults)))
	for i, r := range report.HardConstraintResults {
		status := "PASS"
		if !r.Satisfied {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, status, r.Name, r.Details))
	}

	b.WriteString("\n=== Soft Constraints ===\n")
	if len(report.SoftConstraintResults) == 0 {
		b.WriteString("None evaluated\n")
	}
	for i, r := range report.SoftConstraintResults {
		b.WriteString(fmt.Sprintf("  %d. %s (score %.2f): %s\n", i+1, r.Name, r.Score, r.Details))
	}

	if len(report.Errors) > 0 {
		b.WriteString("\n=== Errors ===\n")
		for i, e := range report.Errors {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, e))
		}
	}
	if len(report.Warnings) > 0 {
		b.WriteString("\n=== Warnings ===\n")
		for i, w := range report.Warnings {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, w))
		}
	}
	return b.String()
}
